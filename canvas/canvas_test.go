package canvas

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/navionguy/flatbasic/object"
	"github.com/stretchr/testify/assert"
)

func Test_Open(t *testing.T) {
	d := &Display{}
	assert.Nil(t, d.Canvas())

	s, err := d.Open(object.ScreenWidth, object.ScreenHeight, object.ScreenScale)

	assert.NoError(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, 640, d.Canvas().Image().Bounds().Dx())
	assert.Equal(t, 400, d.Canvas().Image().Bounds().Dy())
}

func Test_OpenScaleOverride(t *testing.T) {
	d := &Display{Scale: 1}

	_, err := d.Open(320, 200, 2)

	assert.NoError(t, err)
	assert.Equal(t, 320, d.Canvas().Image().Bounds().Dx())
}

func Test_OpenBadSize(t *testing.T) {
	d := &Display{}

	_, err := d.Open(0, 200, 2)

	assert.Error(t, err)
	assert.Nil(t, d.Canvas())
}

func Test_SetPixel(t *testing.T) {
	c := New(4, 4, 2)

	c.SetPixel(1, 2, 0.5)

	img := c.Image()
	for _, pt := range [][2]int{{2, 4}, {3, 4}, {2, 5}, {3, 5}} {
		assert.Equal(t, uint8(128), img.GrayAt(pt[0], pt[1]).Y, "pixel %v", pt)
	}
	assert.Equal(t, uint8(0), img.GrayAt(1, 4).Y)
	assert.Equal(t, uint8(0), img.GrayAt(4, 4).Y)
}

func Test_SetPixelClampsAndClips(t *testing.T) {
	c := New(2, 2, 1)

	c.SetPixel(0, 0, 7)
	c.SetPixel(1, 0, -1)
	c.SetPixel(0, 1, math.NaN())
	c.SetPixel(-1, 0, 1)
	c.SetPixel(0, 2, 1)

	img := c.Image()
	assert.Equal(t, uint8(255), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 1).Y)
}

func Test_WritePNG(t *testing.T) {
	c := New(3, 2, 2)
	c.SetPixel(2, 1, 1)

	var buf bytes.Buffer
	assert.NoError(t, c.WritePNG(&buf))

	img, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
}

func Test_SavePNG(t *testing.T) {
	c := New(2, 2, 1)

	assert.NoError(t, c.SavePNG(filepath.Join(t.TempDir(), "out.png")))
	assert.Error(t, c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")))
}
