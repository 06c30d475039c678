// Package canvas is an in memory drawing surface that can be saved as a PNG
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/navionguy/flatbasic/object"
)

// Display opens canvases, the last one opened is kept
type Display struct {
	Scale  int // when > 0 it replaces the scale a program asks for
	canvas *Canvas
}

// Open allocates a canvas of width by height logical pixels
func (d *Display) Open(width, height, scale int) (object.Surface, error) {
	if d.Scale > 0 {
		scale = d.Scale
	}

	if (width <= 0) || (height <= 0) || (scale <= 0) {
		return nil, fmt.Errorf("invalid canvas size %dx%d scale %d", width, height, scale)
	}

	d.canvas = New(width, height, scale)
	return d.canvas, nil
}

// Canvas returns the last canvas opened, nil if there was none
func (d *Display) Canvas() *Canvas {
	return d.canvas
}

// Canvas is a gray scale image, each logical pixel is a scale by scale block
type Canvas struct {
	width, height int
	scale         int
	img           *image.Gray
}

// New returns a black canvas
func New(width, height, scale int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		scale:  scale,
		img:    image.NewGray(image.Rect(0, 0, width*scale, height*scale)),
	}
}

// SetPixel fills the block for logical pixel x,y
// intensity is clamped to [0,1], pixels off the canvas are ignored
func (c *Canvas) SetPixel(x, y int, intensity float64) {
	if (x < 0) || (y < 0) || (x >= c.width) || (y >= c.height) {
		return
	}

	clr := color.Gray{Y: grayLevel(intensity)}

	for dy := 0; dy < c.scale; dy++ {
		for dx := 0; dx < c.scale; dx++ {
			c.img.SetGray(x*c.scale+dx, y*c.scale+dy, clr)
		}
	}
}

// Image gives access to the pixels
func (c *Canvas) Image() *image.Gray {
	return c.img
}

// WritePNG encodes the canvas
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to the named file
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving canvas: %w", err)
	}

	if err = c.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("saving canvas: %w", err)
	}

	return f.Close()
}

func grayLevel(intensity float64) uint8 {
	if math.IsNaN(intensity) || (intensity <= 0) {
		return 0
	}
	if intensity >= 1 {
		return 255
	}
	return uint8(math.Round(intensity * 255))
}
