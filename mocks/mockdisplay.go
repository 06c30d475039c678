package mocks

import "github.com/navionguy/flatbasic/object"

// MockDisplay hands out MockSurfaces
type MockDisplay struct {
	Err     error        // returned from Open when set
	Opened  int          // number of calls to Open
	Surface *MockSurface // the last surface opened
}

func (md *MockDisplay) Open(width, height, scale int) (object.Surface, error) {
	md.Opened++
	if md.Err != nil {
		return nil, md.Err
	}

	md.Surface = &MockSurface{Width: width, Height: height, Scale: scale}
	return md.Surface, nil
}

// Pixel is one call to SetPixel
type Pixel struct {
	X, Y      int
	Intensity float64
}

// MockSurface records the pixels set on it
type MockSurface struct {
	Width, Height, Scale int
	Pixels               []Pixel
}

func (ms *MockSurface) SetPixel(x, y int, intensity float64) {
	ms.Pixels = append(ms.Pixels, Pixel{X: x, Y: y, Intensity: intensity})
}
