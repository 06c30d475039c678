// Package object how the interpretor holds values during execution
package object

import (
	"math"
	"strconv"
	"strings"
)

// Console is the line oriented output sink a program prints to
type Console interface {
	// Print outputs the passed string with no line ending
	Print(string)
	// Println prints the string followed by a line ending
	Println(string)
}

// Display hands out drawing surfaces, SCREEN asks for one
type Display interface {
	// Open prepares a width by height logical surface, each logical
	// pixel shown as a scale by scale block
	Open(width, height, scale int) (Surface, error)
}

// Surface is an open drawing surface
type Surface interface {
	// SetPixel sets the logical pixel (x,y) to a gray intensity in [0,1]
	SetPixel(x, y int, intensity float64)
}

// Graphics mode 13 is the only one supported
const (
	ScreenMode   = 13.0
	ScreenWidth  = 320
	ScreenHeight = 200
	ScreenScale  = 2
	ColorLevels  = 8.0 // PLOT color index divided by this gives the intensity
)

// Values used for the results of comparisons
const (
	True  = 1.0
	False = 0.0
)

// Bool converts a comparison result into a program value
func Bool(b bool) float64 {
	if b {
		return True
	}
	return False
}

// FormatNumber gives the canonical text for a value
// whole numbers keep a trailing ".0", very large and very small
// magnitudes use an exponent, 1.0E7 or 1.5E-4
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		// one digit is too few, take the nearest two digit form
		// that reads back the same, 5E-324 prints as 4.9E-324
		s2 := strconv.FormatFloat(v, 'E', 1, 64)
		if back, err := strconv.ParseFloat(s2, 64); err == nil && back == v {
			mant, exp, _ = strings.Cut(s2, "E")
		} else {
			mant += ".0"
		}
	}
	e, _ := strconv.Atoi(exp)

	return mant + "E" + strconv.Itoa(e)
}
