package builtins

import (
	"math"

	"github.com/navionguy/flatbasic/token"
)

// Builtin is a numeric function of one argument
// domain errors come back as NaN or Inf, never as an error
type Builtin struct {
	Fn func(float64) float64
}

// Builtins holds every function a program can call, keyed by upper case name
var Builtins = map[string]*Builtin{
	"ABS": { // absolute value
		Fn: math.Abs,
	},
	"CEIL": { // smallest integer not less than x
		Fn: math.Ceil,
	},
	"COS": { // cosine, x in radians
		Fn: math.Cos,
	},
	"EXP": { // e to the x
		Fn: math.Exp,
	},
	"ROUND": { // nearest integer, halves round up
		Fn: func(x float64) float64 {
			fl := math.Floor(x)
			if x-fl >= 0.5 {
				return fl + 1
			}
			return fl
		},
	},
	"SGN": { // -1, 0 or 1 depending on the sign
		Fn: func(x float64) float64 {
			switch {
			case x > 0:
				return 1
			case x < 0:
				return -1
			}
			return x // zero keeps its sign, NaN stays NaN
		},
	},
	"SIN": { // sine, x in radians
		Fn: math.Sin,
	},
	"SQR": { // square root
		Fn: math.Sqrt,
	},
}

// Lookup finds a builtin, ignoring the case of the name
func Lookup(name string) (*Builtin, bool) {
	fn, ok := Builtins[token.Upper(name)]
	return fn, ok
}
