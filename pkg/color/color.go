// Package color converts device-independent design colors into the 8-bit
// hex strings used in violation messages.
//
// Design documents store color channels as floats in [0, 1]. Conversion is
// two-staged: [Normalize] rounds each channel to an integer in [0, 255]
// (alpha passes through untouched), and [Hex] renders three 8-bit channels
// as a "#rrggbb" string. Neither stage validates its input; callers pass
// colors read from a document, which are always in range.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with channels in the [0, 1] range, as stored in a document.
type RGBA struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a,omitempty" yaml:"a,omitempty"`
}

// RGB8 is a color with 8-bit channels. A carries the source alpha unchanged.
type RGB8 struct {
	R, G, B uint8
	A       float64
}

// Normalize converts each of r, g and b to round(255*c). Alpha is copied.
func Normalize(c RGBA) RGB8 {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.RGB255()
	return RGB8{R: r, G: g, B: b, A: c.A}
}

// Hex renders three 8-bit channels as a lowercase "#rrggbb" string.
func Hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Hex renders the color as "#rrggbb", ignoring alpha.
func (c RGB8) Hex() string {
	return Hex(c.R, c.G, c.B)
}

// ToHex normalizes c and renders it as "#rrggbb".
func ToHex(c RGBA) string {
	return Normalize(c).Hex()
}
