package waveform

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Brighter returns c with its HSV value raised by amount (clamped to 1).
// The alpha channel is carried over unchanged. Pure colour math, no
// rendering state involved.
func Brighter(c color.Color, amount float64) color.Color {
	base, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent colours have no well-defined hue.
		return c
	}

	h, s, v := base.Hsv()
	v += amount
	if v > 1 {
		v = 1
	}

	r, g, b := colorful.Hsv(h, s, v).RGB255()
	_, _, _, a := c.RGBA()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a >> 8)}
}
