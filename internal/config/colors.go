package config

import (
	"fmt"
	"image/color"
)

// ParseHexColor parses a 6-digit hex colour like "A40000" or "#F8B31D".
// Parsing is case-insensitive; exactly six hex digits are required after
// the optional leading hash.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}

	var channels [3]uint8
	for i := range channels {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, fmt.Errorf("invalid hex colour %q: bad digit", s)
		}
		channels[i] = hi<<4 | lo
	}
	return channels[0], channels[1], channels[2], nil
}

// ParseColor is ParseHexColor with an alpha channel and a color.Color
// result, for feeding CLI flags straight into a Config.
func ParseColor(s string) (color.Color, error) {
	r, g, b, err := ParseHexColor(s)
	if err != nil {
		return nil, err
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
