package config

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Style selects how the waveform path is painted.
type Style int

const (
	// StyleGradient strokes the waveform with a vertical linear gradient
	// from the stroke colour to a brighter variant of it.
	StyleGradient Style = iota

	// StyleFilled strokes every sample column with the solid stroke colour.
	StyleFilled

	// StyleStriped strokes evenly spaced sample columns, leaving gaps of
	// background between them.
	StyleStriped
)

// String returns the flag-friendly name of the style.
func (s Style) String() string {
	switch s {
	case StyleFilled:
		return "filled"
	case StyleStriped:
		return "striped"
	case StyleGradient:
		return "gradient"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses a style name as accepted on the command line.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "filled":
		return StyleFilled, nil
	case "striped":
		return StyleStriped, nil
	case "gradient":
		return StyleGradient, nil
	}
	return 0, fmt.Errorf("unknown style %q (want filled, striped or gradient)", name)
}

// Vertical anchor fractions for the waveform centre line.
// The position is a fraction of the image height: 0 anchors the centre
// line to the top edge, 1 to the bottom edge.
const (
	PositionTop    = 0.0
	PositionMiddle = 0.5
	PositionBottom = 1.0
)

// ParsePosition parses a vertical position: one of the named anchors
// "top", "middle", "bottom", or a bare fraction like "0.25".
func ParsePosition(name string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return PositionTop, nil
	case "middle", "center", "centre":
		return PositionMiddle, nil
	case "bottom":
		return PositionBottom, nil
	}

	var fraction float64
	if _, err := fmt.Sscanf(strings.TrimSpace(name), "%f", &fraction); err != nil {
		return 0, fmt.Errorf("unknown position %q (want top, middle, bottom or a fraction in [0,1])", name)
	}
	if fraction < 0 || fraction > 1 {
		return 0, fmt.Errorf("position fraction %v out of range [0,1]", fraction)
	}
	return fraction, nil
}

// Default stripe geometry, in logical (point) units.
const (
	DefaultStripeWidth   = 1.0
	DefaultStripeSpacing = 4.0
)

// Config describes a waveform image in logical (point) units. Construct
// one with New and adjust fields before rendering; Scaled produces the
// pixel-space configuration the renderer works in.
type Config struct {
	// Width and Height are the logical image size in points.
	Width  float64
	Height float64

	// Scale is the point-to-pixel factor. 1 renders at 1:1, 2 renders a
	// @2x image with doubled pixel dimensions.
	Scale float64

	// Color is the waveform stroke colour.
	Color color.Color

	// Background fills the image before the waveform is drawn.
	Background color.Color

	// Style selects filled, striped or gradient painting.
	Style Style

	// Position is the vertical anchor fraction for the centre line,
	// in [0,1]. See PositionTop, PositionMiddle, PositionBottom.
	Position float64

	// PaddingFactor divides the image height to derive the amplitude
	// ceiling. Zero selects the position-dependent default: 2.5 for a
	// middle anchor, 1.5 for edge anchors.
	PaddingFactor float64

	// StripeWidth and StripeSpacing control the striped style, in points.
	StripeWidth   float64
	StripeSpacing float64
}

// New returns a Config for the given logical size with every other field
// at its documented default: scale 1, black waveform on a transparent
// background, gradient style, middle anchor, default stripe geometry.
// Non-positive dimensions are clamped to one point.
func New(width, height float64) Config {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return Config{
		Width:         width,
		Height:        height,
		Scale:         1,
		Color:         color.Black,
		Background:    color.Transparent,
		Style:         StyleGradient,
		Position:      PositionMiddle,
		StripeWidth:   DefaultStripeWidth,
		StripeSpacing: DefaultStripeSpacing,
	}
}

// Scaled carries a Config together with its pixel dimensions. All
// rendering geometry is computed in this scaled pixel space.
type Scaled struct {
	Config

	// PixelWidth and PixelHeight are the logical size multiplied by
	// Scale. The rendered image is exactly these dimensions, truncated
	// to whole pixels.
	PixelWidth  float64
	PixelHeight float64
}

// Scaled resolves the configuration into pixel space. It is a pure
// transform: the size is multiplied component-wise by Scale and every
// other field is carried over unchanged. Degenerate values are clamped
// to safe minimums rather than surfaced as errors.
func (c Config) Scaled() Scaled {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.StripeWidth <= 0 {
		c.StripeWidth = DefaultStripeWidth
	}
	if c.StripeSpacing < 0 {
		c.StripeSpacing = DefaultStripeSpacing
	}
	c.Position = math.Min(1, math.Max(0, c.Position))
	if c.Color == nil {
		c.Color = color.Black
	}
	if c.Background == nil {
		c.Background = color.Transparent
	}
	return Scaled{
		Config:      c,
		PixelWidth:  c.Width * c.Scale,
		PixelHeight: c.Height * c.Scale,
	}
}

// SampleCount returns how many samples the renderer consumes: one per
// whole pixel column of the scaled image.
func (s Scaled) SampleCount() int {
	return int(s.PixelWidth)
}
