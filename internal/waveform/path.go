package waveform

import (
	"math"

	"github.com/linuxmatters/waveline/internal/config"
)

// minAmplitude is the smallest half-height of a sample column, in pixels.
// True silence still draws a one-pixel line rather than disappearing.
const minAmplitude = 1.0

// Padding divisors applied to the image height to derive the amplitude
// ceiling. A middle-anchored waveform gets more headroom than one pinned
// to an edge, so peaks stay clear of the image bounds.
const (
	middlePaddingDivisor = 2.5
	edgePaddingDivisor   = 1.5
)

// Segment is one vertical slice of the waveform: a line from (X, Top)
// down to (X, Bottom) in pixel coordinates.
type Segment struct {
	X      float64
	Top    float64
	Bottom float64
}

// Path is the geometry of a waveform before painting.
type Path struct {
	Segments []Segment

	// Center is the y coordinate the segments are mirrored around.
	Center float64

	// MaxAmplitude is the largest half-height across every sample,
	// including samples the striped style skipped. Gradient bounds are
	// computed from it, so skipped columns must still contribute.
	MaxAmplitude float64
}

// BuildPath maps normalized samples onto vertical segments in the scaled
// pixel space. Sample x lands on pixel column x; samples are inverted
// (1 means silence) and scaled by the padding-derived amplitude ceiling.
func BuildPath(samples []float64, cfg config.Scaled) Path {
	center := cfg.Position * cfg.PixelHeight
	mapping := cfg.PixelHeight / paddingDivisor(cfg)

	drawEveryN := 1
	if cfg.Style == config.StyleStriped {
		drawEveryN = stripeStep(len(samples), cfg)
	}

	p := Path{
		Segments: make([]Segment, 0, len(samples)),
		Center:   center,
	}
	for x, sample := range samples {
		inverted := 1 - sample
		amplitude := math.Max(minAmplitude, inverted*mapping)
		if amplitude > p.MaxAmplitude {
			p.MaxAmplitude = amplitude
		}
		if x%drawEveryN != 0 {
			continue
		}
		p.Segments = append(p.Segments, Segment{
			X:      float64(x),
			Top:    center - amplitude,
			Bottom: center + amplitude,
		})
	}
	return p
}

func paddingDivisor(cfg config.Scaled) float64 {
	if cfg.PaddingFactor > 0 {
		return cfg.PaddingFactor
	}
	if cfg.Position == config.PositionMiddle {
		return middlePaddingDivisor
	}
	return edgePaddingDivisor
}

// stripeStep derives how many sample columns separate stroked stripes.
// A stripe pitch wider than the whole image would divide by zero stripes;
// the step clamps to 1 so at worst every column is stroked.
func stripeStep(sampleCount int, cfg config.Scaled) int {
	stripesAcross := cfg.PixelWidth / (cfg.StripeWidth + cfg.StripeSpacing)
	if stripesAcross < 1 {
		return 1
	}
	step := int(math.Round(float64(sampleCount) / stripesAcross))
	if step < 1 {
		step = 1
	}
	return step
}
