// Package waveform renders a static amplitude-envelope image from
// normalized audio samples.
//
// Samples run 0..1 with the loudness scale inverted: 1 is silence at the
// noise floor, 0 is the loudest observed amplitude. Each sample becomes a
// vertical segment mirrored around a configurable centre line, and the
// segments are stroked in one of three styles: filled, striped or
// gradient.
package waveform

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/linuxmatters/waveline/internal/audio"
	"github.com/linuxmatters/waveline/internal/config"
)

// brightnessLift is how far the gradient's end colour is raised above the
// configured stroke colour, in HSV value.
const brightnessLift = 0.25

// ErrEmptySurface reports a configuration whose scaled size truncates to
// zero pixels in either dimension.
var ErrEmptySurface = errors.New("waveform: scaled size is smaller than one pixel")

// Render paints samples into a raster image of exactly the configured
// pixel dimensions. It is deterministic: identical samples and
// configuration produce byte-identical images. The drawing surface is
// scoped to this call and released on every exit path.
func Render(samples []float64, cfg config.Scaled) (image.Image, error) {
	width, height := cfg.SampleCount(), int(cfg.PixelHeight)
	if width < 1 || height < 1 {
		return nil, ErrEmptySurface
	}

	path := BuildPath(samples, cfg)

	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(cfg.Background))

	// A striped waveform is stroked at the stripe width; everything else
	// gets a one-pixel hairline regardless of pixel density.
	lineWidth := 1.0
	if cfg.Style == config.StyleStriped {
		lineWidth = cfg.StripeWidth * cfg.Scale
	}
	dc.SetLineWidth(lineWidth)

	switch cfg.Style {
	case config.StyleFilled, config.StyleStriped:
		for _, seg := range path.Segments {
			dc.MoveTo(seg.X, seg.Top)
			dc.LineTo(seg.X, seg.Bottom)
		}
		dc.SetColor(cfg.Color)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stroke waveform: %w", err)
		}
	case config.StyleGradient:
		// The software renderer only strokes solid colours, so the
		// gradient is painted as one-pixel-high spans with the colour
		// sampled from the brush at each row. Pad extension keeps rows
		// beyond the computed bounds at the end-stop colours.
		grad := gg.NewLinearGradientBrush(0, path.Center-path.MaxAmplitude, 0, path.Center+path.MaxAmplitude).
			AddColorStop(0, gg.FromColor(cfg.Color)).
			AddColorStop(1, gg.FromColor(Brighter(cfg.Color, brightnessLift))).
			SetExtend(gg.ExtendPad)
		for _, seg := range path.Segments {
			for y := seg.Top; y < seg.Bottom; y++ {
				h := math.Min(1, seg.Bottom-y)
				dc.SetColor(grad.ColorAt(seg.X, y+h/2).Color())
				dc.DrawRectangle(seg.X-lineWidth/2, y, lineWidth, h)
				if err := dc.Fill(); err != nil {
					return nil, fmt.Errorf("fill waveform span: %w", err)
				}
			}
		}
	}
	return dc.Image(), nil
}

// RenderFile decodes the audio file at path and renders its amplitude
// envelope with the given configuration. Sample acquisition failure fails
// the whole operation before any drawing surface is acquired.
func RenderFile(path string, cfg config.Config) (image.Image, error) {
	scaled := cfg.Scaled()

	samples, err := audio.Samples(path, scaled.SampleCount())
	if err != nil {
		return nil, fmt.Errorf("acquire samples: %w", err)
	}
	return Render(samples, scaled)
}
