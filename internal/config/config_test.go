package config

import (
	"image/color"
	"testing"
)

// TestParseHexColor_ValidInputs verifies that ParseHexColor correctly parses
// valid hex colour formats, catching case sensitivity issues, prefix
// handling, and byte ordering bugs.
func TestParseHexColor_ValidInputs(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		wantR uint8
		wantG uint8
		wantB uint8
	}{
		{
			name:  "FF0000 (uppercase red, no hash)",
			input: "FF0000",
			wantR: 255,
			wantG: 0,
			wantB: 0,
		},
		{
			name:  "#ff0000 (lowercase red, with hash)",
			input: "#ff0000",
			wantR: 255,
			wantG: 0,
			wantB: 0,
		},
		{
			name:  "Ff00fF (mixed case magenta)",
			input: "Ff00fF",
			wantR: 255,
			wantG: 0,
			wantB: 255,
		},
		{
			name:  "010203 (distinct channels catch reordering)",
			input: "010203",
			wantR: 1,
			wantG: 2,
			wantB: 3,
		},
		{
			name:  "#AABBCC (distinct channels with hash)",
			input: "#AABBCC",
			wantR: 0xAA,
			wantG: 0xBB,
			wantB: 0xCC,
		},
		{
			name:  "808080 (mid gray)",
			input: "808080",
			wantR: 128,
			wantG: 128,
			wantB: 128,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, err := ParseHexColor(tc.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) returned error: %v", tc.input, err)
			}
			if r != tc.wantR {
				t.Errorf("Red channel: got %d (0x%02X), want %d (0x%02X)", r, r, tc.wantR, tc.wantR)
			}
			if g != tc.wantG {
				t.Errorf("Green channel: got %d (0x%02X), want %d (0x%02X)", g, g, tc.wantG, tc.wantG)
			}
			if b != tc.wantB {
				t.Errorf("Blue channel: got %d (0x%02X), want %d (0x%02X)", b, b, tc.wantB, tc.wantB)
			}
		})
	}
}

// TestParseHexColor_InvalidInputs verifies rejection of malformed input.
func TestParseHexColor_InvalidInputs(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "3-digit shorthand", input: "FFF"},
		{name: "3-digit shorthand with hash", input: "#FFF"},
		{name: "7 digits", input: "FFFFFFF"},
		{name: "non-hex digits", input: "GGGGGG"},
		{name: "partial non-hex", input: "FF00GG"},
		{name: "empty string", input: ""},
		{name: "bare hash", input: "#"},
		{name: "embedded space", input: "FF 000"},
		{name: "double hash", input: "##FF0000"},
		{name: "trailing newline", input: "FF0000\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := ParseHexColor(tc.input); err == nil {
				t.Errorf("ParseHexColor(%q) expected error, got nil", tc.input)
			}
		})
	}
}

// TestNew_Defaults verifies the documented defaults of a fresh Config.
func TestNew_Defaults(t *testing.T) {
	cfg := New(900, 250)

	if cfg.Scale != 1 {
		t.Errorf("Scale: got %v, want 1", cfg.Scale)
	}
	if cfg.Style != StyleGradient {
		t.Errorf("Style: got %v, want gradient", cfg.Style)
	}
	if cfg.Position != PositionMiddle {
		t.Errorf("Position: got %v, want %v", cfg.Position, PositionMiddle)
	}
	if cfg.Color != color.Black {
		t.Errorf("Color: got %v, want black", cfg.Color)
	}
	if cfg.Background != color.Transparent {
		t.Errorf("Background: got %v, want transparent", cfg.Background)
	}
	if cfg.StripeWidth != DefaultStripeWidth {
		t.Errorf("StripeWidth: got %v, want %v", cfg.StripeWidth, DefaultStripeWidth)
	}
	if cfg.StripeSpacing != DefaultStripeSpacing {
		t.Errorf("StripeSpacing: got %v, want %v", cfg.StripeSpacing, DefaultStripeSpacing)
	}
	if cfg.PaddingFactor != 0 {
		t.Errorf("PaddingFactor: got %v, want 0 (position default)", cfg.PaddingFactor)
	}
}

// TestScaled_Dimensions verifies the resolver multiplies size by scale and
// carries everything else through unchanged.
func TestScaled_Dimensions(t *testing.T) {
	testCases := []struct {
		name             string
		width, height    float64
		scale            float64
		wantPxW, wantPxH float64
		wantSamples      int
	}{
		{name: "1x", width: 100, height: 50, scale: 1, wantPxW: 100, wantPxH: 50, wantSamples: 100},
		{name: "2x retina", width: 100, height: 50, scale: 2, wantPxW: 200, wantPxH: 100, wantSamples: 200},
		{name: "3x", width: 320, height: 120, scale: 3, wantPxW: 960, wantPxH: 360, wantSamples: 960},
		{name: "fractional scale truncates samples", width: 101, height: 50, scale: 1.5, wantPxW: 151.5, wantPxH: 75, wantSamples: 151},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New(tc.width, tc.height)
			cfg.Scale = tc.scale
			cfg.Style = StyleStriped

			scaled := cfg.Scaled()
			if scaled.PixelWidth != tc.wantPxW {
				t.Errorf("PixelWidth: got %v, want %v", scaled.PixelWidth, tc.wantPxW)
			}
			if scaled.PixelHeight != tc.wantPxH {
				t.Errorf("PixelHeight: got %v, want %v", scaled.PixelHeight, tc.wantPxH)
			}
			if scaled.SampleCount() != tc.wantSamples {
				t.Errorf("SampleCount: got %d, want %d", scaled.SampleCount(), tc.wantSamples)
			}
			if scaled.Style != StyleStriped {
				t.Errorf("Style not carried through: got %v", scaled.Style)
			}
		})
	}
}

// TestScaled_ClampsDegenerateValues verifies zero and negative values are
// clamped rather than propagated into rendering geometry.
func TestScaled_ClampsDegenerateValues(t *testing.T) {
	cfg := Config{Width: -10, Height: 0, Scale: 0, Position: 3, StripeSpacing: -1}
	scaled := cfg.Scaled()

	if scaled.Scale != 1 {
		t.Errorf("Scale: got %v, want clamped to 1", scaled.Scale)
	}
	if scaled.PixelWidth <= 0 || scaled.PixelHeight <= 0 {
		t.Errorf("pixel size not clamped positive: %vx%v", scaled.PixelWidth, scaled.PixelHeight)
	}
	if scaled.Position != 1 {
		t.Errorf("Position: got %v, want clamped to 1", scaled.Position)
	}
	if scaled.StripeWidth <= 0 {
		t.Errorf("StripeWidth: got %v, want positive", scaled.StripeWidth)
	}
	if scaled.StripeSpacing < 0 {
		t.Errorf("StripeSpacing: got %v, want non-negative", scaled.StripeSpacing)
	}
	if scaled.Color == nil || scaled.Background == nil {
		t.Error("nil colours not replaced with defaults")
	}
}

// TestParseStyle covers the closed style set and rejection of unknowns.
func TestParseStyle(t *testing.T) {
	testCases := []struct {
		input   string
		want    Style
		wantErr bool
	}{
		{input: "filled", want: StyleFilled},
		{input: "striped", want: StyleStriped},
		{input: "gradient", want: StyleGradient},
		{input: " Gradient ", want: StyleGradient},
		{input: "FILLED", want: StyleFilled},
		{input: "dotted", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseStyle(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseStyle(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStyle(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseStyle(%q): got %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// TestParsePosition covers named anchors and raw fractions.
func TestParsePosition(t *testing.T) {
	testCases := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "top", want: PositionTop},
		{input: "middle", want: PositionMiddle},
		{input: "bottom", want: PositionBottom},
		{input: "center", want: PositionMiddle},
		{input: "0.25", want: 0.25},
		{input: "1", want: 1},
		{input: "0", want: 0},
		{input: "1.5", wantErr: true},
		{input: "-0.1", wantErr: true},
		{input: "sideways", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePosition(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParsePosition(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParsePosition(%q): got %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
