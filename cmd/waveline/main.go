package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/waveline/internal/cli"
	"github.com/linuxmatters/waveline/internal/config"
	"github.com/linuxmatters/waveline/internal/waveform"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Input  string `arg:"" name:"input" help:"Input audio file (.wav, .mp3 or .flac)" optional:""`
	Output string `arg:"" name:"output" help:"Output PNG file" optional:""`

	Width  float64 `help:"Image width in points" default:"900"`
	Height float64 `help:"Image height in points" default:"250"`
	Scale  float64 `help:"Point-to-pixel scale factor" default:"1"`

	Color      string `help:"Waveform colour as hex RGB" default:"000000"`
	Background string `help:"Background colour as hex RGB, empty for transparent" default:""`

	Style    string `help:"Waveform style: filled, striped or gradient" default:"gradient"`
	Position string `help:"Vertical anchor: top, middle, bottom or a fraction in [0,1]" default:"middle"`

	PaddingFactor float64 `help:"Amplitude headroom divisor, 0 selects the position default" default:"0"`
	StripeWidth   float64 `help:"Stripe width in points (striped style)" default:"1"`
	StripeSpacing float64 `help:"Gap between stripes in points (striped style)" default:"4"`

	Version bool `help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("waveline"),
		kong.Description("Render the amplitude envelope of an audio file as a PNG waveform."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate required arguments when not showing version
	if CLI.Input == "" || CLI.Output == "" {
		cli.PrintError("<input> and <output> are required")
		os.Exit(1)
	}

	// Validate input file exists
	if _, err := os.Stat(CLI.Input); os.IsNotExist(err) {
		cli.PrintError(fmt.Sprintf("input file does not exist: %s", CLI.Input))
		os.Exit(1)
	}

	cfg, err := buildConfig()
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	_ = ctx // Kong context available for future use

	renderImage(CLI.Input, CLI.Output, cfg)
}

// buildConfig translates CLI flags into a waveform configuration.
func buildConfig() (config.Config, error) {
	cfg := config.New(CLI.Width, CLI.Height)
	cfg.Scale = CLI.Scale
	cfg.PaddingFactor = CLI.PaddingFactor
	cfg.StripeWidth = CLI.StripeWidth
	cfg.StripeSpacing = CLI.StripeSpacing

	colour, err := config.ParseColor(CLI.Color)
	if err != nil {
		return cfg, err
	}
	cfg.Color = colour

	if CLI.Background != "" {
		background, err := config.ParseColor(CLI.Background)
		if err != nil {
			return cfg, err
		}
		cfg.Background = background
	}

	style, err := config.ParseStyle(CLI.Style)
	if err != nil {
		return cfg, err
	}
	cfg.Style = style

	position, err := config.ParsePosition(CLI.Position)
	if err != nil {
		return cfg, err
	}
	cfg.Position = position

	return cfg, nil
}

func renderImage(inputFile, outputFile string, cfg config.Config) {
	img, err := waveform.RenderFile(inputFile, cfg)
	if err != nil {
		cli.PrintError(fmt.Sprintf("failed to render waveform: %v", err))
		os.Exit(1)
	}

	outFile, err := os.Create(outputFile)
	if err != nil {
		cli.PrintError(fmt.Sprintf("failed to create output file: %v", err))
		os.Exit(1)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, img); err != nil {
		cli.PrintError(fmt.Sprintf("failed to encode PNG: %v", err))
		os.Exit(1)
	}

	bounds := img.Bounds()
	info, statErr := os.Stat(outputFile)

	cli.PrintSuccess(fmt.Sprintf("Wrote %s", outputFile))
	cli.PrintInfo("Dimensions", fmt.Sprintf("%dx%d px", bounds.Dx(), bounds.Dy()))
	if statErr == nil {
		cli.PrintInfo("Size", cli.FormatBytes(info.Size()))
	}
}
