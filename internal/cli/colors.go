package cli

import "github.com/charmbracelet/lipgloss"

// Wave colour palette 🌊
// Shared theme colours for consistent branding across CLI output
var (
	// Core wave colours (deep to bright)
	WaveTeal = lipgloss.Color("#00CED1") // Bright teal
	WaveBlue = lipgloss.Color("#1E90FF") // Dodger blue
	WaveDeep = lipgloss.Color("#104E8B") // Deep sea blue
	WaveFoam = lipgloss.Color("#E0FFFF") // Foam white

	// Accent colours
	CoolGray = lipgloss.Color("#7A8B99") // Slate gray for subtle text
)
