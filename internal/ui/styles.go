// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors - taken from the screen design
var (
	ColorAccent   = lipgloss.Color("#6A5ACD") // Purple
	ColorChip     = lipgloss.Color("#E0E0E0") // Chip gray
	ColorCard     = lipgloss.Color("#F0F0F0") // Placeholder gray
	ColorOutline  = lipgloss.Color("#BDBDBD") // Unfocused border, inactive tabs
	ColorIcon     = lipgloss.Color("#808080")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorInk      = lipgloss.Color("#000000")
	ColorHeadline = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	ColorMuted    = lipgloss.Color("245")
)

// Styles
var (
	// Section heading style
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeadline)

	// Tab label styles
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeadline)

	InactiveTabStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOutline)

	IndicatorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// Search field
	SearchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorOutline).
			Padding(0, 1)

	SearchFocusedStyle = SearchStyle.
				BorderForeground(ColorAccent)

	SearchIconStyle = lipgloss.NewStyle().
			Foreground(ColorIcon)

	SearchTextStyle = lipgloss.NewStyle().
			Foreground(ColorHeadline)

	// Featured card
	FeaturedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Background(ColorAccent).
				AlignVertical(lipgloss.Bottom)

	FeaturedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite).
				Background(ColorAccent)

	FeaturedDateStyle = lipgloss.NewStyle().
				Faint(true).
				Foreground(ColorWhite).
				Background(ColorAccent)

	// Grid card
	GridCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCard).
			Background(ColorCard).
			AlignVertical(lipgloss.Bottom)

	ChipStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInk).
			Background(ColorChip)

	// Scroll position hint
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols
const (
	SymbolSearch    = "⌕"
	SymbolIndicator = "━"
	SymbolLeft      = "‹"
	SymbolRight     = "›"
)

// Theme names accepted by ApplyTheme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ApplyTheme pins the adaptive colors to a light or dark background.
// "auto" leaves terminal detection to lipgloss.
func ApplyTheme(theme string) {
	switch theme {
	case ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}
