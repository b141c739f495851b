package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("39")  // blue
	colorLabel   = lipgloss.Color("245") // gray
	colorCurrent = lipgloss.Color("34")  // green
	colorLegacy  = lipgloss.Color("214") // orange
	colorMuted   = lipgloss.Color("240")
)

// Styles for command output.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	// LabelStyle pads labels so inspect rows line up.
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Width(16)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLabel).
			Padding(1, 2)

	MutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(colorCurrent)
	LegacyStyle  = lipgloss.NewStyle().Foreground(colorLegacy)
)

const (
	SymbolCheck      = "✓"
	SymbolArrowRight = "→"
	SymbolBullet     = "•"
)

// Row renders a label and value on one line.
func Row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value))
}

// Dialect renders "BMECat <version>", highlighting 1.2 catalogs as legacy.
func Dialect(version string) string {
	label := "BMECat " + version
	if version == "2005" {
		return SuccessStyle.Render(label)
	}
	return LegacyStyle.Render(label)
}
