package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// Configure picks the color profile for all ui output.
// Colors are dropped for --no-color, NO_COLOR, and Warp (which stalls on
// terminal queries when a hook writes to it).
func Configure(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM_PROGRAM") == "WarpTerminal" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(Out).EnvColorProfile())
}

// BranchStyle colors a branch name for display
func BranchStyle(branch string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorCyan).Bold(true).SetString(branch)
}

// TokenStyle colors an issue token for display
func TokenStyle(token string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorGreen).Bold(true).SetString(token)
}
