// Package ui provides styled terminal output for the hook and its subcommands.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Out is where status lines go (stderr by default, stdout is for `config` output)
var Out io.Writer = os.Stderr

var (
	infoIcon    = lipgloss.NewStyle().Foreground(ColorCyan).SetString("→")
	successIcon = lipgloss.NewStyle().Foreground(ColorGreen).SetString("✔")
	warnIcon    = lipgloss.NewStyle().Foreground(ColorYellow).SetString("○")
	failIcon    = lipgloss.NewStyle().Foreground(ColorRed).SetString("✘")
	dimStyle    = lipgloss.NewStyle().Foreground(ColorDarkGray)
)

func line(icon lipgloss.Style, format string, args ...any) {
	fmt.Fprintf(Out, "  %s %s\n", icon.String(), fmt.Sprintf(format, args...))
}

// Info prints an informational message with a cyan arrow
func Info(format string, args ...any) {
	line(infoIcon, format, args...)
}

// Success prints a success message with a green checkmark
func Success(format string, args ...any) {
	line(successIcon, format, args...)
}

// Warn prints a warning with a yellow circle
func Warn(format string, args ...any) {
	line(warnIcon, format, args...)
}

// Fail prints an error with a red X
func Fail(format string, args ...any) {
	line(failIcon, format, args...)
}

// Dim prints a secondary line in dark gray
func Dim(format string, args ...any) {
	fmt.Fprintf(Out, "  %s\n", dimStyle.Render(fmt.Sprintf(format, args...)))
}
