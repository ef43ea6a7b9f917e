package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// button renders a single bordered button; the selected one gets a marker and color
func button(label string, selected bool, color lipgloss.Color) string {
	border, text, marker := ColorDarkGray, ColorWhite, " "
	if selected {
		border, text, marker = color, color, ">"
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(text).
		Bold(true).
		Padding(0, 1).
		Render(marker + " " + label)
}

// YesNoButtons renders side-by-side Yes/No buttons.
// selection: 0 for Yes, 1 for No
func YesNoButtons(selection int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		button("YES", selection == 0, ColorGreen),
		" ",
		button("NO", selection == 1, ColorRed),
	)
}

// SectionHeader creates a header line like "─── TITLE ─────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	rule := lipgloss.NewStyle().Foreground(color)
	bold := lipgloss.NewStyle().Foreground(color).Bold(true)

	return rule.Render("  ─── ") + bold.Render(title) + rule.Render(" "+dashes)
}
