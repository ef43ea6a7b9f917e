// Package app holds the interactive prompts used by the installer.
package app

import (
	"strings"

	"github.com/wahlandcase/commit-issue-prefix/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel asks a yes/no question with arrow-key buttons
type ConfirmModel struct {
	question  string
	detail    []string
	selection int // 0=Yes, 1=No
	confirmed bool
	done      bool
}

// NewConfirm creates a prompt defaulting to No.
// detail lines are shown dimmed under the question.
func NewConfirm(question string, detail ...string) ConfirmModel {
	return ConfirmModel{
		question:  question,
		detail:    detail,
		selection: 1,
	}
}

// Confirmed reports whether the user chose Yes
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Init implements tea.Model
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q", "n":
		return m.finish(false)
	case "y":
		return m.finish(true)
	case "left", "right", "tab", "h", "l":
		m.selection = 1 - m.selection
	case "enter":
		return m.finish(m.selection == 0)
	}
	return m, nil
}

func (m ConfirmModel) finish(yes bool) (tea.Model, tea.Cmd) {
	m.confirmed = yes
	m.done = true
	return m, tea.Quit
}

// View renders the question and buttons
func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.SectionHeader("CONFIRM", ui.ColorYellow))
	b.WriteString("\n\n  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.question))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	for _, line := range m.detail {
		b.WriteString("  ")
		b.WriteString(dim.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.YesNoButtons(m.selection))
	b.WriteString("\n\n  ")
	b.WriteString(dim.Render("←/→ select • enter confirm • y/n"))
	b.WriteString("\n")
	return b.String()
}

// Confirm runs the prompt on the terminal and returns the answer
func Confirm(question string, detail ...string) (bool, error) {
	p := tea.NewProgram(NewConfirm(question, detail...), tea.WithOutput(ui.Out))

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	return final.(ConfirmModel).Confirmed(), nil
}
