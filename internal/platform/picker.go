// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package platform

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gyrus-dev/gyrus/internal/memory"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// maxVisible caps the candidate rows rendered at once.
const maxVisible = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Compile-time interface check.
var _ Picker = (*TerminalPicker)(nil)

// TerminalPicker is a bubbletea picker: a query line re-ranking the
// candidate list on every keystroke, arrows to move, enter to choose,
// esc to cancel.
type TerminalPicker struct{}

// NewTerminalPicker returns the terminal picker binding.
func NewTerminalPicker() *TerminalPicker {
	return &TerminalPicker{}
}

// Pick runs the picker until a choice or cancellation.
func (p *TerminalPicker) Pick(ctx context.Context, req PickRequest) (string, bool, error) {
	input := textinput.New()
	input.Placeholder = "type to search"
	input.Focus()

	m := pickerModel{
		input: input,
		req:   req,
		items: req.Candidates,
	}

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return "", false, gyruserr.Wrap(err, gyruserr.CodePlatformPickerFailure, "running picker")
	}

	out, ok := final.(pickerModel)
	if !ok || !out.confirmed {
		return "", false, nil
	}
	return out.choice, true, nil
}

type pickerModel struct {
	input     textinput.Model
	req       PickRequest
	items     []*memory.Node
	cursor    int
	choice    string
	confirmed bool
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.items) > 0 {
			m.choice = m.items[m.cursor].Content
			m.confirmed = true
		}
		return m, tea.Quit
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.req.Rerank != nil {
		m.items = m.req.Rerank(m.input.Value())
	}
	m.cursor = 0
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gyrus "+string(m.req.Mode)) + dimStyle.Render("  circle: "+m.req.CircleID) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render("  no memories") + "\n")
		return b.String()
	}

	visible := m.items
	if len(visible) > maxVisible {
		visible = visible[:maxVisible]
	}
	for i, n := range visible {
		line := oneLine(n.Content)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(dimStyle.Render("\nenter: choose  esc: cancel") + "\n")
	return b.String()
}

// oneLine flattens content to a single trimmed display row.
func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 80 {
		s = s[:77] + "..."
	}
	return s
}
