// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrPromptAborted indicates the user cancelled an interactive prompt.
var ErrPromptAborted = errors.New("prompt aborted")

// Prompter gathers interactive input. Command tests substitute a scripted
// implementation.
type Prompter interface {
	// Input asks for a single line of text. Empty input returns the empty
	// string; validation is the caller's concern.
	Input(label, placeholder string) (string, error)

	// Secret asks for a line with masked echo.
	Secret(label string) (string, error)

	// Confirm asks a yes/no question. Enter accepts the shown default.
	Confirm(label string, defaultYes bool) (bool, error)
}

var promptLabelStyle = lipgloss.NewStyle().Bold(true)

// teaPrompter renders one Bubble Tea text input per question.
type teaPrompter struct {
	out io.Writer
}

func newTeaPrompter(out io.Writer) *teaPrompter {
	return &teaPrompter{out: out}
}

// Input implements [Prompter].
func (p *teaPrompter) Input(label, placeholder string) (string, error) {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 60
	input.Focus()

	return p.run(label, input)
}

// Secret implements [Prompter].
func (p *teaPrompter) Secret(label string) (string, error) {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = 60
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return p.run(label, input)
}

// Confirm implements [Prompter].
func (p *teaPrompter) Confirm(label string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	answer, err := p.Input(label+" ["+hint+"]", "")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *teaPrompter) run(label string, input textinput.Model) (string, error) {
	model := &promptModel{label: label, input: input}

	program := tea.NewProgram(model, tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		return "", err
	}

	result, ok := final.(*promptModel)
	if !ok || result.aborted {
		return "", ErrPromptAborted
	}
	return result.input.Value(), nil
}

// promptModel is the Bubble Tea model for a single-question prompt.
type promptModel struct {
	label   string
	input   textinput.Model
	done    bool
	aborted bool
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter submits, esc and ctrl+c abort; every
// other key event is forwarded to the input widget.
func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return promptLabelStyle.Render(m.label) + "\n" + m.input.View() + "\n"
}
