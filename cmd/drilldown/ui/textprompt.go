package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// textPromptModel reads one line and re-asks until validate accepts it.
type textPromptModel struct {
	input    textinput.Model
	styles   Styles
	question string
	validate func(string) error
	problem  string
	value    string
	done     bool
	aborted  bool
}

func newTextPrompt(question, initial string, validate func(string) error, styles Styles) textPromptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.SetValue(initial)
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()

	return textPromptModel{
		input:    ti,
		styles:   styles,
		question: question,
		validate: validate,
	}
}

func (m textPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.problem = ""
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.problem = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textPromptModel) View() string {
	if m.done {
		return m.styles.Prompt.Render(m.question) + " " + m.styles.Body.Render(m.value) + "\n"
	}
	if m.aborted {
		return ""
	}

	view := m.styles.Prompt.Render(m.question) + "\n" + m.input.View() + "\n"
	if m.problem != "" {
		view += m.styles.Error.Render(m.problem) + "\n"
	}
	return view
}
