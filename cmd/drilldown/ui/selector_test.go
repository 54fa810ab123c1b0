package ui

import (
	"errors"
	"testing"

	"drilldown/internal/navigation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearPrompt() navigation.Prompt {
	return navigation.Prompt{
		Title: "Select year",
		Options: []navigation.Option{
			{Key: 2023, Label: "2023"},
			{Key: 2024, Label: "2024"},
			{Key: navigation.AggregateKey, Label: "Display stats for all years"},
		},
		PageSize: navigation.DefaultPageSize,
	}
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSelector_EnterChoosesHighlighted(t *testing.T) {
	m, cmd := press(t, newSelector(yearPrompt(), NewStyles(LightTheme())),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	sel := m.(selectorModel)
	require.True(t, sel.done)
	assert.Equal(t, 2024, sel.chosen.Key)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "Select year 2024\n", sel.View())
}

func TestSelector_AggregateOption(t *testing.T) {
	m, _ := press(t, newSelector(yearPrompt(), NewStyles(LightTheme())),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, navigation.AggregateKey, m.(selectorModel).chosen.Key)
}

func TestSelector_Abort(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		t.Run(key.String(), func(t *testing.T) {
			m, cmd := press(t, newSelector(yearPrompt(), NewStyles(LightTheme())), key)

			sel := m.(selectorModel)
			assert.True(t, sel.aborted)
			assert.False(t, sel.done)
			assert.True(t, isQuit(cmd))
			assert.Empty(t, sel.View())
		})
	}
}

func TestSelector_ViewListsOptions(t *testing.T) {
	view := newSelector(yearPrompt(), NewStyles(LightTheme())).View()

	assert.Contains(t, view, "Select year")
	assert.Contains(t, view, "> 2023")
	assert.Contains(t, view, "  2024")
	assert.Contains(t, view, "Display stats for all years")
}

func TestTextPrompt_ValidatesBeforeAccepting(t *testing.T) {
	var asked []string
	validate := func(s string) error {
		asked = append(asked, s)
		if s != "/ok" {
			return errors.New("Directory does not exist")
		}
		return nil
	}
	m := tea.Model(newTextPrompt("Please provide the analytics directory:", "/nope", validate, NewStyles(LightTheme())))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	tp := m.(textPromptModel)
	assert.False(t, tp.done)
	assert.Nil(t, cmd)
	assert.Contains(t, tp.View(), "Directory does not exist")

	tp.input.SetValue("  /ok ")
	m, cmd = press(t, tp, tea.KeyMsg{Type: tea.KeyEnter})
	tp = m.(textPromptModel)
	assert.True(t, tp.done)
	assert.Equal(t, "/ok", tp.value)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, []string{"/nope", "/ok"}, asked)
}

func TestTextPrompt_Abort(t *testing.T) {
	m, cmd := press(t, newTextPrompt("dir?", "", nil, NewStyles(LightTheme())), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.(textPromptModel).aborted)
	assert.True(t, isQuit(cmd))
}
