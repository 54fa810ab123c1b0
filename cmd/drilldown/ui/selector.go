package ui

import (
	"fmt"
	"io"

	"drilldown/internal/navigation"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// optionItem adapts navigation.Option to list.Item
type optionItem navigation.Option

func (i optionItem) FilterValue() string { return i.Label }

// optionDelegate draws one option per line with a cursor on the selected row.
type optionDelegate struct {
	styles Styles
}

func (d optionDelegate) Height() int { return 1 }
func (d optionDelegate) Spacing() int { return 0 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	opt, ok := item.(optionItem)
	if !ok {
		return
	}
	if index == m.Index() {
		fmt.Fprint(w, d.styles.Selected.Render("> "+opt.Label))
		return
	}
	fmt.Fprint(w, d.styles.Body.Render("  "+opt.Label))
}

// selectorModel asks for one option of a navigation.Prompt.
type selectorModel struct {
	list    list.Model
	styles  Styles
	title   string
	chosen  navigation.Option
	done    bool
	aborted bool
}

// listChrome is the rows the list needs besides the items: title and pagination.
const listChrome = 4

func newSelector(p navigation.Prompt, styles Styles) selectorModel {
	items := make([]list.Item, len(p.Options))
	for i, opt := range p.Options {
		items[i] = optionItem(opt)
	}

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = navigation.DefaultPageSize
	}

	l := list.New(items, optionDelegate{styles: styles}, 60, min(pageSize, len(items))+listChrome)
	l.Title = p.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(len(items) > pageSize)
	l.Styles.Title = styles.Prompt.Padding(0, 0)
	l.Styles.TitleBar = lipgloss.NewStyle()

	return selectorModel{list: l, styles: styles, title: p.Title}
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}
		// Keys go to the filter input while typing
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(optionItem); ok {
				m.chosen = navigation.Option(item)
				m.done = true
				return m, tea.Quit
			}
		case "esc":
			if m.list.FilterState() == list.Unfiltered {
				m.aborted = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectorModel) View() string {
	switch {
	case m.done:
		return m.styles.Prompt.Render(m.title) + " " + m.styles.Body.Render(m.chosen.Label) + "\n"
	case m.aborted:
		return ""
	}
	return m.list.View() + "\n"
}
