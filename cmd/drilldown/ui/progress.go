package ui

import (
	"fmt"
	"strings"

	"drilldown/internal/ingest"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type incrementMsg struct {
	task  ingest.Task
	delta float64
}

type loadDoneMsg struct {
	result *ingest.Result
	err    error
}

// programProgress forwards ingest progress into a running program. Send is safe
// for concurrent use.
type programProgress struct {
	p *tea.Program
}

func (pp programProgress) Increment(task ingest.Task, delta float64) {
	pp.p.Send(incrementMsg{task: task, delta: delta})
}

// progressModel shows one bar per ingest task until the load finishes.
type progressModel struct {
	styles  Styles
	spinner spinner.Model
	bar     progress.Model
	percent map[ingest.Task]float64

	result  *ingest.Result
	err     error
	done    bool
	aborted bool
}

func newProgressModel(styles Styles) progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return progressModel{
		styles:  styles,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
		percent: make(map[ingest.Task]float64, len(ingest.Tasks)),
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}

	case incrementMsg:
		m.percent[msg.task] = min(m.percent[msg.task]+msg.delta, 100)

	case loadDoneMsg:
		m.result, m.err, m.done = msg.result, msg.err, true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	labelWidth := 0
	for _, task := range ingest.Tasks {
		labelWidth = max(labelWidth, len(task.String()))
	}
	label := lipgloss.NewStyle().Width(labelWidth)

	var sb strings.Builder
	for _, task := range ingest.Tasks {
		pct := m.percent[task]
		status := m.spinner.View()
		if pct >= 100 {
			status = m.styles.Success.Render("✓")
		}
		fmt.Fprintf(&sb, "%s %s %s %s\n",
			m.styles.Body.Render(label.Render(task.String())),
			m.bar.ViewAs(pct/100),
			m.styles.Muted.Render(fmt.Sprintf("%3.0f%%", pct)),
			status,
		)
	}
	if m.done && m.err != nil {
		sb.WriteString(m.styles.Error.Render(m.err.Error()) + "\n")
	}
	return sb.String()
}
