package ui

import (
	"errors"
	"strings"
	"testing"

	"drilldown/internal/ingest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressModel_AccumulatesAndCaps(t *testing.T) {
	var m tea.Model = newProgressModel(NewStyles(LightTheme()))
	for i := 0; i < 3; i++ {
		m, _ = m.Update(incrementMsg{task: ingest.TaskFiles, delta: 50})
	}
	m, _ = m.Update(incrementMsg{task: ingest.TaskDirectories, delta: 25})

	pm := m.(progressModel)
	assert.Equal(t, 100.0, pm.percent[ingest.TaskFiles])
	assert.Equal(t, 25.0, pm.percent[ingest.TaskDirectories])
	assert.Zero(t, pm.percent[ingest.TaskProcessing])

	view := pm.View()
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Reading directories")
	assert.Contains(t, lines[0], " 25%")
	assert.Contains(t, lines[1], "100%")
	assert.Contains(t, lines[1], "✓")
	assert.Contains(t, lines[2], "Processing analytics")
}

func TestProgressModel_DoneCarriesResult(t *testing.T) {
	res := &ingest.Result{Stats: ingest.Stats{Files: 3}}
	m, cmd := newProgressModel(NewStyles(LightTheme())).Update(loadDoneMsg{result: res})

	pm := m.(progressModel)
	assert.True(t, pm.done)
	assert.Same(t, res, pm.result)
	assert.True(t, isQuit(cmd))
}

func TestProgressModel_DoneWithError(t *testing.T) {
	m, _ := newProgressModel(NewStyles(LightTheme())).Update(loadDoneMsg{err: errors.New("bad file")})

	assert.Contains(t, m.View(), "bad file")
}

func TestProgressModel_CtrlCAborts(t *testing.T) {
	m, cmd := newProgressModel(NewStyles(LightTheme())).Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.(progressModel).aborted)
	assert.True(t, isQuit(cmd))
}
