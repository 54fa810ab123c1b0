package ui

import (
	"strings"
	"testing"

	"drilldown/internal/analytics"
	"drilldown/internal/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTable_View(t *testing.T) {
	table := ActionTable(navigation.Table{
		Title:   "Analytics for the year 2024",
		Caption: analytics.TableCaption,
		Rows: []analytics.ActionTotal{
			{Action: "browse", Count: 7},
			{Action: "login", Count: 12},
		},
	})

	view := table.View(NewStyles(LightTheme()))
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "Analytics for the year 2024", lines[0])
	assert.Contains(t, lines[1], "Action")
	assert.Contains(t, lines[1], "Count")
	assert.True(t, strings.HasPrefix(lines[2], "---"))
	assert.Contains(t, lines[3], "browse")
	assert.Contains(t, lines[3], "7")
	assert.Contains(t, lines[4], "login")
	assert.Contains(t, lines[4], "12")
	assert.Equal(t, analytics.TableCaption, lines[5])
}

func TestSimpleTable_NoRowsKeepsHeaders(t *testing.T) {
	view := NewSimpleTable("Empty", []string{"Action", "Count"}).View(NewStyles(LightTheme()))

	assert.Contains(t, view, "Empty")
	assert.Contains(t, view, "Action")
}
