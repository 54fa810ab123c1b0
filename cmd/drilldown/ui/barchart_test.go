package ui

import (
	"strings"
	"testing"

	"drilldown/internal/analytics"
	"drilldown/internal/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlyChart(values map[int]int) navigation.Chart {
	bars := make([]navigation.Bar, analytics.HoursPerDay)
	for hour := range bars {
		bars[hour] = navigation.Bar{Label: analytics.HourLabel(hour), Value: values[hour]}
	}
	return navigation.Chart{Title: "Action (login) occurrence per hour", Bars: bars, Floor: analytics.ChartFloor}
}

func TestBarChart_OneRowPerHour(t *testing.T) {
	view := BarChart(NewStyles(LightTheme()), hourlyChart(map[int]int{9: 3, 14: 2}), 0)
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")

	// title, 24 bars, axis
	require.Len(t, lines, 26)
	assert.Equal(t, "Action (login) occurrence per hour", lines[0])
	assert.Equal(t, " 0:00  0", lines[1])
	assert.Equal(t, " 9:00 "+strings.Repeat(barGlyph, 3)+" 3", lines[10])
	assert.Equal(t, "14:00 "+strings.Repeat(barGlyph, 2)+" 2", lines[15])
	assert.True(t, strings.HasSuffix(lines[25], " 60"), lines[25])
}

func TestBarChart_AxisGrowsPastFloor(t *testing.T) {
	view := BarChart(NewStyles(LightTheme()), hourlyChart(map[int]int{12: 90}), 0)

	assert.Contains(t, view, strings.Repeat(barGlyph, 90)+" 90")
	assert.True(t, strings.HasSuffix(strings.TrimRight(view, "\n"), " 90"))
}

func TestBarChart_ScalesToWidth(t *testing.T) {
	view := BarChart(NewStyles(LightTheme()), hourlyChart(map[int]int{12: 120, 13: 1}), 30)

	assert.Contains(t, view, "12:00 "+strings.Repeat(barGlyph, 30)+" 120")
	assert.Contains(t, view, "13:00 "+barGlyph+" 1")
}

func TestBarLength(t *testing.T) {
	tests := []struct {
		value, axis, cols, want int
	}{
		{0, 60, 60, 0},
		{1, 60, 60, 1},
		{60, 60, 60, 60},
		{1, 600, 60, 1},
		{300, 600, 60, 30},
		{5, 0, 60, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, barLength(tt.value, tt.axis, tt.cols), "%+v", tt)
	}
}
