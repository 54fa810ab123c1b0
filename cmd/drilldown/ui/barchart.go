package ui

import (
	"strconv"
	"strings"

	"drilldown/internal/analytics"
	"drilldown/internal/navigation"

	"github.com/charmbracelet/lipgloss"
)

const barGlyph = "█"

// BarChart renders a horizontal bar chart. The axis spans
// analytics.ChartWidth of the values, so small counts are not stretched across
// the terminal. maxCols caps the bar area; zero means no cap.
func BarChart(styles Styles, c navigation.Chart, maxCols int) string {
	values := make([]int, len(c.Bars))
	labelWidth := 0
	for i, b := range c.Bars {
		values[i] = b.Value
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}

	axis := analytics.ChartWidth(values, c.Floor)
	cols := axis
	if maxCols > 0 && cols > maxCols {
		cols = maxCols
	}

	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(styles.Title.Render(c.Title))
		sb.WriteString("\n")
	}

	label := lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Right)
	for i, b := range c.Bars {
		bar := styles.BarEven
		if i%2 == 1 {
			bar = styles.BarOdd
		}
		sb.WriteString(styles.Muted.Render(label.Render(b.Label)))
		sb.WriteString(" ")
		sb.WriteString(bar.Render(strings.Repeat(barGlyph, barLength(b.Value, axis, cols))))
		sb.WriteString(" ")
		sb.WriteString(styles.Body.Render(strconv.Itoa(b.Value)))
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	sb.WriteString(styles.RenderDivider(cols))
	sb.WriteString(" ")
	sb.WriteString(styles.Muted.Render(strconv.Itoa(axis)))
	sb.WriteString("\n")
	return sb.String()
}

// barLength scales value on an axis of the given width to cols columns. Any
// non-zero value gets at least one column.
func barLength(value, axis, cols int) int {
	if value <= 0 || axis <= 0 {
		return 0
	}
	n := value * cols / axis
	return min(max(n, 1), cols)
}
