package navigation

import (
	"context"
	"errors"

	"drilldown/internal/analytics"
)

// ErrAborted is returned by a Renderer when the operator cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Option is one selectable entry of a Prompt.
type Option struct {
	Key   int
	Label string
}

// Prompt asks the operator to pick exactly one Option.
type Prompt struct {
	Title    string
	Options  []Option
	PageSize int
}

// Table is a titled two-column (action, count) table.
type Table struct {
	Title   string
	Caption string
	Rows    []analytics.ActionTotal
}

// Bar is one labelled value of a Chart.
type Bar struct {
	Label string
	Value int
}

// Chart is a bar chart drawn against an axis at least Floor wide.
type Chart struct {
	Title string
	Bars  []Bar
	Floor int
}

// Renderer is everything the controller needs from a terminal.
type Renderer interface {
	// Select blocks until an option is chosen and returns its Key.
	Select(ctx context.Context, p Prompt) (int, error)
	Table(ctx context.Context, t Table) error
	BarChart(ctx context.Context, c Chart) error
	// Notice shows a one-line status message.
	Notice(ctx context.Context, msg string) error
}
