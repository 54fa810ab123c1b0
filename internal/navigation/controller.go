// Package navigation drives an interactive drill-down over a CountTree: year, then
// month, then day, then the hourly chart of one action, with roll-up back to any
// enclosing level.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"drilldown/internal/analytics"
	"drilldown/internal/logging"
)

// State is the level the controller is choosing at.
type State int

const (
	AtYear State = iota + 1
	AtMonth
	AtDay
	AtHourlyChart
)

// String names the state the way navigation prompts show it.
func (s State) String() string {
	switch s {
	case AtYear:
		return "Year"
	case AtMonth:
		return "Month"
	case AtDay:
		return "Day"
	case AtHourlyChart:
		return "Event"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Outcome is how a session ended.
type Outcome int

const (
	// OutcomeExit means the operator left the session.
	OutcomeExit Outcome = iota
	// OutcomeEmpty means a level had nothing to show.
	OutcomeEmpty
)

func (o Outcome) String() string {
	if o == OutcomeEmpty {
		return "empty"
	}
	return "exit"
}

// AggregateKey is the option key that asks for the totals of a whole level.
const AggregateKey = 0

// DefaultPageSize is how many options a prompt shows at once.
const DefaultPageSize = 13

var errEmptyLevel = errors.New("level has no entries")

// level describes how one tree level is prompted for.
type level struct {
	plural    string
	title     string
	aggregate string
	label     func(int) string
}

// Controller walks a CountTree top-down. It never modifies the tree.
type Controller struct {
	tree     analytics.CountTree
	renderer Renderer

	state    State
	year     int
	month    int
	day      int
	dayShown bool
	floor    int
	pageSize int
	prompted int
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithChartFloor sets the minimum bar chart axis width.
func WithChartFloor(floor int) ControllerOption {
	return func(c *Controller) {
		if floor > 0 {
			c.floor = floor
		}
	}
}

// WithPageSize sets how many options prompts show at once.
func WithPageSize(n int) ControllerOption {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewController returns a controller positioned at the year level.
func NewController(tree analytics.CountTree, r Renderer, opts ...ControllerOption) *Controller {
	c := &Controller{
		tree:     tree,
		renderer: r,
		state:    AtYear,
		floor:    analytics.ChartFloor,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the level the controller will act on next.
func (c *Controller) State() State {
	return c.state
}

// Prompts returns how many selection prompts have been shown.
func (c *Controller) Prompts() int {
	return c.prompted
}

// Run drives the session until a level turns out empty or the operator aborts.
// A cancelled ctx ends the session before the next step.
func (c *Controller) Run(ctx context.Context) (Outcome, error) {
	log := logging.Get(logging.CategoryNavigation)

	for {
		if err := ctx.Err(); err != nil {
			return OutcomeExit, err
		}

		var next State
		var err error
		switch c.state {
		case AtYear:
			next, err = c.atYear(ctx)
		case AtMonth:
			next, err = c.atMonth(ctx)
		case AtDay:
			next, err = c.atDay(ctx)
		case AtHourlyChart:
			next, err = c.atHourlyChart(ctx)
		default:
			return OutcomeExit, fmt.Errorf("unknown navigation state %v", c.state)
		}

		switch {
		case errors.Is(err, errEmptyLevel):
			log.Infow("session ended on empty level", "state", c.state.String())
			return OutcomeEmpty, nil
		case errors.Is(err, ErrAborted):
			log.Infow("session aborted", "state", c.state.String())
			return OutcomeExit, nil
		case err != nil:
			return OutcomeExit, err
		}

		log.Debugw("transition", "from", c.state.String(), "to", next.String(),
			"year", c.year, "month", c.month, "day", c.day)
		c.state = next
	}
}

func (c *Controller) atYear(ctx context.Context) (State, error) {
	year, err := c.choose(ctx, level{
		plural:    "Years",
		title:     "Select year",
		aggregate: "Display stats for all years",
		label:     strconv.Itoa,
	}, c.tree.Years())
	if err != nil {
		return 0, err
	}

	if year == AggregateKey {
		if err := c.showTable(ctx, analytics.AllTimeTitle(), analytics.AllTime(c.tree)); err != nil {
			return 0, err
		}
		return c.navigate(ctx, AtYear)
	}

	c.year = year
	return AtMonth, nil
}

func (c *Controller) atMonth(ctx context.Context) (State, error) {
	months := c.tree[c.year]
	month, err := c.choose(ctx, level{
		plural:    "Months",
		title:     fmt.Sprintf("Select month : ##-##-%d", c.year),
		aggregate: "Display stats for entire year",
		label:     analytics.MonthName,
	}, months.Months())
	if err != nil {
		return 0, err
	}

	if month == AggregateKey {
		if err := c.showTable(ctx, analytics.YearTitle(c.year), analytics.ForYear(months)); err != nil {
			return 0, err
		}
		return c.navigate(ctx, AtMonth)
	}

	c.month = month
	return AtDay, nil
}

func (c *Controller) atDay(ctx context.Context) (State, error) {
	days := c.tree[c.year][c.month]
	day, err := c.choose(ctx, level{
		plural:    "Days",
		title:     fmt.Sprintf("Select day : ##-%d-%d", c.month, c.year),
		aggregate: "Display stats for entire month",
		label:     strconv.Itoa,
	}, days.Days())
	if err != nil {
		return 0, err
	}

	if day == AggregateKey {
		if err := c.showTable(ctx, analytics.MonthTitle(c.year, c.month), analytics.ForMonth(days)); err != nil {
			return 0, err
		}
		return c.navigate(ctx, AtDay)
	}

	c.day = day
	c.dayShown = false
	return AtHourlyChart, nil
}

// atHourlyChart shows the day's totals once, then charts one chosen action.
// The action prompt is never skipped, even for a single action.
func (c *Controller) atHourlyChart(ctx context.Context) (State, error) {
	hourly := c.tree[c.year][c.month][c.day]

	if !c.dayShown {
		if err := c.showTable(ctx, analytics.DayTitle(c.year, c.month, c.day), analytics.ForDay(hourly)); err != nil {
			return 0, err
		}
		c.dayShown = true
	}

	actions := hourly.Actions()
	if len(actions) == 0 {
		if err := c.renderer.Notice(ctx, "There were no Events found"); err != nil {
			return 0, err
		}
		return 0, errEmptyLevel
	}

	options := make([]Option, len(actions))
	for i, action := range actions {
		options[i] = Option{Key: i, Label: action}
	}
	key, err := c.selectOption(ctx, Prompt{
		Title:    fmt.Sprintf("Choose event : %d-%d-%d", c.day, c.month, c.year),
		Options:  options,
		PageSize: c.pageSize,
	})
	if err != nil {
		return 0, err
	}
	action := actions[key]

	series := analytics.HourlySeries(hourly, action)
	bars := make([]Bar, analytics.HoursPerDay)
	for hour, value := range series {
		bars[hour] = Bar{Label: analytics.HourLabel(hour), Value: value}
	}
	if err := c.renderer.BarChart(ctx, Chart{
		Title: analytics.ChartTitle(action, c.year, c.month, c.day),
		Bars:  bars,
		Floor: c.floor,
	}); err != nil {
		return 0, err
	}

	next, err := c.navigate(ctx, AtHourlyChart)
	if err != nil {
		return 0, err
	}
	if next != AtHourlyChart {
		c.dayShown = false
	}
	return next, nil
}

// choose picks a key among keys: none ends the session, one is taken without
// asking, several are prompted for together with the aggregate option.
func (c *Controller) choose(ctx context.Context, lv level, keys []int) (int, error) {
	switch len(keys) {
	case 0:
		if err := c.renderer.Notice(ctx, fmt.Sprintf("There were no %s found", lv.plural)); err != nil {
			return 0, err
		}
		return 0, errEmptyLevel
	case 1:
		return keys[0], nil
	}

	options := make([]Option, 0, len(keys)+1)
	for _, k := range keys {
		options = append(options, Option{Key: k, Label: lv.label(k)})
	}
	options = append(options, Option{Key: AggregateKey, Label: lv.aggregate})

	return c.selectOption(ctx, Prompt{Title: lv.title, Options: options, PageSize: c.pageSize})
}

// navigate offers the current level and every enclosing one, innermost first.
func (c *Controller) navigate(ctx context.Context, from State) (State, error) {
	var options []Option
	for s := from; s >= AtYear; s-- {
		options = append(options, Option{Key: int(s), Label: s.String()})
	}

	key, err := c.selectOption(ctx, Prompt{Title: "Navigation:", Options: options, PageSize: c.pageSize})
	if err != nil {
		return 0, err
	}
	return State(key), nil
}

func (c *Controller) selectOption(ctx context.Context, p Prompt) (int, error) {
	c.prompted++
	key, err := c.renderer.Select(ctx, p)
	if err != nil {
		return 0, err
	}
	for _, opt := range p.Options {
		if opt.Key == key {
			return key, nil
		}
	}
	return 0, fmt.Errorf("prompt %q: renderer returned unknown option %d", p.Title, key)
}

func (c *Controller) showTable(ctx context.Context, title string, rows []analytics.ActionTotal) error {
	return c.renderer.Table(ctx, Table{
		Title:   title,
		Caption: analytics.TableCaption,
		Rows:    rows,
	})
}
