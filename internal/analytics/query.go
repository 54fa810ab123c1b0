package analytics

import (
	"slices"
	"strings"
)

// HoursPerDay is the length of every hourly series.
const HoursPerDay = 24

// ChartFloor is the smallest axis width a bar chart is drawn against.
const ChartFloor = 60

// Scope is the granularity a totals table is computed for.
type Scope int

const (
	ScopeAllTime Scope = iota
	ScopeYear
	ScopeMonth
	ScopeDay
)

func (s Scope) String() string {
	switch s {
	case ScopeAllTime:
		return "all-time"
	case ScopeYear:
		return "year"
	case ScopeMonth:
		return "month"
	case ScopeDay:
		return "day"
	default:
		return "unknown"
	}
}

// Descending reports whether totals at this scope are listed Z to A.
// All-time and year tables run A to Z; month and day tables run Z to A.
func (s Scope) Descending() bool {
	return s == ScopeMonth || s == ScopeDay
}

// ActionTotal is one row of a totals table.
type ActionTotal struct {
	Action string
	Count  int
}

// Totals sums every leaf below s per action. It does not modify s.
func Totals(s Subtree) ActionCounts {
	totals := make(ActionCounts)
	if s != nil {
		s.foldInto(totals)
	}
	return totals
}

// Ranked orders totals by action name in the direction the scope prescribes.
func Ranked(totals ActionCounts, scope Scope) []ActionTotal {
	rows := make([]ActionTotal, 0, len(totals))
	for action, count := range totals {
		rows = append(rows, ActionTotal{Action: action, Count: count})
	}
	slices.SortFunc(rows, func(a, b ActionTotal) int {
		if scope.Descending() {
			return strings.Compare(b.Action, a.Action)
		}
		return strings.Compare(a.Action, b.Action)
	})
	return rows
}

// AllTime returns the ranked totals of the whole tree.
func AllTime(t CountTree) []ActionTotal { return Ranked(Totals(t), ScopeAllTime) }

// ForYear returns the ranked totals of one year.
func ForYear(m MonthlyCounts) []ActionTotal { return Ranked(Totals(m), ScopeYear) }

// ForMonth returns the ranked totals of one month.
func ForMonth(d DailyCounts) []ActionTotal { return Ranked(Totals(d), ScopeMonth) }

// ForDay returns the ranked totals of one day.
func ForDay(h HourlyCounts) []ActionTotal { return Ranked(Totals(h), ScopeDay) }

// HourlySeries returns how often action occurred in each hour of the day, with zero
// for hours it did not occur in.
func HourlySeries(h HourlyCounts, action string) [HoursPerDay]int {
	var series [HoursPerDay]int
	for hour, actions := range h {
		if hour < 0 || hour >= HoursPerDay {
			continue
		}
		series[hour] = actions[action]
	}
	return series
}

// ChartWidth is the axis width for values: their maximum, but never below floor.
func ChartWidth(values []int, floor int) int {
	width := floor
	for _, v := range values {
		width = max(width, v)
	}
	return width
}
