package analytics

import "drilldown/internal/logging"

// Aggregator builds a CountTree one file at a time. It has a single writer; callers
// must not call Add concurrently.
type Aggregator struct {
	tree     CountTree
	days     int
	replaced int
}

// NewAggregator returns an aggregator over an empty tree.
func NewAggregator() *Aggregator {
	return &Aggregator{tree: make(CountTree)}
}

// Add places a file's hourly counts under its year, month and day.
//
// A file with no counted records adds nothing, so every day in the tree has data.
// A second file for a day already present replaces the earlier one; counts are not
// merged. Add reports whether the tree changed.
func (a *Aggregator) Add(date FileDate, hourly HourlyCounts) bool {
	log := logging.Get(logging.CategoryAggregate)

	if len(hourly) == 0 {
		log.Debugw("skipping day without records", "date", date.String())
		return false
	}

	monthly, ok := a.tree[date.Year]
	if !ok {
		monthly = make(MonthlyCounts)
		a.tree[date.Year] = monthly
	}

	daily, ok := monthly[date.Month]
	if !ok {
		daily = make(DailyCounts)
		monthly[date.Month] = daily
	}

	if _, exists := daily[date.Day]; exists {
		a.replaced++
		log.Warnw("day already aggregated, replacing", "date", date.String())
	} else {
		a.days++
	}
	daily[date.Day] = hourly
	return true
}

// AddResult is Add for a parsed file.
func (a *Aggregator) AddResult(r FileResult) bool {
	return a.Add(r.Date, r.Hourly)
}

// Tree returns the tree built so far. Callers must treat it as read-only.
func (a *Aggregator) Tree() CountTree {
	return a.tree
}

// Days is the number of distinct days in the tree.
func (a *Aggregator) Days() int {
	return a.days
}

// Replaced is the number of times a day was overwritten by a later file.
func (a *Aggregator) Replaced() int {
	return a.replaced
}
