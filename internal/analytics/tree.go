package analytics

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// ActionCounts maps an action name to how often it occurred.
type ActionCounts map[string]int

// HourlyCounts maps an hour of the day (0-23) to the actions seen in it.
type HourlyCounts map[int]ActionCounts

// DailyCounts maps a day of the month to its hourly counts.
type DailyCounts map[int]HourlyCounts

// MonthlyCounts maps a month (1-12) to its days.
type MonthlyCounts map[int]DailyCounts

// CountTree maps a year to its months. It is written once by an Aggregator and only
// read afterwards.
type CountTree map[int]MonthlyCounts

// Subtree is any node of a CountTree whose leaves can be summed.
type Subtree interface {
	foldInto(totals ActionCounts)
}

func (a ActionCounts) foldInto(totals ActionCounts) {
	for action, count := range a {
		totals[action] += count
	}
}

func (h HourlyCounts) foldInto(totals ActionCounts) {
	for _, actions := range h {
		actions.foldInto(totals)
	}
}

func (d DailyCounts) foldInto(totals ActionCounts) {
	for _, hourly := range d {
		hourly.foldInto(totals)
	}
}

func (m MonthlyCounts) foldInto(totals ActionCounts) {
	for _, daily := range m {
		daily.foldInto(totals)
	}
}

func (t CountTree) foldInto(totals ActionCounts) {
	for _, monthly := range t {
		monthly.foldInto(totals)
	}
}

// Years returns the years present, ascending.
func (t CountTree) Years() []int { return sortedKeys(t) }

// Months returns the months present, ascending.
func (m MonthlyCounts) Months() []int { return sortedKeys(m) }

// Days returns the days present, ascending.
func (d DailyCounts) Days() []int { return sortedKeys(d) }

// Hours returns the hours present, ascending.
func (h HourlyCounts) Hours() []int { return sortedKeys(h) }

// Actions returns every action observed in any hour of the day, ascending and
// without duplicates.
func (h HourlyCounts) Actions() []string {
	var all []string
	for _, actions := range h {
		all = append(all, lo.Keys(actions)...)
	}
	distinct := lo.Uniq(all)
	slices.Sort(distinct)
	return distinct
}

// Add counts one occurrence of action at hour. The first occurrence starts at 1.
func (h HourlyCounts) Add(hour int, action string) {
	actions, ok := h[hour]
	if !ok {
		actions = make(ActionCounts)
		h[hour] = actions
	}
	actions[action]++
}

// Sum returns the total of every leaf count below a subtree.
func Sum(s Subtree) int {
	total := 0
	for _, count := range Totals(s) {
		total += count
	}
	return total
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
