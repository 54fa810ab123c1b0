package analytics

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// TableCaption is shown under every totals table.
const TableCaption = "Analytics are for how much a given event has occurred in the specified timeframe"

// MonthName returns the English name of month m (1-12).
func MonthName(m int) string {
	return time.Month(m).String()
}

// AllTimeTitle titles the totals of the whole tree.
func AllTimeTitle() string {
	return "Analytics for all time"
}

// YearTitle titles the totals of one year.
func YearTitle(year int) string {
	return fmt.Sprintf("Analytics for the year %d", year)
}

// MonthTitle titles the totals of one month.
func MonthTitle(year, month int) string {
	return fmt.Sprintf("Analytics for %s of %d", MonthName(month), year)
}

// DayTitle titles the totals of one day.
func DayTitle(year, month, day int) string {
	return fmt.Sprintf("Analytics for %s", DayPhrase(year, month, day))
}

// DayPhrase reads like "5th of November of 2024".
func DayPhrase(year, month, day int) string {
	return fmt.Sprintf("%s of %s of %d", humanize.Ordinal(day), MonthName(month), year)
}

// ChartTitle titles the hourly bar chart of one action.
func ChartTitle(action string, year, month, day int) string {
	return fmt.Sprintf("Action (%s) occurrence per hour for %s", action, DayPhrase(year, month, day))
}

// HourLabel labels an hour bucket, e.g. "9:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%d:00", hour)
}
