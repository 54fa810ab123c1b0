// Package report renders non-interactive summaries of a CountTree: all time,
// then each year, then optionally each month.
package report

import (
	"fmt"
	"io"
	"strconv"

	"drilldown/internal/analytics"
	"drilldown/internal/logging"
)

// Format selects how sections are written.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted Format values.
var Formats = []Format{FormatTable, FormatMarkdown}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q (valid: %v)", s, Formats)
}

// Section is one titled aggregate view.
type Section struct {
	Title string
	Scope analytics.Scope
	Rows  []analytics.ActionTotal
}

// Options configures Write.
type Options struct {
	Format Format
	Year   int  // when non-zero only this year is reported
	Months bool // add a section per month
	Style  string
	Width  int
}

// Build lists the sections for tree in the order they are written. The all-time
// section comes first unless a single year is requested.
func Build(tree analytics.CountTree, year int, months bool) ([]Section, error) {
	var sections []Section
	years := tree.Years()
	if year != 0 {
		if _, ok := tree[year]; !ok {
			return nil, fmt.Errorf("no events recorded for %d", year)
		}
		years = []int{year}
	} else {
		sections = append(sections, Section{
			Title: analytics.AllTimeTitle(),
			Scope: analytics.ScopeAllTime,
			Rows:  analytics.AllTime(tree),
		})
	}

	for _, y := range years {
		monthly := tree[y]
		sections = append(sections, Section{
			Title: analytics.YearTitle(y),
			Scope: analytics.ScopeYear,
			Rows:  analytics.ForYear(monthly),
		})
		if !months {
			continue
		}
		for _, m := range monthly.Months() {
			sections = append(sections, Section{
				Title: analytics.MonthTitle(y, m),
				Scope: analytics.ScopeMonth,
				Rows:  analytics.ForMonth(monthly[m]),
			})
		}
	}
	return sections, nil
}

// Write renders tree to w in the chosen format.
func Write(w io.Writer, tree analytics.CountTree, opts Options) error {
	sections, err := Build(tree, opts.Year, opts.Months)
	if err != nil {
		return err
	}
	logging.Get(logging.CategoryReport).Infow("writing report",
		"format", string(opts.Format),
		"sections", len(sections),
	)

	switch opts.Format {
	case FormatMarkdown:
		out, err := RenderMarkdown(Markdown(sections), opts.Style, opts.Width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case FormatTable, "":
		return WriteTables(w, sections)
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
}

func rowCells(rows []analytics.ActionTotal) [][]string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Action, strconv.Itoa(r.Count)}
	}
	return cells
}
