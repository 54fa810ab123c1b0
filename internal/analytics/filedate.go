package analytics

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultFilePrefix is the literal token every event-log file name starts with.
const DefaultFilePrefix = "analytic"

// ErrMalformedFileName is returned when a file name does not encode a calendar date.
var ErrMalformedFileName = errors.New("malformed event-log file name")

// FileDate is the calendar day an event-log file covers.
type FileDate struct {
	Year  int
	Month int
	Day   int
}

// String renders the date as YYYY-MM-DD.
func (d FileDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseFileDate extracts the date from an event-log file path.
//
// The base name minus prefix and extensions is a year of four digits followed by an
// unpadded month and day ("yyyyMd"). Two remaining digits are one each, four are two
// each. With three, a two-digit month is taken when it names October to December and
// leaves a non-zero day; otherwise the month is the single first digit. The rule is
// deterministic but not a true inverse of the writer's format, e.g. "2024111" always
// reads as November 1st and never as January 11th.
func ParseFileDate(path, prefix string) (FileDate, error) {
	base := filepath.Base(path)
	stem, _, _ := strings.Cut(base, ".")
	digits := strings.TrimPrefix(stem, prefix)

	date, err := parseCompactDate(digits)
	if err != nil {
		return FileDate{}, fmt.Errorf("%w %q: %v", ErrMalformedFileName, base, err)
	}
	return date, nil
}

func parseCompactDate(s string) (FileDate, error) {
	if len(s) < 6 || len(s) > 8 {
		return FileDate{}, fmt.Errorf("expected 6 to 8 digits, got %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return FileDate{}, fmt.Errorf("non-digit in %q", s)
		}
	}

	year, _ := strconv.Atoi(s[:4])
	rest := s[4:]

	var monthDigits, dayDigits string
	switch len(rest) {
	case 2:
		monthDigits, dayDigits = rest[:1], rest[1:]
	case 4:
		monthDigits, dayDigits = rest[:2], rest[2:]
	case 3:
		greedyMonth, _ := strconv.Atoi(rest[:2])
		if greedyMonth >= 10 && greedyMonth <= 12 && rest[2] != '0' {
			monthDigits, dayDigits = rest[:2], rest[2:]
		} else {
			monthDigits, dayDigits = rest[:1], rest[1:]
		}
	}

	month, _ := strconv.Atoi(monthDigits)
	day, _ := strconv.Atoi(dayDigits)

	if year < 1 {
		return FileDate{}, fmt.Errorf("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return FileDate{}, fmt.Errorf("month %d out of range", month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if day < 1 || t.Day() != day || int(t.Month()) != month {
		return FileDate{}, fmt.Errorf("day %d does not exist in %04d-%02d", day, year, month)
	}

	return FileDate{Year: year, Month: month, Day: day}, nil
}
