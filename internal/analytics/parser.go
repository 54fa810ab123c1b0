package analytics

import (
	"encoding/json"
	"errors"
	"fmt"

	"drilldown/internal/logging"
)

// ErrMalformedPayload is returned when a file's content is not a JSON array of
// event records.
var ErrMalformedPayload = errors.New("malformed event-log payload")

// FileResult is what one event-log file contributes to the tree.
type FileResult struct {
	Path    string
	Date    FileDate
	Hourly  HourlyCounts
	Records int // raw records in the payload
	Counted int // records that produced an action
}

// Skipped is the number of records dropped for having no usable event name.
func (r FileResult) Skipped() int {
	return r.Records - r.Counted
}

// Parser turns raw event-log payloads into per-hour action counts.
type Parser struct {
	// Prefix is stripped from file names before the date is read.
	Prefix string

	// OnRecord, when set, is called once per raw record, skipped ones included.
	OnRecord func()
}

// NewParser returns a parser for file names starting with prefix.
func NewParser(prefix string) *Parser {
	return &Parser{Prefix: prefix}
}

// DecodeRecords decodes a payload. A JSON null or an empty array yields no records
// and no error.
func DecodeRecords(data []byte) ([]EventRecord, error) {
	var records []EventRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return records, nil
}

// Count folds records into hour -> action -> count. Records without a usable event
// name are skipped.
func (p *Parser) Count(records []EventRecord) HourlyCounts {
	hourly := make(HourlyCounts)
	for _, rec := range records {
		if p.OnRecord != nil {
			p.OnRecord()
		}
		action, ok := ParseAction(rec.Event)
		if !ok {
			continue
		}
		hourly.Add(rec.DateTime.Hour(), action)
	}
	return hourly
}

// ParseFile reads the date from path and the counts from data.
// Both a bad name and a bad payload are errors; an empty payload is not.
func (p *Parser) ParseFile(path string, data []byte) (FileResult, error) {
	date, err := ParseFileDate(path, p.Prefix)
	if err != nil {
		return FileResult{}, err
	}

	records, err := DecodeRecords(data)
	if err != nil {
		return FileResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return p.ParseRecords(path, date, records), nil
}

// ParseRecords counts already-decoded records for a file of the given date.
func (p *Parser) ParseRecords(path string, date FileDate, records []EventRecord) FileResult {
	hourly := p.Count(records)

	result := FileResult{
		Path:    path,
		Date:    date,
		Hourly:  hourly,
		Records: len(records),
		Counted: Sum(hourly),
	}

	logging.Get(logging.CategoryParse).Debugw("parsed event-log file",
		"path", path,
		"date", date.String(),
		"records", result.Records,
		"skipped", result.Skipped(),
		"hours", len(hourly),
	)
	return result
}
