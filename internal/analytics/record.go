// Package analytics turns per-day event-log files into a year → month → day → hour
// tree of per-action counts and answers roll-up queries over any part of it.
package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// actionSuffixLen is the number of trailing characters every raw event name carries
// after the action itself (e.g. "login_01" -> "login").
const actionSuffixLen = 2

// EventRecord is a single entry of an event-log file.
type EventRecord struct {
	Event    string    `json:"Event"`
	DateTime Timestamp `json:"DateTime"`
}

// Timestamp accepts the ISO-8601 shapes event logs are written in, with or without
// a zone offset. The wall-clock value is kept as written.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.9999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Time.Format(time.RFC3339Nano))
}

// ParseAction derives the action name from a raw event name: the trailing two
// characters are dropped, then surrounding underscores are trimmed.
//
// The second return value is false for names that carry no action: blank names,
// names no longer than the suffix, and names that are nothing but underscores once
// the suffix is gone. Such records are skipped by the parser.
func ParseAction(event string) (string, bool) {
	if strings.TrimSpace(event) == "" {
		return "", false
	}

	runes := []rune(event)
	if len(runes) <= actionSuffixLen {
		return "", false
	}

	action := strings.Trim(string(runes[:len(runes)-actionSuffixLen]), "_")
	if action == "" {
		return "", false
	}
	return action, true
}
