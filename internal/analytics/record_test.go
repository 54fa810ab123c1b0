package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name   string
		event  string
		want   string
		wantOK bool
	}{
		{name: "suffix dropped", event: "login_01", want: "login", wantOK: true},
		{name: "underscores trimmed both sides", event: "__open_menu__x1", want: "open_menu", wantOK: true},
		{name: "inner underscores kept", event: "add_to_cart_02", want: "add_to_cart", wantOK: true},
		{name: "no underscore before suffix", event: "logoutAB", want: "logout", wantOK: true},
		{name: "empty", event: "", wantOK: false},
		{name: "whitespace", event: "   \t", wantOK: false},
		{name: "one character", event: "a", wantOK: false},
		{name: "exactly suffix length", event: "ab", wantOK: false},
		{name: "three characters", event: "abc", want: "a", wantOK: true},
		{name: "only underscores left", event: "___01", wantOK: false},
		{name: "multibyte suffix", event: "café_éé", want: "café", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAction(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAction_ShortensAlreadyParsedNames(t *testing.T) {
	for _, name := range []string{"login", "add_to_cart", "xyz"} {
		got, ok := ParseAction(name)
		require.True(t, ok, name)
		assert.LessOrEqual(t, len([]rune(got)), len([]rune(name))-2, name)
	}
}

func TestTimestamp_UnmarshalLayouts(t *testing.T) {
	tests := []struct {
		raw      string
		wantHour int
	}{
		{raw: `"2024-11-05T09:15:00"`, wantHour: 9},
		{raw: `"2024-11-05T14:00:00.1234567"`, wantHour: 14},
		{raw: `"2024-11-05T23:59:59+02:00"`, wantHour: 23},
		{raw: `"2024-11-05T07:30:00Z"`, wantHour: 7},
		{raw: `"2024-11-05 18:01:02"`, wantHour: 18},
		{raw: `"2024-11-05"`, wantHour: 0},
		{raw: `null`, wantHour: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.Equal(t, tt.wantHour, ts.Hour())
		})
	}
}

func TestTimestamp_RejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestTimestamp_MarshalRoundTrip(t *testing.T) {
	in := Timestamp{Time: time.Date(2024, 11, 5, 9, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Timestamp
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Equal(out.Time))
}
