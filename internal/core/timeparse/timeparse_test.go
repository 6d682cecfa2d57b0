package timeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{name: "range averages with round half up", text: "10-15 minutes", want: 13, ok: true},
		{name: "range even average", text: "10-20 minutes", want: 15, ok: true},
		{name: "hours and minutes accumulate", text: "1 hour 20 min", want: 80, ok: true},
		{name: "hours only", text: "2 hours", want: 120, ok: true},
		{name: "minutes only", text: "45 minutes", want: 45, ok: true},
		{name: "bare digits", text: "45", want: 45, ok: true},
		{name: "bare digits with whitespace", text: "  30  ", want: 30, ok: true},
		{name: "uppercase input", text: "1 HOUR 5 MIN", want: 65, ok: true},
		{name: "range wins over unit scan", text: "10-15 min", want: 13, ok: true},
		{name: "empty string", text: "", want: 0, ok: false},
		{name: "no numbers", text: "until golden brown", want: 0, ok: false},
		{name: "digits embedded in prose are not bare digits", text: "step 3", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMinutes(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *DurationRange
	}{
		{name: "simple range", text: "5-10 minutes", want: &DurationRange{Min: 5, Max: 10, Avg: 8}},
		{name: "half rounds up", text: "10-15", want: &DurationRange{Min: 10, Max: 15, Avg: 13}},
		{name: "reversed bounds are swapped", text: "15-10", want: &DurationRange{Min: 10, Max: 15, Avg: 13}},
		{name: "equal bounds", text: "7-7", want: &DurationRange{Min: 7, Max: 7, Avg: 7}},
		{name: "spaces around dash", text: "20 - 30 min", want: &DurationRange{Min: 20, Max: 30, Avg: 25}},
		{name: "no range", text: "45 minutes", want: nil},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRange(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
