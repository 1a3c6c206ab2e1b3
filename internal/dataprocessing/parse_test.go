package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *float64
	}{
		{
			name:     "plain dollar amount",
			input:    "$59696",
			expected: floatPtr(59696),
		},
		{
			name:     "thousands separators and cents",
			input:    "$1,234.56",
			expected: floatPtr(1234.56),
		},
		{
			name:     "negative amount",
			input:    "-$45.00",
			expected: floatPtr(-45.0),
		},
		{
			name:     "parenthesized negative",
			input:    "($12.50)",
			expected: floatPtr(-12.5),
		},
		{
			name:     "zero",
			input:    "$0",
			expected: floatPtr(0),
		},
		{
			name:     "surrounding whitespace",
			input:    "  $100.00  ",
			expected: floatPtr(100.0),
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "not a number",
			input:    "n/a",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCurrency(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 1e-9)
		})
	}
}

func TestParseMonthYear(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
	}{
		{
			name:     "typical expiry",
			input:    "03/2019",
			expected: timePtr(time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "december",
			input:    "12/2024",
			expected: timePtr(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "wrong layout",
			input:    "2019-03",
			expected: nil,
		},
		{
			name:     "month out of range",
			input:    "13/2019",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMonthYear(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	got := parseTimestamp("2019-10-05 14:27:00")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2019, time.October, 5, 14, 27, 0, 0, time.UTC), got.UTC())

	got = parseTimestamp("2019-10-05")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2019, time.October, 5, 0, 0, 0, 0, time.UTC), got.UTC())

	assert.Nil(t, parseTimestamp(""))
	assert.Nil(t, parseTimestamp("05/10/2019"))
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *int64
	}{
		{name: "yes", input: "Yes", expected: intPtr(1)},
		{name: "no", input: "No", expected: intPtr(0)},
		{name: "uppercase", input: "YES", expected: intPtr(1)},
		{name: "whitespace", input: " no ", expected: intPtr(0)},
		{name: "empty", input: "", expected: nil},
		{name: "other text", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseYesNo(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestParseInt(t *testing.T) {
	got := parseInt("42")
	require.NotNil(t, got)
	assert.Equal(t, int64(42), *got)

	got = parseInt(" -7 ")
	require.NotNil(t, got)
	assert.Equal(t, int64(-7), *got)

	assert.Nil(t, parseInt(""))
	assert.Nil(t, parseInt("4.5"))
	assert.Nil(t, parseInt("abc"))
}

func TestParseFloat(t *testing.T) {
	got := parseFloat("41.55")
	require.NotNil(t, got)
	assert.InDelta(t, 41.55, *got, 1e-9)

	assert.Nil(t, parseFloat(""))
	assert.Nil(t, parseFloat("x"))
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int64) *int64 { return &i }

func timePtr(t time.Time) *time.Time { return &t }
