package dataprocessing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// parseCurrency converts currency-formatted text like "$1,234.56" or
// "-$45.00" to a float64. Everything except digits and the decimal point is
// stripped; a leading minus (or parenthesized amount) keeps the sign.
// Returns nil when the text is empty or not parsable as a number.
func parseCurrency(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	negative := strings.HasPrefix(s, "-") || strings.HasPrefix(s, "(")

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return nil
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	if negative {
		d = d.Neg()
	}

	f, _ := d.Float64()
	return &f
}

// parseMonthYear converts "MM/YYYY" text to the first day of that month in
// UTC. Returns nil on parse failure.
func parseMonthYear(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	t, err := time.Parse("01/2006", s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// parseTimestamp converts transaction date text to a time.Time. The raw
// data carries "2006-01-02 15:04:05" timestamps; plain dates are accepted
// as a fallback. Returns nil on parse failure.
func parseTimestamp(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// parseYesNo converts free-text Yes/No to 1/0. Matching is
// case-insensitive; any other value yields nil.
func parseYesNo(raw string) *int64 {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		one := int64(1)
		return &one
	case "no":
		zero := int64(0)
		return &zero
	default:
		return nil
	}
}

// parseInt converts integer text to *int64, nil on failure
func parseInt(raw string) *int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseFloat converts numeric text to *float64, nil on failure
func parseFloat(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
