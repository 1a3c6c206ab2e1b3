package exporter

import (
	"strconv"
	"time"
)

// CSV cell renderers. Nil values become empty cells; floats keep full
// precision so the text rendering round-trips to the same float64.

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func formatIntPtr(i *int64) string {
	if i == nil {
		return ""
	}
	return formatInt(*i)
}

// formatDate renders a calendar date column (expires, acct_open_date)
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
