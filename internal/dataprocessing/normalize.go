package dataprocessing

import (
	"log/slog"
)

// TableStats summarizes what one normalizer did to its table
type TableStats struct {
	Table      string
	RowsIn     int
	Duplicates int // rows dropped because their key was already seen
	Invalid    int // rows dropped because the key column was unusable
	Filtered   int // rows dropped by a business rule
	RowsOut    int
}

// Log emits the stats as a single structured event
func (s TableStats) Log(logger *slog.Logger) {
	logger.Info("normalized table",
		slog.String("table", s.Table),
		slog.Int("rows_in", s.RowsIn),
		slog.Int("duplicates_dropped", s.Duplicates),
		slog.Int("invalid_keys_dropped", s.Invalid),
		slog.Int("rows_filtered", s.Filtered),
		slog.Int("rows_out", s.RowsOut))
}

// keyedRows walks the table rows in source order, parses the primary key
// column, and calls fn exactly once per distinct key (first occurrence
// wins). Rows without a parsable key are counted as invalid and skipped.
func keyedRows(t *RawTable, keyColumn string, stats *TableStats, fn func(key int64, row []string)) {
	seen := make(map[int64]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		key := parseInt(t.Value(row, keyColumn))
		if key == nil {
			stats.Invalid++
			continue
		}
		if _, dup := seen[*key]; dup {
			stats.Duplicates++
			continue
		}
		seen[*key] = struct{}{}
		fn(*key, row)
	}
}
