package dataprocessing

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"finprep/internal/errors"
	"finprep/pkg/contracts/domain"
)

// RawTable is the in-memory form of one loaded CSV source: the header row,
// a name-to-position index, and the data rows as raw strings. All typed
// interpretation is left to the normalizers.
type RawTable struct {
	Name    string
	Columns []string
	Rows    [][]string

	index map[string]int
}

// HasColumn reports whether the table header contains the named column
func (t *RawTable) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the raw cell for the named column in the given row, or ""
// when the column is absent from the header or the row is short.
func (t *RawTable) Value(row []string, column string) string {
	idx, ok := t.index[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// LoadTable reads a delimited-text source with a header row. A missing or
// unreadable file is fatal. Expected columns that are absent from the
// header are reported as validation warnings rather than silently skipped,
// so upstream schema drift surfaces at load time.
func LoadTable(logger *slog.Logger, path, name string, expected []string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(path)
		}
		return nil, errors.NewParsingError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may be ragged; short rows read as empty cells

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read header of %s", path), err)
	}

	table := &RawTable{
		Name:    name,
		Columns: header,
		index:   make(map[string]int, len(header)),
	}
	for i, col := range header {
		if _, dup := table.index[col]; !dup {
			table.index[col] = i
		}
	}

	for _, col := range expected {
		if !table.HasColumn(col) {
			logger.Warn("expected column missing from source",
				slog.String("table", name),
				slog.String("column", col))
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
		}
		table.Rows = append(table.Rows, row)
	}

	logger.Info("loaded table",
		slog.String("table", name),
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)))

	return table, nil
}

// LoadMccCodes reads the merchant category code reference, a JSON object
// mapping string codes to descriptions. Codes are coerced to integers for
// join compatibility with Transaction.MCC; non-numeric codes are skipped
// with a warning. Malformed JSON is fatal.
func LoadMccCodes(logger *slog.Logger, path string) ([]domain.MccCode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(path)
		}
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("malformed MCC reference %s", path), err)
	}

	codes := make([]domain.MccCode, 0, len(raw))
	for key, description := range raw {
		code, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			logger.Warn("skipping non-numeric MCC code",
				slog.String("code", key))
			continue
		}
		codes = append(codes, domain.MccCode{Code: code, Description: description})
	}

	// JSON object iteration order is random; sort for deterministic output
	sort.Slice(codes, func(i, j int) bool { return codes[i].Code < codes[j].Code })

	logger.Info("loaded MCC reference",
		slog.String("path", path),
		slog.Int("codes", len(codes)))

	return codes, nil
}
