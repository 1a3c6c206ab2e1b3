package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "finprep/internal/errors"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeTestFile(t, "users.csv",
		"id,current_age,yearly_income\n"+
			"825,53,$59696\n"+
			"1746,53,$77254\n")

	table, err := LoadTable(testLogger(), path, "users", []string{"id", "current_age", "yearly_income"})
	require.NoError(t, err)

	assert.Equal(t, "users", table.Name)
	assert.Equal(t, []string{"id", "current_age", "yearly_income"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "825", table.Value(table.Rows[0], "id"))
	assert.Equal(t, "$77254", table.Value(table.Rows[1], "yearly_income"))
}

func TestLoadTableRaggedRows(t *testing.T) {
	path := writeTestFile(t, "ragged.csv",
		"id,a,b\n"+
			"1,x\n"+
			"2,y,z,extra\n")

	table, err := LoadTable(testLogger(), path, "ragged", nil)
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "", table.Value(table.Rows[0], "b"))
	assert.Equal(t, "z", table.Value(table.Rows[1], "b"))
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(testLogger(), filepath.Join(t.TempDir(), "nope.csv"), "users", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestLoadTableMissingExpectedColumnIsNotFatal(t *testing.T) {
	path := writeTestFile(t, "partial.csv",
		"id\n"+
			"1\n")

	table, err := LoadTable(testLogger(), path, "partial", []string{"id", "never_present"})
	require.NoError(t, err)
	assert.False(t, table.HasColumn("never_present"))
	assert.Equal(t, "", table.Value(table.Rows[0], "never_present"))
}

func TestLoadMccCodes(t *testing.T) {
	path := writeTestFile(t, "mcc_codes.json",
		`{"5812": "Eating Places and Restaurants", "5411": "Grocery Stores", "bogus": "skipped"}`)

	codes, err := LoadMccCodes(testLogger(), path)
	require.NoError(t, err)

	// Non-numeric keys are skipped, the rest come back sorted by code.
	require.Len(t, codes, 2)
	assert.Equal(t, int64(5411), codes[0].Code)
	assert.Equal(t, "Grocery Stores", codes[0].Description)
	assert.Equal(t, int64(5812), codes[1].Code)
}

func TestLoadMccCodesMalformedJSON(t *testing.T) {
	path := writeTestFile(t, "mcc_codes.json", `{"5812": `)

	_, err := LoadMccCodes(testLogger(), path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestLoadMccCodesMissingFile(t *testing.T) {
	_, err := LoadMccCodes(testLogger(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}
