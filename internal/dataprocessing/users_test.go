package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUsers(t *testing.T) {
	table := testTable("users", UserColumns, [][]string{
		{"825", "53", "66", "1966", "11", "Female", "462 Rose Lane", "34.15", "-117.76", "$29278", "$59696", "$127613", "787", "5"},
		{"825", "99", "99", "1900", "1", "Female", "dup row, dropped", "0", "0", "$1", "$1", "$1", "1", "1"},
		{"1746", "53", "68", "1966", "12", "Male", "3606 Federal Blvd", "40.76", "-73.74", "$37891", "$77254", "$191349", "701", "5"},
		{"1718", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	})

	users, stats := NormalizeUsers(testLogger(), table)

	require.Len(t, users, 3)
	assert.Equal(t, 4, stats.RowsIn)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 3, stats.RowsOut)

	first := users[0]
	assert.Equal(t, int64(825), first.ID)
	require.NotNil(t, first.CurrentAge)
	assert.Equal(t, int64(53), *first.CurrentAge)
	assert.Equal(t, "462 Rose Lane", first.Address)
	require.NotNil(t, first.YearlyIncome)
	assert.InDelta(t, 59696.0, *first.YearlyIncome, 1e-9)
	require.NotNil(t, first.TotalDebt)
	assert.InDelta(t, 127613.0, *first.TotalDebt, 1e-9)
	require.NotNil(t, first.DebtToIncomeRatio)
	assert.InDelta(t, 127613.0/59696.0, *first.DebtToIncomeRatio, 1e-9)

	// Empty numeric cells stay null instead of becoming zeros.
	blank := users[2]
	assert.Equal(t, int64(1718), blank.ID)
	assert.Nil(t, blank.CurrentAge)
	assert.Nil(t, blank.YearlyIncome)
	assert.Nil(t, blank.DebtToIncomeRatio)
}

func TestDebtToIncomeRatio(t *testing.T) {
	tests := []struct {
		name     string
		debt     *float64
		income   *float64
		expected *float64
	}{
		{name: "normal", debt: floatPtr(50000), income: floatPtr(100000), expected: floatPtr(0.5)},
		{name: "zero debt", debt: floatPtr(0), income: floatPtr(100000), expected: floatPtr(0)},
		{name: "nil debt", debt: nil, income: floatPtr(100000), expected: nil},
		{name: "nil income", debt: floatPtr(50000), income: nil, expected: nil},
		{name: "zero income", debt: floatPtr(50000), income: floatPtr(0), expected: nil},
		{name: "negative income", debt: floatPtr(50000), income: floatPtr(-1), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := debtToIncomeRatio(tt.debt, tt.income)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 1e-9)
		})
	}
}
