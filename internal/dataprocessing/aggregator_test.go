package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finprep/pkg/contracts/domain"
)

func TestAggregateByCard(t *testing.T) {
	txs := []domain.Transaction{
		{ID: 1, CardID: 100, Amount: floatPtr(50), HasError: 0},
		{ID: 2, CardID: 200, Amount: floatPtr(10)},
		{ID: 3, CardID: 100, Amount: floatPtr(-20), IsRefund: 1, HasError: 1},
		{ID: 4, CardID: 100, Amount: floatPtr(30), HasError: 1},
		{ID: 5, CardID: 100, Amount: nil},
	}

	aggs := AggregateByCard(testLogger(), txs)

	require.Len(t, aggs, 2)

	// Output follows first appearance in the transaction stream.
	card := aggs[0]
	assert.Equal(t, int64(100), card.CardID)
	assert.Equal(t, int64(4), card.TxnCount)
	assert.Equal(t, int64(1), card.RefundCount)
	assert.Equal(t, int64(2), card.ErrorTotal)
	assert.InDelta(t, 0.5, card.ErrorRate, 1e-9)

	// Amount statistics ignore the nil amount.
	require.NotNil(t, card.AmountMean)
	assert.InDelta(t, 20.0, *card.AmountMean, 1e-9)
	require.NotNil(t, card.AmountMax)
	assert.InDelta(t, 50.0, *card.AmountMax, 1e-9)
	require.NotNil(t, card.AmountMin)
	assert.InDelta(t, -20.0, *card.AmountMin, 1e-9)
	assert.InDelta(t, 80.0, card.TotalSpent, 1e-9)
	assert.InDelta(t, 20.0, card.TotalRefunded, 1e-9)

	other := aggs[1]
	assert.Equal(t, int64(200), other.CardID)
	assert.Equal(t, int64(1), other.TxnCount)
	assert.Equal(t, int64(0), other.RefundCount)
	assert.InDelta(t, 0.0, other.ErrorRate, 1e-9)
	assert.InDelta(t, 10.0, other.TotalSpent, 1e-9)
	assert.InDelta(t, 0.0, other.TotalRefunded, 1e-9)
}

func TestAggregateByCardAllAmountsNil(t *testing.T) {
	txs := []domain.Transaction{
		{ID: 1, CardID: 7, Amount: nil},
		{ID: 2, CardID: 7, Amount: nil, HasError: 1},
	}

	aggs := AggregateByCard(testLogger(), txs)

	require.Len(t, aggs, 1)
	agg := aggs[0]
	assert.Equal(t, int64(2), agg.TxnCount)
	assert.Nil(t, agg.AmountMean)
	assert.Nil(t, agg.AmountMax)
	assert.Nil(t, agg.AmountMin)
	assert.InDelta(t, 0.0, agg.TotalSpent, 1e-9)
	assert.InDelta(t, 0.0, agg.TotalRefunded, 1e-9)
	assert.InDelta(t, 0.5, agg.ErrorRate, 1e-9)
}

func TestAggregateByCardEmptyInput(t *testing.T) {
	aggs := AggregateByCard(testLogger(), nil)
	assert.Empty(t, aggs)
}
