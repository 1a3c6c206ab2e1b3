package dataprocessing

import (
	"log/slog"
	"math"

	"finprep/pkg/contracts/domain"
)

// AggregateByCard computes the per-card summary statistics over the
// normalized transaction table. Output order follows the first appearance
// of each card in the transactions. Cards with zero transactions are
// simply absent; the credit-limit join fills their columns with nulls.
func AggregateByCard(logger *slog.Logger, txs []domain.Transaction) []domain.CardAggregates {
	byCard := make(map[int64]*domain.CardAggregates)
	order := make([]int64, 0)

	// amount accumulators, only over non-nil amounts
	amountSum := make(map[int64]float64)
	amountCount := make(map[int64]int64)

	for _, tx := range txs {
		agg, ok := byCard[tx.CardID]
		if !ok {
			agg = &domain.CardAggregates{CardID: tx.CardID}
			byCard[tx.CardID] = agg
			order = append(order, tx.CardID)
		}

		agg.TxnCount++
		agg.RefundCount += tx.IsRefund
		agg.ErrorTotal += tx.HasError

		if tx.Amount == nil {
			continue
		}
		amount := *tx.Amount

		amountSum[tx.CardID] += amount
		amountCount[tx.CardID]++
		if agg.AmountMax == nil || amount > *agg.AmountMax {
			v := amount
			agg.AmountMax = &v
		}
		if agg.AmountMin == nil || amount < *agg.AmountMin {
			v := amount
			agg.AmountMin = &v
		}
		if amount > 0 {
			agg.TotalSpent += amount
		}
		if amount < 0 {
			agg.TotalRefunded += math.Abs(amount)
		}
	}

	aggregates := make([]domain.CardAggregates, 0, len(order))
	for _, cardID := range order {
		agg := byCard[cardID]
		if n := amountCount[cardID]; n > 0 {
			mean := amountSum[cardID] / float64(n)
			agg.AmountMean = &mean
		}
		agg.ErrorRate = float64(agg.ErrorTotal) / float64(agg.TxnCount)
		aggregates = append(aggregates, *agg)
	}

	logger.Info("aggregated transactions by card",
		slog.Int("transactions", len(txs)),
		slog.Int("cards", len(aggregates)))

	return aggregates
}
