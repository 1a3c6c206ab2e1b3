package dataprocessing

import (
	"log/slog"

	"finprep/pkg/contracts/domain"
)

// BuildFraudDetection assembles the fraud-detection dataset: every labeled
// transaction joined with its merchant category description, card, and
// user. Transactions without a label (or with a target outside the two
// admissible values) are excluded; unmatched card or user lookups leave
// nil blocks, matching left-join semantics. Row order follows the
// transaction table.
//
// The card row carries its own client_id; the output keeps only the
// transaction's copy, so the duplicate column from the card join never
// appears.
func BuildFraudDetection(
	logger *slog.Logger,
	txs []domain.Transaction,
	labels []domain.FraudLabel,
	mccs []domain.MccCode,
	cards []domain.Card,
	users []domain.User,
) []domain.FraudDetectionRecord {
	labelByTxn := make(map[int64]string, len(labels))
	for _, label := range labels {
		labelByTxn[label.TransactionID] = label.Target
	}
	descByCode := make(map[int64]string, len(mccs))
	for _, mcc := range mccs {
		descByCode[mcc.Code] = mcc.Description
	}
	cardByID := make(map[int64]*domain.Card, len(cards))
	for i := range cards {
		cardByID[cards[i].ID] = &cards[i]
	}
	userByID := make(map[int64]*domain.User, len(users))
	for i := range users {
		userByID[users[i].ID] = &users[i]
	}

	records := make([]domain.FraudDetectionRecord, 0, len(labels))
	fraudCount := 0
	for i := range txs {
		tx := txs[i]

		target, labeled := labelByTxn[tx.ID]
		if !labeled || target == "" {
			continue
		}

		rec := domain.FraudDetectionRecord{
			Transaction: tx,
			Card:        cardByID[tx.CardID],
			User:        userByID[tx.ClientID],
			Target:      target,
		}
		if tx.MCC != nil {
			if desc, ok := descByCode[*tx.MCC]; ok {
				rec.MCCDescription = &desc
			}
		}

		if target == domain.TargetFraud {
			fraudCount++
		}
		records = append(records, rec)
	}

	fraudRate := 0.0
	if len(records) > 0 {
		fraudRate = float64(fraudCount) / float64(len(records))
	}
	logger.Info("built fraud detection dataset",
		slog.Int("transactions", len(txs)),
		slog.Int("labeled_rows", len(records)),
		slog.Int("fraud_rows", fraudCount),
		slog.Float64("fraud_rate", fraudRate))

	return records
}
