package dataprocessing

import (
	"log/slog"
	"strings"

	"finprep/pkg/contracts/domain"
)

// NormalizeFraudLabels deduplicates the raw label table by transaction_id
// and normalizes the target to exactly "Yes" or "No". A target outside the
// two admissible values is kept empty and excluded from the fraud dataset
// later, the same treatment as an unlabeled transaction.
func NormalizeFraudLabels(logger *slog.Logger, t *RawTable) ([]domain.FraudLabel, TableStats) {
	stats := TableStats{Table: t.Name, RowsIn: len(t.Rows)}

	labels := make([]domain.FraudLabel, 0, len(t.Rows))
	keyedRows(t, "transaction_id", &stats, func(key int64, row []string) {
		label := domain.FraudLabel{TransactionID: key}
		switch strings.ToLower(strings.TrimSpace(t.Value(row, "target"))) {
		case "yes":
			label.Target = domain.TargetFraud
		case "no":
			label.Target = domain.TargetLegitimate
		}
		labels = append(labels, label)
	})

	stats.RowsOut = len(labels)
	stats.Log(logger)
	return labels, stats
}
