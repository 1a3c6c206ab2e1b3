package dataprocessing

import (
	"log/slog"
	"strings"

	"finprep/pkg/contracts/domain"
)

// errorVocabulary is the fixed, ordered list of (category, match phrase)
// pairs used to flag transaction errors. Each pair is evaluated
// independently with a case-insensitive substring match, so one
// transaction can carry several flags at once.
var errorVocabulary = []struct {
	Phrase string
	Assign func(*domain.Transaction)
}{
	{"bad expiration", func(tx *domain.Transaction) { tx.ErrorBadExpiration = 1 }},
	{"bad card number", func(tx *domain.Transaction) { tx.ErrorBadCardNumber = 1 }},
	{"insufficient balance", func(tx *domain.Transaction) { tx.ErrorInsufficientBalance = 1 }},
	{"bad pin", func(tx *domain.Transaction) { tx.ErrorBadPIN = 1 }},
	{"bad cvv", func(tx *domain.Transaction) { tx.ErrorBadCVV = 1 }},
	{"bad zipcode", func(tx *domain.Transaction) { tx.ErrorBadZipcode = 1 }},
	{"technical glitch", func(tx *domain.Transaction) { tx.ErrorTechnicalGlitch = 1 }},
}

// NormalizeTransactions deduplicates the raw transaction table by id,
// coerces the typed columns, trims merchant city and state, and derives
// the refund and error-flag features.
func NormalizeTransactions(logger *slog.Logger, t *RawTable) ([]domain.Transaction, TableStats) {
	stats := TableStats{Table: t.Name, RowsIn: len(t.Rows)}

	txs := make([]domain.Transaction, 0, len(t.Rows))
	keyedRows(t, "id", &stats, func(key int64, row []string) {
		tx := domain.Transaction{
			ID:            key,
			Date:          parseTimestamp(t.Value(row, "date")),
			Amount:        parseCurrency(t.Value(row, "amount")),
			UseChip:       t.Value(row, "use_chip"),
			MerchantID:    t.Value(row, "merchant_id"),
			MerchantCity:  strings.TrimSpace(t.Value(row, "merchant_city")),
			MerchantState: strings.TrimSpace(t.Value(row, "merchant_state")),
			Zip:           t.Value(row, "zip"),
			MCC:           parseInt(t.Value(row, "mcc")),
		}
		if clientID := parseInt(t.Value(row, "client_id")); clientID != nil {
			tx.ClientID = *clientID
		}
		if cardID := parseInt(t.Value(row, "card_id")); cardID != nil {
			tx.CardID = *cardID
		}

		if raw := strings.TrimSpace(t.Value(row, "errors")); raw != "" {
			tx.Errors = &raw
		}
		deriveTransactionFeatures(&tx)

		txs = append(txs, tx)
	})

	stats.RowsOut = len(txs)
	stats.Log(logger)
	return txs, stats
}

// deriveTransactionFeatures fills the refund and error-flag columns from
// the already-coerced Amount and Errors fields.
func deriveTransactionFeatures(tx *domain.Transaction) {
	if tx.Amount != nil && *tx.Amount < 0 {
		tx.IsRefund = 1
	}

	if tx.Errors == nil {
		return
	}
	tx.HasError = 1

	lowered := strings.ToLower(*tx.Errors)
	for _, entry := range errorVocabulary {
		if strings.Contains(lowered, entry.Phrase) {
			entry.Assign(tx)
		}
	}

	for _, part := range strings.Split(*tx.Errors, ",") {
		if strings.TrimSpace(part) != "" {
			tx.ErrorCount++
		}
	}
}
