package dataprocessing

import (
	"log/slog"

	"finprep/pkg/contracts/domain"
)

// NormalizeCards deduplicates the raw card table by id, coerces the typed
// columns (currency credit limit, MM/YYYY dates, Yes/No chip flag), and
// drops rows whose parsed credit limit is non-positive. A zero or negative
// limit is a data-entry defect, not a legitimate low limit, and the credit
// limit is the regression target downstream.
//
// The card_on_dark_web column is converted to binary and then discarded;
// it never reaches the Card struct.
func NormalizeCards(logger *slog.Logger, t *RawTable) ([]domain.Card, TableStats) {
	stats := TableStats{Table: t.Name, RowsIn: len(t.Rows)}

	darkWebPositive := 0
	cards := make([]domain.Card, 0, len(t.Rows))
	keyedRows(t, "id", &stats, func(key int64, row []string) {
		creditLimit := parseCurrency(t.Value(row, "credit_limit"))
		if creditLimit != nil && *creditLimit <= 0 {
			stats.Filtered++
			return
		}

		if onDarkWeb := parseYesNo(t.Value(row, "card_on_dark_web")); onDarkWeb != nil && *onDarkWeb == 1 {
			darkWebPositive++
		}

		clientID := parseInt(t.Value(row, "client_id"))
		c := domain.Card{
			ID:                 key,
			Brand:              t.Value(row, "card_brand"),
			Type:               t.Value(row, "card_type"),
			Number:             t.Value(row, "card_number"),
			Expires:            parseMonthYear(t.Value(row, "expires")),
			CVV:                t.Value(row, "cvv"),
			HasChip:            parseYesNo(t.Value(row, "has_chip")),
			NumCardsIssued:     parseInt(t.Value(row, "num_cards_issued")),
			CreditLimit:        creditLimit,
			AcctOpenDate:       parseMonthYear(t.Value(row, "acct_open_date")),
			YearPINLastChanged: parseInt(t.Value(row, "year_pin_last_changed")),
		}
		if clientID != nil {
			c.ClientID = *clientID
		}
		cards = append(cards, c)
	})

	// card_on_dark_web is dropped after conversion; surface the discard so
	// the signal loss stays visible in the run diagnostics.
	logger.Info("discarded card_on_dark_web after binary conversion",
		slog.Int("positive_values", darkWebPositive))

	stats.RowsOut = len(cards)
	stats.Log(logger)
	return cards, stats
}
