package exporter

import (
	"finprep/pkg/contracts/domain"
)

// CreditLimitColumns is the column order of the credit-limit dataset:
// card block, user block, aggregate block.
var CreditLimitColumns = []string{
	"id",
	"client_id",
	"card_brand",
	"card_type",
	"card_number",
	"expires",
	"cvv",
	"has_chip",
	"num_cards_issued",
	"credit_limit",
	"acct_open_date",
	"year_pin_last_changed",

	"current_age",
	"retirement_age",
	"birth_year",
	"birth_month",
	"gender",
	"address",
	"latitude",
	"longitude",
	"per_capita_income",
	"yearly_income",
	"total_debt",
	"credit_score",
	"num_credit_cards",
	"debt_to_income_ratio",

	"txn_count",
	"amount_mean",
	"amount_max",
	"amount_min",
	"total_spent",
	"total_refunded",
	"refund_count",
	"error_rate",
	"error_total",
}

// creditLimitRow renders one record in CreditLimitColumns order
func creditLimitRow(rec domain.CreditLimitRecord) []string {
	row := []string{
		formatInt(rec.ID),
		formatInt(rec.ClientID),
		rec.Brand,
		rec.Type,
		rec.Number,
		formatDate(rec.Expires),
		rec.CVV,
		formatIntPtr(rec.HasChip),
		formatIntPtr(rec.NumCardsIssued),
		formatFloatPtr(rec.CreditLimit),
		formatDate(rec.AcctOpenDate),
		formatIntPtr(rec.YearPINLastChanged),
	}

	if rec.User != nil {
		row = append(row,
			formatIntPtr(rec.User.CurrentAge),
			formatIntPtr(rec.User.RetirementAge),
			formatIntPtr(rec.User.BirthYear),
			formatIntPtr(rec.User.BirthMonth),
			rec.User.Gender,
			rec.User.Address,
			formatFloatPtr(rec.User.Latitude),
			formatFloatPtr(rec.User.Longitude),
			formatFloatPtr(rec.User.PerCapitaIncome),
			formatFloatPtr(rec.User.YearlyIncome),
			formatFloatPtr(rec.User.TotalDebt),
			formatIntPtr(rec.User.CreditScore),
			formatIntPtr(rec.User.NumCreditCards),
			formatFloatPtr(rec.User.DebtToIncomeRatio),
		)
	} else {
		for i := 0; i < 14; i++ {
			row = append(row, "")
		}
	}

	if rec.Aggregates != nil {
		row = append(row,
			formatInt(rec.Aggregates.TxnCount),
			formatFloatPtr(rec.Aggregates.AmountMean),
			formatFloatPtr(rec.Aggregates.AmountMax),
			formatFloatPtr(rec.Aggregates.AmountMin),
			formatFloat(rec.Aggregates.TotalSpent),
			formatFloat(rec.Aggregates.TotalRefunded),
			formatInt(rec.Aggregates.RefundCount),
			formatFloat(rec.Aggregates.ErrorRate),
			formatInt(rec.Aggregates.ErrorTotal),
		)
	} else {
		for i := 0; i < 9; i++ {
			row = append(row, "")
		}
	}

	return row
}

// WriteCreditLimitCSV writes the credit-limit dataset as delimited text
func (w *CSVWriter) WriteCreditLimitCSV(path string, records []domain.CreditLimitRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, creditLimitRow(rec))
	}
	return w.WriteCSV(path, CreditLimitColumns, rows)
}
