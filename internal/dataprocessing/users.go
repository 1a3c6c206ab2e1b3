package dataprocessing

import (
	"log/slog"

	"finprep/pkg/contracts/domain"
)

// NormalizeUsers deduplicates the raw user table by id, coerces the
// currency-formatted income and debt columns to numbers, and derives the
// debt-to-income ratio.
func NormalizeUsers(logger *slog.Logger, t *RawTable) ([]domain.User, TableStats) {
	stats := TableStats{Table: t.Name, RowsIn: len(t.Rows)}

	users := make([]domain.User, 0, len(t.Rows))
	keyedRows(t, "id", &stats, func(key int64, row []string) {
		u := domain.User{
			ID:              key,
			CurrentAge:      parseInt(t.Value(row, "current_age")),
			RetirementAge:   parseInt(t.Value(row, "retirement_age")),
			BirthYear:       parseInt(t.Value(row, "birth_year")),
			BirthMonth:      parseInt(t.Value(row, "birth_month")),
			Gender:          t.Value(row, "gender"),
			Address:         t.Value(row, "address"),
			Latitude:        parseFloat(t.Value(row, "latitude")),
			Longitude:       parseFloat(t.Value(row, "longitude")),
			PerCapitaIncome: parseCurrency(t.Value(row, "per_capita_income")),
			YearlyIncome:    parseCurrency(t.Value(row, "yearly_income")),
			TotalDebt:       parseCurrency(t.Value(row, "total_debt")),
			CreditScore:     parseInt(t.Value(row, "credit_score")),
			NumCreditCards:  parseInt(t.Value(row, "num_credit_cards")),
		}
		u.DebtToIncomeRatio = debtToIncomeRatio(u.TotalDebt, u.YearlyIncome)
		users = append(users, u)
	})

	stats.RowsOut = len(users)
	stats.Log(logger)
	return users, stats
}

// debtToIncomeRatio is totalDebt / yearlyIncome, nil when either side is
// nil or yearly income is not strictly positive.
func debtToIncomeRatio(totalDebt, yearlyIncome *float64) *float64 {
	if totalDebt == nil || yearlyIncome == nil || *yearlyIncome <= 0 {
		return nil
	}
	ratio := *totalDebt / *yearlyIncome
	return &ratio
}
