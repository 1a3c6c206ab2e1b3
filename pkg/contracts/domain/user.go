package domain

// User represents one cardholder row from users_data.csv after normalization.
// Monetary fields arrive as currency-formatted text and are nil when the raw
// value could not be parsed.
type User struct {
	ID               int64    `json:"id" csv:"id"`
	CurrentAge       *int64   `json:"current_age" csv:"current_age"`
	RetirementAge    *int64   `json:"retirement_age" csv:"retirement_age"`
	BirthYear        *int64   `json:"birth_year" csv:"birth_year"`
	BirthMonth       *int64   `json:"birth_month" csv:"birth_month"`
	Gender           string   `json:"gender" csv:"gender"`
	Address          string   `json:"address" csv:"address"`
	Latitude         *float64 `json:"latitude" csv:"latitude"`
	Longitude        *float64 `json:"longitude" csv:"longitude"`
	PerCapitaIncome  *float64 `json:"per_capita_income" csv:"per_capita_income"`
	YearlyIncome     *float64 `json:"yearly_income" csv:"yearly_income"`
	TotalDebt        *float64 `json:"total_debt" csv:"total_debt"`
	CreditScore      *int64   `json:"credit_score" csv:"credit_score"`
	NumCreditCards   *int64   `json:"num_credit_cards" csv:"num_credit_cards"`

	// DebtToIncomeRatio is TotalDebt / YearlyIncome, nil when either input
	// is nil or YearlyIncome is not strictly positive.
	DebtToIncomeRatio *float64 `json:"debt_to_income_ratio" csv:"debt_to_income_ratio"`
}
