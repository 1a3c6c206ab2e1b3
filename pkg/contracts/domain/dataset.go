package domain

// CardAggregates holds the per-card summary statistics computed over the
// normalized transaction table. Cards with zero transactions have no
// CardAggregates entry at all; the credit-limit join fills their columns
// with nulls.
type CardAggregates struct {
	CardID        int64    `json:"card_id" csv:"card_id"`
	TxnCount      int64    `json:"txn_count" csv:"txn_count"`
	AmountMean    *float64 `json:"amount_mean" csv:"amount_mean"`
	AmountMax     *float64 `json:"amount_max" csv:"amount_max"`
	AmountMin     *float64 `json:"amount_min" csv:"amount_min"`
	TotalSpent    float64  `json:"total_spent" csv:"total_spent"`
	TotalRefunded float64  `json:"total_refunded" csv:"total_refunded"`
	RefundCount   int64    `json:"refund_count" csv:"refund_count"`
	ErrorRate     float64  `json:"error_rate" csv:"error_rate"`
	ErrorTotal    int64    `json:"error_total" csv:"error_total"`
}

// FraudDetectionRecord is one labeled transaction joined with its merchant
// category description, card, and user. Card and User are nil when the
// left-join found no match; Target is always TargetFraud or
// TargetLegitimate, never empty. Column order in the serialized outputs is
// transaction block, MCC description, card block, user block, target.
type FraudDetectionRecord struct {
	Transaction
	MCCDescription *string
	Card           *Card
	User           *User
	Target         string
}

// CreditLimitRecord is one card joined with its user and per-card
// transaction aggregates. CreditLimit on the embedded card is always
// non-nil and positive; User and Aggregates are nil when unmatched.
type CreditLimitRecord struct {
	Card
	User       *User
	Aggregates *CardAggregates
}
