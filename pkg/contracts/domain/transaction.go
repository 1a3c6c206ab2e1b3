package domain

import "time"

// Transaction represents one transaction row from transactions_data.csv
// after normalization. Amount comes from currency-formatted text; Errors is
// nil when the raw errors column was empty.
type Transaction struct {
	ID            int64      `json:"id" csv:"id"`
	Date          *time.Time `json:"date" csv:"date"`
	ClientID      int64      `json:"client_id" csv:"client_id"`
	CardID        int64      `json:"card_id" csv:"card_id"`
	Amount        *float64   `json:"amount" csv:"amount"`
	UseChip       string     `json:"use_chip" csv:"use_chip"`
	MerchantID    string     `json:"merchant_id" csv:"merchant_id"`
	MerchantCity  string     `json:"merchant_city" csv:"merchant_city"`
	MerchantState string     `json:"merchant_state" csv:"merchant_state"`
	Zip           string     `json:"zip" csv:"zip"`
	MCC           *int64     `json:"mcc" csv:"mcc"`
	Errors        *string    `json:"errors" csv:"errors"`

	// Derived flags, all 0/1. IsRefund is 1 iff Amount is non-nil and
	// negative; HasError is 1 iff Errors is non-nil. The per-category
	// flags are independent substring matches, so a transaction can carry
	// several at once.
	IsRefund                 int64 `json:"is_refund" csv:"is_refund"`
	HasError                 int64 `json:"has_error" csv:"has_error"`
	ErrorBadExpiration       int64 `json:"error_bad_expiration" csv:"error_bad_expiration"`
	ErrorBadCardNumber       int64 `json:"error_bad_card_number" csv:"error_bad_card_number"`
	ErrorInsufficientBalance int64 `json:"error_insufficient_balance" csv:"error_insufficient_balance"`
	ErrorBadPIN              int64 `json:"error_bad_pin" csv:"error_bad_pin"`
	ErrorBadCVV              int64 `json:"error_bad_cvv" csv:"error_bad_cvv"`
	ErrorBadZipcode          int64 `json:"error_bad_zipcode" csv:"error_bad_zipcode"`
	ErrorTechnicalGlitch     int64 `json:"error_technical_glitch" csv:"error_technical_glitch"`

	// ErrorCount is the number of comma-delimited error phrases, 0 when
	// Errors is nil.
	ErrorCount int64 `json:"error_count" csv:"error_count"`
}
