package domain

import "time"

// Card represents one card row from cards_data.csv after normalization.
// Expires and AcctOpenDate come from "MM/YYYY" text and are normalized to
// the first day of that month; a parse failure leaves them nil.
//
// The raw card_on_dark_web column is converted to binary during
// normalization and then discarded, so it never appears here.
type Card struct {
	ID                 int64      `json:"id" csv:"id"`
	ClientID           int64      `json:"client_id" csv:"client_id"`
	Brand              string     `json:"card_brand" csv:"card_brand"`
	Type               string     `json:"card_type" csv:"card_type"`
	Number             string     `json:"card_number" csv:"card_number"`
	Expires            *time.Time `json:"expires" csv:"expires"`
	CVV                string     `json:"cvv" csv:"cvv"`
	HasChip            *int64     `json:"has_chip" csv:"has_chip"`
	NumCardsIssued     *int64     `json:"num_cards_issued" csv:"num_cards_issued"`
	CreditLimit        *float64   `json:"credit_limit" csv:"credit_limit"`
	AcctOpenDate       *time.Time `json:"acct_open_date" csv:"acct_open_date"`
	YearPINLastChanged *int64     `json:"year_pin_last_changed" csv:"year_pin_last_changed"`
}
