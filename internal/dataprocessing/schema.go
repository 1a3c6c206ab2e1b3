package dataprocessing

// Expected input schemas, fixed at definition time. The loaders warn when
// one of these columns is missing from a source header instead of letting
// a transform silently no-op.

// UserColumns is the expected schema of users_data.csv
var UserColumns = []string{
	"id",
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
}

// CardColumns is the expected schema of cards_data.csv
var CardColumns = []string{
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
	"card_on_dark_web",
}

// TransactionColumns is the expected schema of transactions_data.csv
var TransactionColumns = []string{
	"id",
	"date",
	"client_id",
	"card_id",
	"amount",
	"use_chip",
	"merchant_id",
	"merchant_city",
	"merchant_state",
	"zip",
	"mcc",
	"errors",
}

// FraudLabelColumns is the expected schema of train_fraud_labels.csv
var FraudLabelColumns = []string{
	"transaction_id",
	"target",
}
