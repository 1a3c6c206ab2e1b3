package domain

// Label values after normalization. Only transactions carrying one of these
// two values are supervised rows.
const (
	TargetFraud      = "Yes"
	TargetLegitimate = "No"
)

// FraudLabel represents one row from train_fraud_labels.csv. Target holds
// TargetFraud or TargetLegitimate after normalization; any other raw value
// leaves it empty and the row is treated as unlabeled downstream.
type FraudLabel struct {
	TransactionID int64  `json:"transaction_id" csv:"transaction_id"`
	Target        string `json:"target" csv:"target"`
}
