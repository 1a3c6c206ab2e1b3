package domain

// MccCode maps a merchant category code to its human-readable description.
// The source JSON keys the mapping by string code; Code is the integer
// coercion used for joining against Transaction.MCC.
type MccCode struct {
	Code        int64  `json:"mcc_code" csv:"mcc_code"`
	Description string `json:"description" csv:"description"`
}
