package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all file paths used by the pipeline.
// This is the single source of truth for input and output locations.
// Unlike a served application, the pipeline resolves everything relative
// to the working directory, matching the source system's layout.
type Paths struct {
	InputDir  string
	OutputDir string

	// Input files
	UsersCSV        string
	CardsCSV        string
	TransactionsCSV string
	FraudLabelsCSV  string
	MccCodesJSON    string

	// Output files
	FraudDetectionParquet string
	CreditLimitParquet    string
	CreditLimitCSV        string
}

// NewPaths builds the pipeline paths from the configured input and output
// directories.
func NewPaths(cfg PathsConfig) *Paths {
	return &Paths{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,

		UsersCSV:        filepath.Join(cfg.InputDir, "users_data.csv"),
		CardsCSV:        filepath.Join(cfg.InputDir, "cards_data.csv"),
		TransactionsCSV: filepath.Join(cfg.InputDir, "transactions_data.csv"),
		FraudLabelsCSV:  filepath.Join(cfg.InputDir, "train_fraud_labels.csv"),
		MccCodesJSON:    filepath.Join(cfg.InputDir, "mcc_codes.json"),

		FraudDetectionParquet: filepath.Join(cfg.OutputDir, "fraud_detection_data.parquet"),
		CreditLimitParquet:    filepath.Join(cfg.OutputDir, "credit_limit_data.parquet"),
		CreditLimitCSV:        filepath.Join(cfg.OutputDir, "credit_limit_data.csv"),
	}
}

// EnsureOutputDir creates the output directory if it does not exist
func (p *Paths) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", p.OutputDir, err)
	}
	return nil
}

// ValidateInputs verifies that every required input file exists and is
// readable. A missing input is fatal before any work starts.
func (p *Paths) ValidateInputs() error {
	inputs := []string{
		p.UsersCSV,
		p.CardsCSV,
		p.TransactionsCSV,
		p.FraudLabelsCSV,
		p.MccCodesJSON,
	}
	for _, path := range inputs {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("required input file %s: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("required input file %s is a directory", path)
		}
	}
	return nil
}
