package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"finprep/internal/config"
	"finprep/internal/dataprocessing"
	"finprep/internal/exporter"
	"finprep/internal/infrastructure"
	"finprep/pkg/contracts"
)

func main() {
	inDir := flag.String("in", "", "input directory with the raw CSV/JSON files (defaults to Financial)")
	outDir := flag.String("out", "", "output directory for the cleaned datasets (defaults to CleanedDataSet)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags win over config file and environment.
	if *inDir != "" {
		cfg.Paths.InputDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	// The handler injects the run ID into every context-aware log line.
	ctx := infrastructure.WithRunID(context.Background(), uuid.New().String())

	logger.InfoContext(ctx, "Pipeline starting",
		slog.String("version", contracts.FullVersion()),
		slog.String("data_format", contracts.DataFormatVersion),
		slog.String("input_dir", cfg.Paths.InputDir),
		slog.String("output_dir", cfg.Paths.OutputDir))

	start := time.Now()
	if err := run(ctx, logger, cfg); err != nil {
		logger.ErrorContext(ctx, "Pipeline failed", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "Pipeline completed",
		slog.Duration("elapsed", time.Since(start)))
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	paths := config.NewPaths(cfg.Paths)
	if err := paths.ValidateInputs(); err != nil {
		return err
	}
	if err := paths.EnsureOutputDir(); err != nil {
		return err
	}

	// Load every input before transforming anything so a missing or
	// malformed file fails the run up front.
	users, err := dataprocessing.LoadTable(logger, paths.UsersCSV, "users", dataprocessing.UserColumns)
	if err != nil {
		return err
	}
	cards, err := dataprocessing.LoadTable(logger, paths.CardsCSV, "cards", dataprocessing.CardColumns)
	if err != nil {
		return err
	}
	transactions, err := dataprocessing.LoadTable(logger, paths.TransactionsCSV, "transactions", dataprocessing.TransactionColumns)
	if err != nil {
		return err
	}
	labels, err := dataprocessing.LoadTable(logger, paths.FraudLabelsCSV, "fraud_labels", dataprocessing.FraudLabelColumns)
	if err != nil {
		return err
	}
	mccCodes, err := dataprocessing.LoadMccCodes(logger, paths.MccCodesJSON)
	if err != nil {
		return err
	}

	normUsers, _ := dataprocessing.NormalizeUsers(logger, users)
	normCards, _ := dataprocessing.NormalizeCards(logger, cards)
	normTxs, _ := dataprocessing.NormalizeTransactions(logger, transactions)
	normLabels, _ := dataprocessing.NormalizeFraudLabels(logger, labels)

	aggregates := dataprocessing.AggregateByCard(logger, normTxs)

	fraudDataset := dataprocessing.BuildFraudDetection(logger, normTxs, normLabels, mccCodes, normCards, normUsers)
	creditDataset := dataprocessing.BuildCreditLimit(logger, normCards, normUsers, aggregates)

	// All transforms are done; writing last keeps a failed run from
	// leaving a mix of fresh and stale outputs behind.
	parquetWriter := exporter.NewParquetWriter(logger)
	if err := parquetWriter.WriteFraudDetection(paths.FraudDetectionParquet, fraudDataset); err != nil {
		return fmt.Errorf("writing fraud detection dataset: %w", err)
	}
	if err := parquetWriter.WriteCreditLimit(paths.CreditLimitParquet, creditDataset); err != nil {
		return fmt.Errorf("writing credit limit dataset: %w", err)
	}

	csvWriter := exporter.NewCSVWriter(logger)
	if err := csvWriter.WriteCreditLimitCSV(paths.CreditLimitCSV, creditDataset); err != nil {
		return fmt.Errorf("writing credit limit CSV: %w", err)
	}

	logger.InfoContext(ctx, "Datasets written",
		slog.Int("fraud_detection_rows", len(fraudDataset)),
		slog.Int("credit_limit_rows", len(creditDataset)),
		slog.String("output_dir", cfg.Paths.OutputDir))
	return nil
}
