package exporter

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet/file"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"finprep/internal/errors"
	"finprep/pkg/contracts/domain"
)

// ParquetReader loads datasets written by ParquetWriter back into domain
// records. Used to verify outputs after a run and by the round-trip tests.
type ParquetReader struct {
	allocator memory.Allocator
}

// NewParquetReader creates a new Parquet reader instance
func NewParquetReader() *ParquetReader {
	return &ParquetReader{allocator: memory.NewGoAllocator()}
}

// ReadCreditLimit loads a credit-limit Parquet file
func (r *ParquetReader) ReadCreditLimit(ctx context.Context, path string) ([]domain.CreditLimitRecord, error) {
	table, err := r.readTable(ctx, path)
	if err != nil {
		return nil, err
	}
	defer table.Release()

	cols, err := newColumnSet(table)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CreditLimitRecord, 0, table.NumRows())
	for row := 0; row < int(table.NumRows()); row++ {
		rec := domain.CreditLimitRecord{
			Card: domain.Card{
				ID:                 cols.int64("id", row),
				ClientID:           cols.int64("client_id", row),
				Brand:              cols.string("card_brand", row),
				Type:               cols.string("card_type", row),
				Number:             cols.string("card_number", row),
				Expires:            cols.date("expires", row),
				CVV:                cols.string("cvv", row),
				HasChip:            cols.int64Ptr("has_chip", row),
				NumCardsIssued:     cols.int64Ptr("num_cards_issued", row),
				CreditLimit:        cols.float64Ptr("credit_limit", row),
				AcctOpenDate:       cols.date("acct_open_date", row),
				YearPINLastChanged: cols.int64Ptr("year_pin_last_changed", row),
			},
			User: readUserBlock(cols, row),
		}
		if rec.User != nil {
			rec.User.ID = rec.ClientID
		}

		// A card with no transactions has the whole aggregate block null.
		if txnCount := cols.int64Ptr("txn_count", row); txnCount != nil {
			rec.Aggregates = &domain.CardAggregates{
				CardID:        rec.ID,
				TxnCount:      *txnCount,
				AmountMean:    cols.float64Ptr("amount_mean", row),
				AmountMax:     cols.float64Ptr("amount_max", row),
				AmountMin:     cols.float64Ptr("amount_min", row),
				TotalSpent:    valueOr(cols.float64Ptr("total_spent", row), 0),
				TotalRefunded: valueOr(cols.float64Ptr("total_refunded", row), 0),
				RefundCount:   valueOrInt(cols.int64Ptr("refund_count", row), 0),
				ErrorRate:     valueOr(cols.float64Ptr("error_rate", row), 0),
				ErrorTotal:    valueOrInt(cols.int64Ptr("error_total", row), 0),
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

// ReadFraudDetection loads a fraud-detection Parquet file
func (r *ParquetReader) ReadFraudDetection(ctx context.Context, path string) ([]domain.FraudDetectionRecord, error) {
	table, err := r.readTable(ctx, path)
	if err != nil {
		return nil, err
	}
	defer table.Release()

	cols, err := newColumnSet(table)
	if err != nil {
		return nil, err
	}

	records := make([]domain.FraudDetectionRecord, 0, table.NumRows())
	for row := 0; row < int(table.NumRows()); row++ {
		rec := domain.FraudDetectionRecord{
			Transaction: domain.Transaction{
				ID:                       cols.int64("id", row),
				Date:                     cols.timestamp("date", row),
				ClientID:                 cols.int64("client_id", row),
				CardID:                   cols.int64("card_id", row),
				Amount:                   cols.float64Ptr("amount", row),
				UseChip:                  cols.string("use_chip", row),
				MerchantID:               cols.string("merchant_id", row),
				MerchantCity:             cols.string("merchant_city", row),
				MerchantState:            cols.string("merchant_state", row),
				Zip:                      cols.string("zip", row),
				MCC:                      cols.int64Ptr("mcc", row),
				Errors:                   cols.stringPtr("errors", row),
				IsRefund:                 cols.int64("is_refund", row),
				HasError:                 cols.int64("has_error", row),
				ErrorBadExpiration:       cols.int64("error_bad_expiration", row),
				ErrorBadCardNumber:       cols.int64("error_bad_card_number", row),
				ErrorInsufficientBalance: cols.int64("error_insufficient_balance", row),
				ErrorBadPIN:              cols.int64("error_bad_pin", row),
				ErrorBadCVV:              cols.int64("error_bad_cvv", row),
				ErrorBadZipcode:          cols.int64("error_bad_zipcode", row),
				ErrorTechnicalGlitch:     cols.int64("error_technical_glitch", row),
				ErrorCount:               cols.int64("error_count", row),
			},
			MCCDescription: cols.stringPtr("mcc_description", row),
			User:           readUserBlock(cols, row),
			Target:         cols.string("target", row),
		}
		if rec.User != nil {
			rec.User.ID = rec.Transaction.ClientID
		}

		// The card block is present when the card join matched. card_brand
		// is never null for a joined card, so it marks block presence.
		if brand := cols.stringPtr("card_brand", row); brand != nil {
			rec.Card = &domain.Card{
				ID:                 rec.CardID,
				ClientID:           rec.Transaction.ClientID,
				Brand:              *brand,
				Type:               cols.string("card_type", row),
				Number:             cols.string("card_number", row),
				Expires:            cols.date("expires", row),
				CVV:                cols.string("cvv", row),
				HasChip:            cols.int64Ptr("has_chip", row),
				NumCardsIssued:     cols.int64Ptr("num_cards_issued", row),
				CreditLimit:        cols.float64Ptr("credit_limit", row),
				AcctOpenDate:       cols.date("acct_open_date", row),
				YearPINLastChanged: cols.int64Ptr("year_pin_last_changed", row),
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

// readUserBlock reconstructs the user columns. The block is considered
// present when any of its columns holds a value.
func readUserBlock(cols *columnSet, row int) *domain.User {
	user := domain.User{
		CurrentAge:        cols.int64Ptr("current_age", row),
		RetirementAge:     cols.int64Ptr("retirement_age", row),
		BirthYear:         cols.int64Ptr("birth_year", row),
		BirthMonth:        cols.int64Ptr("birth_month", row),
		Latitude:          cols.float64Ptr("latitude", row),
		Longitude:         cols.float64Ptr("longitude", row),
		PerCapitaIncome:   cols.float64Ptr("per_capita_income", row),
		YearlyIncome:      cols.float64Ptr("yearly_income", row),
		TotalDebt:         cols.float64Ptr("total_debt", row),
		CreditScore:       cols.int64Ptr("credit_score", row),
		NumCreditCards:    cols.int64Ptr("num_credit_cards", row),
		DebtToIncomeRatio: cols.float64Ptr("debt_to_income_ratio", row),
	}
	gender := cols.stringPtr("gender", row)
	address := cols.stringPtr("address", row)

	present := gender != nil || address != nil ||
		user.CurrentAge != nil || user.RetirementAge != nil ||
		user.BirthYear != nil || user.BirthMonth != nil ||
		user.Latitude != nil || user.Longitude != nil ||
		user.PerCapitaIncome != nil || user.YearlyIncome != nil ||
		user.TotalDebt != nil || user.CreditScore != nil ||
		user.NumCreditCards != nil || user.DebtToIncomeRatio != nil
	if !present {
		return nil
	}

	if gender != nil {
		user.Gender = *gender
	}
	if address != nil {
		user.Address = *address
	}
	return &user
}

func (r *ParquetReader) readTable(ctx context.Context, path string) (arrow.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("Parquet file not found: %s", path))
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open Parquet file %s", path), err)
	}
	defer f.Close()

	rdr, err := file.NewParquetReader(f)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read Parquet metadata from %s", path), err)
	}
	defer rdr.Close()

	arrowRdr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{BatchSize: 64 * 1024}, r.allocator)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to open Arrow reader for %s", path), err)
	}

	table, err := arrowRdr.ReadTable(ctx)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read Parquet table from %s", path), err)
	}
	return table, nil
}

// columnSet gives typed by-name access to table cells. Row lookups walk
// the column's chunks, which is fine for the dataset sizes involved.
type columnSet struct {
	byName map[string]*arrow.Column
}

func newColumnSet(table arrow.Table) (*columnSet, error) {
	byName := make(map[string]*arrow.Column, table.NumCols())
	for i := 0; i < int(table.NumCols()); i++ {
		col := table.Column(i)
		byName[col.Name()] = col
	}
	return &columnSet{byName: byName}, nil
}

// cell resolves a row index to the chunk holding it. Returns nil for an
// unknown column or a null cell.
func (c *columnSet) cell(name string, row int) (arrow.Array, int) {
	col, ok := c.byName[name]
	if !ok {
		return nil, 0
	}
	for _, chunk := range col.Data().Chunks() {
		if row < chunk.Len() {
			if chunk.IsNull(row) {
				return nil, 0
			}
			return chunk, row
		}
		row -= chunk.Len()
	}
	return nil, 0
}

func (c *columnSet) int64(name string, row int) int64 {
	v := c.int64Ptr(name, row)
	if v == nil {
		return 0
	}
	return *v
}

func (c *columnSet) int64Ptr(name string, row int) *int64 {
	chunk, i := c.cell(name, row)
	if chunk == nil {
		return nil
	}
	arr, ok := chunk.(*array.Int64)
	if !ok {
		return nil
	}
	v := arr.Value(i)
	return &v
}

func (c *columnSet) float64Ptr(name string, row int) *float64 {
	chunk, i := c.cell(name, row)
	if chunk == nil {
		return nil
	}
	arr, ok := chunk.(*array.Float64)
	if !ok {
		return nil
	}
	v := arr.Value(i)
	return &v
}

func (c *columnSet) string(name string, row int) string {
	v := c.stringPtr(name, row)
	if v == nil {
		return ""
	}
	return *v
}

func (c *columnSet) stringPtr(name string, row int) *string {
	chunk, i := c.cell(name, row)
	if chunk == nil {
		return nil
	}
	arr, ok := chunk.(*array.String)
	if !ok {
		return nil
	}
	v := arr.Value(i)
	return &v
}

func (c *columnSet) date(name string, row int) *time.Time {
	chunk, i := c.cell(name, row)
	if chunk == nil {
		return nil
	}
	arr, ok := chunk.(*array.Date32)
	if !ok {
		return nil
	}
	t := arr.Value(i).ToTime()
	return &t
}

func (c *columnSet) timestamp(name string, row int) *time.Time {
	chunk, i := c.cell(name, row)
	if chunk == nil {
		return nil
	}
	arr, ok := chunk.(*array.Timestamp)
	if !ok {
		return nil
	}
	t := arr.Value(i).ToTime(arrow.Millisecond).UTC()
	return &t
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func valueOrInt(v *int64, def int64) int64 {
	if v == nil {
		return def
	}
	return *v
}
