package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/compress"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"finprep/internal/errors"
	"finprep/pkg/contracts/domain"
)

var timestampMs = &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"}

// FraudDetectionSchema is the Arrow schema of the fraud-detection dataset.
// Field order matches the documented column order: transaction block, MCC
// description, card block, user block, target.
var FraudDetectionSchema = arrow.NewSchema([]arrow.Field{
	{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	{Name: "date", Type: timestampMs, Nullable: true},
	{Name: "client_id", Type: arrow.PrimitiveTypes.Int64},
	{Name: "card_id", Type: arrow.PrimitiveTypes.Int64},
	{Name: "amount", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "use_chip", Type: arrow.BinaryTypes.String},
	{Name: "merchant_id", Type: arrow.BinaryTypes.String},
	{Name: "merchant_city", Type: arrow.BinaryTypes.String},
	{Name: "merchant_state", Type: arrow.BinaryTypes.String},
	{Name: "zip", Type: arrow.BinaryTypes.String},
	{Name: "mcc", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "errors", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "is_refund", Type: arrow.PrimitiveTypes.Int64},
	{Name: "has_error", Type: arrow.PrimitiveTypes.Int64},
	{Name: "error_bad_expiration", Type: arrow.PrimitiveTypes.Int64},
	{Name: "error_bad_card_number", Type: arrow.PrimitiveTypes.Int64},
	{Name: "error_insufficient_balance", Type: arrow.PrimitiveTypes.Int64},
	{Name: "error_bad_pin", Type: arrow.PrimitiveTypes.Int64},
	{Name: "error_bad_cvv", Type: arrow.PrimitiveTypes.Int64},
	{Name: "error_bad_zipcode", Type: arrow.PrimitiveTypes.Int64},
	{Name: "error_technical_glitch", Type: arrow.PrimitiveTypes.Int64},
	{Name: "error_count", Type: arrow.PrimitiveTypes.Int64},

	{Name: "mcc_description", Type: arrow.BinaryTypes.String, Nullable: true},

	{Name: "card_brand", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "card_type", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "card_number", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "expires", Type: arrow.FixedWidthTypes.Date32, Nullable: true},
	{Name: "cvv", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "has_chip", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "num_cards_issued", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "credit_limit", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "acct_open_date", Type: arrow.FixedWidthTypes.Date32, Nullable: true},
	{Name: "year_pin_last_changed", Type: arrow.PrimitiveTypes.Int64, Nullable: true},

	{Name: "current_age", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "retirement_age", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "birth_year", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "birth_month", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "gender", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "address", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "latitude", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "longitude", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "per_capita_income", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "yearly_income", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "total_debt", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "credit_score", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "num_credit_cards", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "debt_to_income_ratio", Type: arrow.PrimitiveTypes.Float64, Nullable: true},

	{Name: "target", Type: arrow.BinaryTypes.String},
}, nil)

// CreditLimitSchema is the Arrow schema of the credit-limit dataset.
// Field order matches CreditLimitColumns.
var CreditLimitSchema = arrow.NewSchema([]arrow.Field{
	{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	{Name: "client_id", Type: arrow.PrimitiveTypes.Int64},
	{Name: "card_brand", Type: arrow.BinaryTypes.String},
	{Name: "card_type", Type: arrow.BinaryTypes.String},
	{Name: "card_number", Type: arrow.BinaryTypes.String},
	{Name: "expires", Type: arrow.FixedWidthTypes.Date32, Nullable: true},
	{Name: "cvv", Type: arrow.BinaryTypes.String},
	{Name: "has_chip", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "num_cards_issued", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "credit_limit", Type: arrow.PrimitiveTypes.Float64},
	{Name: "acct_open_date", Type: arrow.FixedWidthTypes.Date32, Nullable: true},
	{Name: "year_pin_last_changed", Type: arrow.PrimitiveTypes.Int64, Nullable: true},

	{Name: "current_age", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "retirement_age", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "birth_year", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "birth_month", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "gender", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "address", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "latitude", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "longitude", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "per_capita_income", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "yearly_income", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "total_debt", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "credit_score", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "num_credit_cards", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "debt_to_income_ratio", Type: arrow.PrimitiveTypes.Float64, Nullable: true},

	{Name: "txn_count", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "amount_mean", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "amount_max", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "amount_min", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "total_spent", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "total_refunded", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "refund_count", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "error_rate", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "error_total", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
}, nil)

// ParquetWriter persists the cleaned datasets as snappy-compressed
// Parquet files with explicit Arrow schemas.
type ParquetWriter struct {
	logger    *slog.Logger
	allocator memory.Allocator
}

// NewParquetWriter creates a new Parquet writer instance
func NewParquetWriter(logger *slog.Logger) *ParquetWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParquetWriter{
		logger:    logger,
		allocator: memory.NewGoAllocator(),
	}
}

// WriteFraudDetection writes the fraud-detection dataset to path
func (w *ParquetWriter) WriteFraudDetection(path string, records []domain.FraudDetectionRecord) error {
	return w.writeTable(path, FraudDetectionSchema, len(records), func(bldr *array.RecordBuilder) {
		for _, rec := range records {
			f := newFieldAppender(bldr)

			f.int64(rec.ID)
			f.timestamp(rec.Date)
			f.int64(rec.ClientID)
			f.int64(rec.CardID)
			f.float64Ptr(rec.Amount)
			f.string(rec.UseChip)
			f.string(rec.MerchantID)
			f.string(rec.MerchantCity)
			f.string(rec.MerchantState)
			f.string(rec.Zip)
			f.int64Ptr(rec.MCC)
			f.stringPtr(rec.Errors)
			f.int64(rec.IsRefund)
			f.int64(rec.HasError)
			f.int64(rec.ErrorBadExpiration)
			f.int64(rec.ErrorBadCardNumber)
			f.int64(rec.ErrorInsufficientBalance)
			f.int64(rec.ErrorBadPIN)
			f.int64(rec.ErrorBadCVV)
			f.int64(rec.ErrorBadZipcode)
			f.int64(rec.ErrorTechnicalGlitch)
			f.int64(rec.ErrorCount)

			f.stringPtr(rec.MCCDescription)

			if card := rec.Card; card != nil {
				f.string(card.Brand)
				f.string(card.Type)
				f.string(card.Number)
				f.date(card.Expires)
				f.string(card.CVV)
				f.int64Ptr(card.HasChip)
				f.int64Ptr(card.NumCardsIssued)
				f.float64Ptr(card.CreditLimit)
				f.date(card.AcctOpenDate)
				f.int64Ptr(card.YearPINLastChanged)
			} else {
				f.nulls(10)
			}

			appendUserBlock(f, rec.User)

			f.string(rec.Target)
		}
	})
}

// WriteCreditLimit writes the credit-limit dataset to path
func (w *ParquetWriter) WriteCreditLimit(path string, records []domain.CreditLimitRecord) error {
	return w.writeTable(path, CreditLimitSchema, len(records), func(bldr *array.RecordBuilder) {
		for _, rec := range records {
			f := newFieldAppender(bldr)

			f.int64(rec.ID)
			f.int64(rec.ClientID)
			f.string(rec.Brand)
			f.string(rec.Type)
			f.string(rec.Number)
			f.date(rec.Expires)
			f.string(rec.CVV)
			f.int64Ptr(rec.HasChip)
			f.int64Ptr(rec.NumCardsIssued)
			f.float64Ptr(rec.CreditLimit)
			f.date(rec.AcctOpenDate)
			f.int64Ptr(rec.YearPINLastChanged)

			appendUserBlock(f, rec.User)

			if agg := rec.Aggregates; agg != nil {
				f.int64(agg.TxnCount)
				f.float64Ptr(agg.AmountMean)
				f.float64Ptr(agg.AmountMax)
				f.float64Ptr(agg.AmountMin)
				f.float64(agg.TotalSpent)
				f.float64(agg.TotalRefunded)
				f.int64(agg.RefundCount)
				f.float64(agg.ErrorRate)
				f.int64(agg.ErrorTotal)
			} else {
				f.nulls(9)
			}
		}
	})
}

// appendUserBlock appends the 14 user columns, nulls when the join found
// no user for the row
func appendUserBlock(f *fieldAppender, user *domain.User) {
	if user == nil {
		f.nulls(14)
		return
	}
	f.int64Ptr(user.CurrentAge)
	f.int64Ptr(user.RetirementAge)
	f.int64Ptr(user.BirthYear)
	f.int64Ptr(user.BirthMonth)
	f.string(user.Gender)
	f.string(user.Address)
	f.float64Ptr(user.Latitude)
	f.float64Ptr(user.Longitude)
	f.float64Ptr(user.PerCapitaIncome)
	f.float64Ptr(user.YearlyIncome)
	f.float64Ptr(user.TotalDebt)
	f.int64Ptr(user.CreditScore)
	f.int64Ptr(user.NumCreditCards)
	f.float64Ptr(user.DebtToIncomeRatio)
}

// writeTable builds one Arrow record from appendRows and writes it as a
// single Parquet file, creating the destination directory when needed and
// overwriting any existing file.
func (w *ParquetWriter) writeTable(path string, schema *arrow.Schema, rows int, appendRows func(*array.RecordBuilder)) error {
	w.logger.Info("writing Parquet file",
		slog.String("path", path),
		slog.Int("record_count", rows))

	bldr := array.NewRecordBuilder(w.allocator, schema)
	defer bldr.Release()

	appendRows(bldr)

	rec := bldr.NewRecord()
	defer rec.Release()

	table := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer table.Release()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for Parquet output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create Parquet file %s", path), err)
	}
	defer file.Close()

	chunkSize := table.NumRows()
	if chunkSize == 0 {
		chunkSize = 1
	}

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	if err := pqarrow.WriteTable(table, file, chunkSize, props, pqarrow.DefaultWriterProps()); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write Parquet file %s", path), err)
	}

	return nil
}

// fieldAppender appends one row across the builder's fields in schema
// order, keeping the appends aligned with the schema definition above.
type fieldAppender struct {
	bldr *array.RecordBuilder
	next int
}

func newFieldAppender(bldr *array.RecordBuilder) *fieldAppender {
	return &fieldAppender{bldr: bldr}
}

func (f *fieldAppender) field() array.Builder {
	b := f.bldr.Field(f.next)
	f.next++
	return b
}

func (f *fieldAppender) nulls(n int) {
	for i := 0; i < n; i++ {
		f.field().AppendNull()
	}
}

func (f *fieldAppender) int64(v int64) {
	f.field().(*array.Int64Builder).Append(v)
}

func (f *fieldAppender) int64Ptr(v *int64) {
	b := f.field().(*array.Int64Builder)
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(*v)
}

func (f *fieldAppender) float64(v float64) {
	f.field().(*array.Float64Builder).Append(v)
}

func (f *fieldAppender) float64Ptr(v *float64) {
	b := f.field().(*array.Float64Builder)
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(*v)
}

func (f *fieldAppender) string(v string) {
	f.field().(*array.StringBuilder).Append(v)
}

func (f *fieldAppender) stringPtr(v *string) {
	b := f.field().(*array.StringBuilder)
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(*v)
}

func (f *fieldAppender) date(t *time.Time) {
	b := f.field().(*array.Date32Builder)
	if t == nil {
		b.AppendNull()
		return
	}
	b.Append(arrow.Date32FromTime(*t))
}

func (f *fieldAppender) timestamp(t *time.Time) {
	b := f.field().(*array.TimestampBuilder)
	if t == nil {
		b.AppendNull()
		return
	}
	ts, err := arrow.TimestampFromTime(*t, arrow.Millisecond)
	if err != nil {
		b.AppendNull()
		return
	}
	b.Append(ts)
}
