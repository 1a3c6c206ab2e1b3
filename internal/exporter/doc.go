// Package exporter persists the cleaned datasets. The credit-limit table
// is written both as Parquet and as delimited text; the fraud-detection
// table as Parquet only. Writers create the destination directory when
// absent and overwrite existing files, so re-running the pipeline on
// unchanged inputs reproduces the same logical content.
package exporter
