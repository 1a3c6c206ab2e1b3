// Package dataprocessing implements the cleaning-and-merge pipeline that
// turns the raw financial tables (users, cards, transactions, fraud labels,
// merchant category codes) into the two modeling-ready datasets.
//
// The stages run strictly in sequence: loaders read the raw tables with a
// fixed expected schema per entity, per-table normalizers deduplicate,
// coerce types and derive features, the aggregator computes per-card
// transaction statistics, and the dataset builders assemble the fraud
// detection and credit limit outputs through order-preserving left joins.
package dataprocessing
