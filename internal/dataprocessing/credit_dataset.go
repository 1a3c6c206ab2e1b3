package dataprocessing

import (
	"log/slog"

	"finprep/pkg/contracts/domain"
)

// BuildCreditLimit assembles the credit-limit dataset: one row per card
// with a usable credit limit, joined with its user and per-card
// transaction aggregates. Cards with a nil credit limit are excluded (the
// regression target must be present); cards with no transactions keep a
// nil Aggregates block. Row order follows the card table.
func BuildCreditLimit(
	logger *slog.Logger,
	cards []domain.Card,
	users []domain.User,
	aggregates []domain.CardAggregates,
) []domain.CreditLimitRecord {
	userByID := make(map[int64]*domain.User, len(users))
	for i := range users {
		userByID[users[i].ID] = &users[i]
	}
	aggByCard := make(map[int64]*domain.CardAggregates, len(aggregates))
	for i := range aggregates {
		aggByCard[aggregates[i].CardID] = &aggregates[i]
	}

	records := make([]domain.CreditLimitRecord, 0, len(cards))
	missingTarget := 0
	for i := range cards {
		card := cards[i]
		if card.CreditLimit == nil {
			missingTarget++
			continue
		}
		records = append(records, domain.CreditLimitRecord{
			Card:       card,
			User:       userByID[card.ClientID],
			Aggregates: aggByCard[card.ID],
		})
	}

	logger.Info("built credit limit dataset",
		slog.Int("cards", len(cards)),
		slog.Int("rows", len(records)),
		slog.Int("missing_credit_limit", missingTarget))

	return records
}
