package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finprep/pkg/contracts/domain"
)

func TestBuildFraudDetection(t *testing.T) {
	txs := []domain.Transaction{
		{ID: 1, ClientID: 825, CardID: 4524, MCC: intPtr(5499)},
		{ID: 2, ClientID: 825, CardID: 4524, MCC: intPtr(9999)},
		{ID: 3, ClientID: 42, CardID: 77, MCC: nil},
		{ID: 4, ClientID: 825, CardID: 4524},
	}
	labels := []domain.FraudLabel{
		{TransactionID: 1, Target: domain.TargetLegitimate},
		{TransactionID: 2, Target: domain.TargetFraud},
		{TransactionID: 3, Target: domain.TargetFraud},
		// transaction 4 is unlabeled
	}
	mccs := []domain.MccCode{
		{Code: 5499, Description: "Miscellaneous Food Stores"},
	}
	cards := []domain.Card{
		{ID: 4524, ClientID: 825, Brand: "Visa"},
	}
	users := []domain.User{
		{ID: 825, Gender: "Female"},
	}

	records := BuildFraudDetection(testLogger(), txs, labels, mccs, cards, users)

	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, domain.TargetLegitimate, first.Target)
	require.NotNil(t, first.MCCDescription)
	assert.Equal(t, "Miscellaneous Food Stores", *first.MCCDescription)
	require.NotNil(t, first.Card)
	assert.Equal(t, "Visa", first.Card.Brand)
	require.NotNil(t, first.User)
	assert.Equal(t, "Female", first.User.Gender)

	// Unknown MCC code leaves the description null.
	second := records[1]
	assert.Equal(t, domain.TargetFraud, second.Target)
	assert.Nil(t, second.MCCDescription)

	// Unmatched card and user joins leave nil blocks.
	third := records[2]
	assert.Equal(t, int64(3), third.ID)
	assert.Nil(t, third.Card)
	assert.Nil(t, third.User)
	assert.Nil(t, third.MCCDescription)

	// Every output row carries an admissible target.
	for _, rec := range records {
		assert.Contains(t, []string{domain.TargetFraud, domain.TargetLegitimate}, rec.Target)
	}
}

func TestBuildFraudDetectionExcludesInadmissibleTargets(t *testing.T) {
	txs := []domain.Transaction{
		{ID: 1},
		{ID: 2},
	}
	labels := []domain.FraudLabel{
		{TransactionID: 1, Target: ""},
		{TransactionID: 2, Target: domain.TargetLegitimate},
	}

	records := BuildFraudDetection(testLogger(), txs, labels, nil, nil, nil)

	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].ID)
}

func TestBuildFraudDetectionPreservesTransactionOrder(t *testing.T) {
	txs := []domain.Transaction{
		{ID: 30},
		{ID: 10},
		{ID: 20},
	}
	labels := []domain.FraudLabel{
		{TransactionID: 10, Target: domain.TargetLegitimate},
		{TransactionID: 20, Target: domain.TargetLegitimate},
		{TransactionID: 30, Target: domain.TargetLegitimate},
	}

	records := BuildFraudDetection(testLogger(), txs, labels, nil, nil, nil)

	require.Len(t, records, 3)
	assert.Equal(t, int64(30), records[0].ID)
	assert.Equal(t, int64(10), records[1].ID)
	assert.Equal(t, int64(20), records[2].ID)
}
