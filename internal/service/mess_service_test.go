package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/apperr"
	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/testutil"
)

func newMessFixture(t *testing.T) (*MessService, *testutil.FakeMessRepo) {
	t.Helper()
	repo := testutil.NewFakeMessRepo()
	repo.Balances[1] = &model.MessBalance{UserID: 1, Balance: "500.00"}
	return NewMessService(repo, zap.NewNop()), repo
}

func TestBalance(t *testing.T) {
	svc, _ := newMessFixture(t)
	ctx := context.Background()

	balance, err := svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "500.00", balance.Balance)

	_, err = svc.Balance(ctx, 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddTransaction(t *testing.T) {
	svc, repo := newMessFixture(t)
	ctx := context.Background()

	txn, err := svc.AddTransaction(ctx, 1, "-45.50", "Lunch", "2025-06-01", "12:30 PM")
	require.NoError(t, err)
	assert.NotZero(t, txn.ID)
	assert.Equal(t, "-45.50", txn.Amount)

	txns, err := svc.Transactions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Lunch", txns[0].Description)

	assert.Len(t, repo.Transactions, 1)
}

func TestAddTransactionAdjustsBalance(t *testing.T) {
	svc, _ := newMessFixture(t)
	ctx := context.Background()

	_, err := svc.AddTransaction(ctx, 1, "-45.50", "Lunch", "2025-06-01", "12:30 PM")
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "454.50", balance.Balance)

	_, err = svc.AddTransaction(ctx, 1, "100", "Top up", "2025-06-01", "06:00 PM")
	require.NoError(t, err)

	balance, err = svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "554.50", balance.Balance)
}

func TestAddTransactionValidation(t *testing.T) {
	svc, _ := newMessFixture(t)
	ctx := context.Background()

	cases := []struct {
		name                            string
		amount, description, date, time string
	}{
		{"bad amount", "forty", "Lunch", "2025-06-01", "12:30 PM"},
		{"empty description", "-45.50", " ", "2025-06-01", "12:30 PM"},
		{"empty time", "-45.50", "Lunch", "2025-06-01", ""},
		{"bad date", "-45.50", "Lunch", "June 1st", "12:30 PM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddTransaction(ctx, 1, tc.amount, tc.description, tc.date, tc.time)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}

	// No balance row for this user.
	_, err := svc.AddTransaction(ctx, 99, "-45.50", "Lunch", "2025-06-01", "12:30 PM")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddTransactionNormalizesDate(t *testing.T) {
	svc, _ := newMessFixture(t)

	txn, err := svc.AddTransaction(context.Background(), 1, "100", "Top up", "2025/06/01", "09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", txn.Date)
}
