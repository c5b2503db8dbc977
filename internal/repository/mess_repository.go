package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campus-portal/internal/model"
)

type MessRepository interface {
	GetBalance(ctx context.Context, userID int64) (*model.MessBalance, error)
	ListTransactions(ctx context.Context, userID int64) ([]*model.MessTransaction, error)
	// ApplyTransaction records the movement and adjusts the stored balance
	// in one database transaction.
	ApplyTransaction(ctx context.Context, txn *model.MessTransaction) error
}

type PgMessRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessRepository(pool *pgxpool.Pool) *PgMessRepository {
	return &PgMessRepository{pool: pool}
}

func (r *PgMessRepository) GetBalance(ctx context.Context, userID int64) (*model.MessBalance, error) {
	query := `
		SELECT id, user_id, balance::text, meal_swipes, total_meal_swipes, dining_points, meal_plan, next_billing_date, updated_at
		FROM mess_balances
		WHERE user_id = $1
	`

	var balance model.MessBalance
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&balance.ID,
		&balance.UserID,
		&balance.Balance,
		&balance.MealSwipes,
		&balance.TotalMealSwipes,
		&balance.DiningPoints,
		&balance.MealPlan,
		&balance.NextBillingDate,
		&balance.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get mess balance: %w", err)
	}

	return &balance, nil
}

func (r *PgMessRepository) ListTransactions(ctx context.Context, userID int64) ([]*model.MessTransaction, error) {
	query := `
		SELECT id, user_id, amount::text, description, date, time, created_at
		FROM mess_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list mess transactions: %w", err)
	}
	defer rows.Close()

	var txns []*model.MessTransaction
	for rows.Next() {
		var txn model.MessTransaction
		err := rows.Scan(
			&txn.ID,
			&txn.UserID,
			&txn.Amount,
			&txn.Description,
			&txn.Date,
			&txn.Time,
			&txn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan mess transaction: %w", err)
		}
		txns = append(txns, &txn)
	}

	return txns, rows.Err()
}

func (r *PgMessRepository) ApplyTransaction(ctx context.Context, txn *model.MessTransaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO mess_transactions (user_id, amount, description, date, time)
		VALUES ($1, $2::numeric, $3, $4, $5)
		RETURNING id, created_at
	`
	err = tx.QueryRow(
		ctx, insert,
		txn.UserID,
		txn.Amount,
		txn.Description,
		txn.Date,
		txn.Time,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert mess transaction: %w", err)
	}

	update := `
		UPDATE mess_balances
		SET balance = balance + $2::numeric, updated_at = now()
		WHERE user_id = $1
	`
	tag, err := tx.Exec(ctx, update, txn.UserID, txn.Amount)
	if err != nil {
		return fmt.Errorf("update mess balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mess balance for user %d not found", txn.UserID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
