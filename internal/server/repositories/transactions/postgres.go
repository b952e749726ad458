package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/dbx"
	"github.com/ezilbeari/pennywise/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {

	query :=
		`INSERT INTO transactions (user_id, amount, category_id, note, type, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 RETURNING id, occurred_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		t.UserID, t.Amount, t.CategoryID, t.Note, t.Type).Scan(&t.ID, &t.OccurredAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	query :=
		`SELECT id, user_id, amount, category_id, note, type, receipt_key, occurred_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY occurred_at DESC
		 `
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	query :=
		`SELECT id, user_id, amount, category_id, note, type, receipt_key, occurred_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY occurred_at DESC
		 LIMIT $2
		 `
	return r.list(ctx, query, userID, limit)
}

func (r *PostgresRepository) SummarizeSince(ctx context.Context, userID string, since time.Time) (float64, float64, error) {
	query :=
		`SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(ABS(amount)) FILTER (WHERE type = 'expense'), 0)
		 FROM transactions
		 WHERE user_id = $1 AND occurred_at >= $2
		 `

	var income, expense float64
	if err := r.db.QueryRowContext(ctx, query, userID, since).Scan(&income, &expense); err != nil {
		return 0, 0, fmt.Errorf("db error: %w", err)
	}

	return income, expense, nil
}

func (r *PostgresRepository) SetReceiptKey(ctx context.Context, userID, transactionID, key string) error {
	query :=
		`UPDATE transactions SET receipt_key = $1
		 WHERE id = $2 AND user_id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, key, transactionID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Transaction, 0)
	for rows.Next() {
		t := &models.Transaction{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.CategoryID, &t.Note, &t.Type, &t.ReceiptKey, &t.OccurredAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
