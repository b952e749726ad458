package budgets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, b *models.Budget) (*models.Budget, error) {

	query :=
		`INSERT INTO budgets (user_id, category_id, amount, period, start_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		b.UserID, b.CategoryID, b.Amount, b.Period, b.StartDate).Scan(&b.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

// ListByUser joins categories and sums expense transactions since each
// budget's start date to produce live usage.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Budget, error) {
	query := `
		SELECT
			b.id,
			b.category_id,
			c.name AS category,
			b.amount,
			b.period,
			b.start_date,
			COALESCE(SUM(ABS(t.amount)), 0) AS used
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		LEFT JOIN transactions t
			ON t.user_id = b.user_id
			AND t.category_id = b.category_id
			AND t.type = 'expense'
			AND t.occurred_at >= b.start_date
		WHERE b.user_id = $1
		GROUP BY b.id, c.id
		ORDER BY c.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Budget, 0)
	for rows.Next() {
		b := &models.Budget{UserID: userID}
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.Category, &b.Amount, &b.Period, &b.StartDate, &b.Used); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) UpdateAmount(ctx context.Context, userID, budgetID string, amount float64) (*models.Budget, error) {
	query :=
		`UPDATE budgets SET amount = $1
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, category_id, amount, period, start_date
		 `

	b := &models.Budget{UserID: userID}
	err := r.db.QueryRowContext(ctx, query, amount, budgetID, userID).Scan(
		&b.ID, &b.CategoryID, &b.Amount, &b.Period, &b.StartDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, budgetID string) error {
	query :=
		`DELETE FROM budgets
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, budgetID, userID)
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

func (r *PostgresRepository) ResolveCategory(ctx context.Context, name string) (string, error) {
	query :=
		`INSERT INTO categories (name)
		 VALUES ($1)
		 ON CONFLICT (lower(name))
		 DO UPDATE SET name = EXCLUDED.name
		 RETURNING id
		 `

	var id string
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	return id, nil
}
