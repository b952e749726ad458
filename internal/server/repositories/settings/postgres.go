package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ezilbeari/pennywise/internal/dbx"
	"github.com/ezilbeari/pennywise/internal/server/models"
)

// defaultCurrency is used when a user has no stored settings row yet.
const defaultCurrency = "EUR"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Settings, error) {
	query :=
		`SELECT currency FROM settings
		 WHERE user_id = $1
		 `

	s := &models.Settings{UserID: userID}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.Currency)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.Currency = defaultCurrency
			return s, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Settings) error {
	query :=
		`INSERT INTO settings (user_id, currency)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id)
		 DO UPDATE SET currency = EXCLUDED.currency
		 `

	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.Currency); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
