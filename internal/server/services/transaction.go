package services

import (
	"context"
	"database/sql"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/server/models"
	"github.com/ezilbeari/pennywise/internal/server/repositories/repomanager"
)

// TransactionService records and lists income/expense transactions.
type TransactionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTransactionService constructs a TransactionService.
func NewTransactionService(db *sql.DB, m repomanager.RepositoryManager) *TransactionService {
	return &TransactionService{db: db, repomanager: m}
}

// List returns the user's transactions, newest first.
func (s *TransactionService) List(ctx context.Context, userID string) ([]*models.Transaction, error) {
	return s.repomanager.Transactions(s.db).ListByUser(ctx, userID)
}

// Create validates and stores a transaction. Amount and type are required;
// type must be income or expense.
func (s *TransactionService) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	if t.Amount == 0 || t.Type == "" {
		return nil, common.ErrorValidation
	}
	if t.Type != models.TransactionTypeIncome && t.Type != models.TransactionTypeExpense {
		return nil, common.ErrorValidation
	}
	return s.repomanager.Transactions(s.db).Create(ctx, t)
}
