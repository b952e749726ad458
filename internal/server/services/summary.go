package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/ezilbeari/pennywise/internal/server/models"
	"github.com/ezilbeari/pennywise/internal/server/repositories/repomanager"
)

// recentTransactionsLimit caps the recent list on the home screen.
const recentTransactionsLimit = 5

// Summary is the home-screen overview: current-month totals plus the most
// recent transactions.
type Summary struct {
	Income  float64               `json:"income"`
	Expense float64               `json:"expense"`
	Balance float64               `json:"balance"`
	Recent  []*models.Transaction `json:"recent"`
}

// SummaryService aggregates transactions for the home screen.
type SummaryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSummaryService constructs a SummaryService.
func NewSummaryService(db *sql.DB, m repomanager.RepositoryManager) *SummaryService {
	return &SummaryService{db: db, repomanager: m}
}

// ForUser computes the user's summary for the current calendar month.
func (s *SummaryService) ForUser(ctx context.Context, userID string) (*Summary, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	repo := s.repomanager.Transactions(s.db)

	income, expense, err := repo.SummarizeSince(ctx, userID, monthStart)
	if err != nil {
		return nil, err
	}

	recent, err := repo.ListRecentByUser(ctx, userID, recentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Income:  income,
		Expense: expense,
		Balance: income - expense,
		Recent:  recent,
	}, nil
}
