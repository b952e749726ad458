package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/dbx"
	"github.com/ezilbeari/pennywise/internal/server/models"
	"github.com/ezilbeari/pennywise/internal/server/repositories/repomanager"
)

// BudgetService manages per-category spending limits.
type BudgetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewBudgetService constructs a BudgetService.
func NewBudgetService(db *sql.DB, m repomanager.RepositoryManager) *BudgetService {
	return &BudgetService{db: db, repomanager: m}
}

// List returns the user's budgets with live usage.
func (s *BudgetService) List(ctx context.Context, userID string) ([]*models.Budget, error) {
	return s.repomanager.Budgets(s.db).ListByUser(ctx, userID)
}

// CreateInput describes a budget to create. Either CategoryID or Category
// (a name, resolved or created on the fly) must be set.
type CreateInput struct {
	UserID     string
	CategoryID string
	Category   string
	Amount     float64
	Period     string
	StartDate  *time.Time
}

// Create validates the input and inserts the budget, resolving the category
// in the same transaction.
func (s *BudgetService) Create(ctx context.Context, in CreateInput) (*models.Budget, error) {
	if in.Amount <= 0 {
		return nil, common.ErrorValidation
	}
	if in.Period == "" {
		in.Period = models.BudgetPeriodMonthly
	}
	if !validPeriod(in.Period) {
		return nil, common.ErrorValidation
	}
	if in.CategoryID == "" && in.Category == "" {
		return nil, common.ErrorValidation
	}

	start := defaultStartDate(in.Period)
	if in.StartDate != nil {
		start = normalizeDate(*in.StartDate)
	}

	var budget *models.Budget
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Budgets(tx)

		categoryID := in.CategoryID
		if categoryID == "" {
			id, err := repo.ResolveCategory(ctx, in.Category)
			if err != nil {
				return err
			}
			categoryID = id
		}

		b := &models.Budget{
			UserID:     in.UserID,
			CategoryID: categoryID,
			Category:   in.Category,
			Amount:     in.Amount,
			Period:     in.Period,
			StartDate:  start,
		}

		created, err := repo.Create(ctx, b)
		if err != nil {
			return err
		}
		budget = created
		return nil
	}); err != nil {
		return nil, err
	}

	return budget, nil
}

// UpdateAmount changes the limit of an owned budget.
func (s *BudgetService) UpdateAmount(ctx context.Context, userID, budgetID string, amount float64) (*models.Budget, error) {
	if amount <= 0 {
		return nil, common.ErrorValidation
	}
	return s.repomanager.Budgets(s.db).UpdateAmount(ctx, userID, budgetID, amount)
}

// Delete removes an owned budget.
func (s *BudgetService) Delete(ctx context.Context, userID, budgetID string) error {
	return s.repomanager.Budgets(s.db).Delete(ctx, userID, budgetID)
}

// --- helpers below ---

func validPeriod(p string) bool {
	switch p {
	case models.BudgetPeriodWeekly, models.BudgetPeriodMonthly, models.BudgetPeriodYearly:
		return true
	}
	return false
}

func normalizeDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

func defaultStartDate(period string) time.Time {
	now := time.Now()
	switch period {
	case models.BudgetPeriodWeekly:
		return normalizeDate(now.AddDate(0, 0, -7))
	case models.BudgetPeriodYearly:
		return normalizeDate(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()))
	default:
		return normalizeDate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	}
}
