package models

import "time"

// Budget periods.
const (
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
	BudgetPeriodYearly  = "yearly"
)

// Budget is a spending limit for one category over a rolling period.
// Used is computed at read time from expense transactions since StartDate.
type Budget struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	CategoryID string    `json:"categoryId"`
	Category   string    `json:"category"`
	Amount     float64   `json:"limit"`
	Period     string    `json:"period"`
	StartDate  time.Time `json:"startDate"`
	Used       float64   `json:"used"`
}
