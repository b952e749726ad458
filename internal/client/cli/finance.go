package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ezilbeari/pennywise/internal/client/api"
)

// reportError prints a command failure. Auth-class failures get a single
// friendly hint instead of a raw error dump, since the guard already locked.
func (a *App) reportError(err error) {
	if api.IsAuthError(err) {
		fmt.Println("Session expired. Please login again.")
		return
	}
	log.Println(err.Error())
}

// List prints the user's transactions, newest first.
func (a *App) List(ctx context.Context) error {
	txs, err := a.apiClient.ListTransactions(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	if len(txs) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}
	for _, tx := range txs {
		sign := "+"
		if tx.Type == "expense" {
			sign = "-"
		}
		fmt.Printf("%s  %s%.2f  %s\n", tx.OccurredAt.Format("2006-01-02"), sign, tx.Amount, tx.Note)
	}
	return nil
}

// Add prompts for a transaction and records it.
func (a *App) Add(ctx context.Context) error {

	kind, err := GetSimpleText(a.reader, "Type (income/expense)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	amountText, err := GetSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		fmt.Println("Amount must be a number.")
		return err
	}

	note, err := GetSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if _, err := a.apiClient.AddTransaction(ctx, amount, kind, note); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Println("Saved.")
	return nil
}

// Budgets prints the user's budgets with current usage.
func (a *App) Budgets(ctx context.Context) error {
	budgets, err := a.apiClient.ListBudgets(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	if len(budgets) == 0 {
		fmt.Println("No budgets yet.")
		return nil
	}
	for _, b := range budgets {
		fmt.Printf("%s (%s): %.2f of %.2f used\n", b.Category, b.Period, b.Used, b.Limit)
	}
	return nil
}

// Summary prints the current-month totals and recent transactions.
func (a *App) Summary(ctx context.Context) error {
	s, err := a.apiClient.GetSummary(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Printf("Income: %.2f  Expense: %.2f  Balance: %.2f\n", s.Income, s.Expense, s.Balance)
	for _, tx := range s.Recent {
		fmt.Printf("  %s  %s %.2f  %s\n", tx.OccurredAt.Format("2006-01-02"), tx.Type, tx.Amount, tx.Note)
	}
	return nil
}

// Currency shows or updates the preferred currency.
func (a *App) Currency(ctx context.Context) error {

	current, err := a.apiClient.GetSettings(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}
	fmt.Printf("Current currency: %s\n", current.Currency)

	value, err := GetSimpleText(a.reader, "New currency (empty to keep)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	if value == "" {
		return nil
	}

	if err := a.apiClient.UpdateSettings(ctx, &api.Settings{Currency: value}); err != nil {
		a.reportError(err)
		return err
	}
	fmt.Println("Saved.")
	return nil
}
