package repomanager

import (
	"context"
	"database/sql"

	"github.com/ezilbeari/pennywise/internal/dbx"
	"github.com/ezilbeari/pennywise/internal/server/repositories/budgets"
	"github.com/ezilbeari/pennywise/internal/server/repositories/refreshtokens"
	"github.com/ezilbeari/pennywise/internal/server/repositories/settings"
	"github.com/ezilbeari/pennywise/internal/server/repositories/transactions"
	"github.com/ezilbeari/pennywise/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Transactions(db dbx.DBTX) transactions.Repository
	Budgets(db dbx.DBTX) budgets.Repository
	Settings(db dbx.DBTX) settings.Repository
}
