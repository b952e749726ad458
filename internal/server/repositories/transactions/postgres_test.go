package transactions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_ReturnsGeneratedFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	occurred := time.Now()
	mock.ExpectQuery(`INSERT\s+INTO\s+transactions`).
		WithArgs("u1", 42.5, nil, "groceries", "expense").
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at"}).AddRow("tx1", occurred))

	tx, err := repo.Create(context.Background(), &models.Transaction{
		UserID: "u1", Amount: 42.5, Note: "groceries", Type: "expense",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID != "tx1" || !tx.OccurredAt.Equal(occurred) {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "amount", "category_id", "note", "type", "receipt_key", "occurred_at"}).
		AddRow("tx2", "u1", 100.0, nil, "salary", "income", nil, now).
		AddRow("tx1", "u1", 42.5, nil, "groceries", "expense", nil, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT\s+id,\s*user_id,\s*amount,.*FROM\s+transactions\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+occurred_at\s+DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "tx2" || list[1].ID != "tx1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*user_id,\s*amount,.*FROM\s+transactions`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "category_id", "note", "type", "receipt_key", "occurred_at"}))

	list, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", list)
	}
}

func TestSummarizeSince(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	since := time.Now().AddDate(0, 0, -30)
	mock.ExpectQuery(`(?s)SELECT\s+COALESCE\(SUM\(amount\)\s+FILTER\s+\(WHERE\s+type\s*=\s*'income'\),\s*0\)`).
		WithArgs("u1", since).
		WillReturnRows(sqlmock.NewRows([]string{"income", "expense"}).AddRow(1500.0, 420.75))

	income, expense, err := repo.SummarizeSince(context.Background(), "u1", since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if income != 1500.0 || expense != 420.75 {
		t.Fatalf("unexpected totals: income=%v expense=%v", income, expense)
	}
}

func TestSetReceiptKey_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+transactions\s+SET\s+receipt_key\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3`).
		WithArgs("receipts/u1/key", "tx1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetReceiptKey(context.Background(), "u1", "tx1", "receipts/u1/key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetReceiptKey_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+transactions\s+SET\s+receipt_key`).
		WithArgs("key", "tx-foreign", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetReceiptKey(context.Background(), "u1", "tx-foreign", "key")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
