package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/models"
)

func newTestExpenseRepo(t *testing.T) (*expenseRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &expenseRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func expenseRows(exps ...models.Expense) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "description", "amount", "date", "category", "created_at"})
	for _, e := range exps {
		rows.AddRow(e.ID, e.Description, e.Amount, e.Date, e.Category, time.Now())
	}
	return rows
}

func TestCreateExpense_ReturnsStoredRow(t *testing.T) {
	repo, mock, db := newTestExpenseRepo(t)
	defer db.Close()

	in := models.Expense{
		ID:          "0198f3a0-0000-7000-8000-000000000001",
		Description: "Diwali decorations",
		Amount:      1200,
		Date:        "2026-08-30",
		Category:    "Festival",
	}

	mock.ExpectQuery("INSERT INTO expenses").
		WithArgs(in.ID, in.Description, in.Amount, in.Date, in.Category).
		WillReturnRows(expenseRows(in))

	got, err := repo.CreateExpense(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != in.ID || got.Description != in.Description {
		t.Errorf("unexpected expense: %+v", got)
	}
}

func TestDeleteExpense_AbsentIDSucceeds(t *testing.T) {
	repo, mock, db := newTestExpenseRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM expenses").
		WithArgs("no-such-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteExpense(context.Background(), "no-such-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListExpenses_ReturnsAll(t *testing.T) {
	repo, mock, db := newTestExpenseRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM expenses").
		WillReturnRows(expenseRows(
			models.Expense{ID: "a", Description: "Plumbing repair", Amount: 850, Date: "2026-08-01", Category: "Maintenance"},
			models.Expense{ID: "b", Description: "Water cans", Amount: 300, Date: "2026-08-15", Category: "Other"},
		))

	expenses, err := repo.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
}
