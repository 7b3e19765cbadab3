package service

import (
	"context"

	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/models"
)

type AuthService interface {
	// Register creates a new account and returns the assigned role. The
	// first account ever stored becomes admin.
	Register(ctx context.Context, mobile, password, name string) (string, error)

	// Authenticate verifies credentials and returns the stored account.
	// Every failure is ErrInvalidCredentials: callers never learn whether
	// the mobile or the password was wrong.
	Authenticate(ctx context.Context, mobile, password string) (models.User, error)

	// ChangeRole overwrites the role of the target account. Requires an
	// acting admin session; already-issued sessions keep the role captured
	// at login.
	ChangeRole(ctx context.Context, acting models.Session, targetMobile, newRole string) error

	// ListUsers returns the public projection of every account.
	ListUsers(ctx context.Context) ([]models.UserInfo, error)
}

type LedgerService interface {
	// UpsertRecord creates or replaces the due record keyed by (name,
	// period). Amount is coerced permissively, status defaults to Pending,
	// and the paid date is stamped or cleared according to status.
	UpsertRecord(ctx context.Context, name, period string, amount any, status, paidDate string) (models.Record, error)

	// ListRecords returns the records matching the filter, the full
	// snapshot when the filter is zero.
	ListRecords(ctx context.Context, filter store.RecordFilter) ([]models.Record, error)

	// AddExpense stores a new expense under a generated identifier.
	AddExpense(ctx context.Context, description string, amount any, date, category string) (models.Expense, error)

	// RemoveExpense deletes the expense with the given id. Deleting an
	// absent id succeeds.
	RemoveExpense(ctx context.Context, id string) error

	// ListExpenses returns every stored expense.
	ListExpenses(ctx context.Context) ([]models.Expense, error)
}

type MemberService interface {
	// ListMembers returns the stored registry, or the built-in seed roster
	// when the registry is empty.
	ListMembers(ctx context.Context) ([]models.Member, error)

	// ReplaceMembers atomically swaps the whole registry.
	ReplaceMembers(ctx context.Context, members []models.Member) error
}

// LegacyMigrator reconciles pre-existing JSON exports into the database at
// startup.
type LegacyMigrator interface {
	Run(ctx context.Context) error
}

// IDGenerator produces unique string identifiers for new expenses.
// Satisfied by utils.UUIDGenerator.
type IDGenerator interface {
	Generate() string
}
