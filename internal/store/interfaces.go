package store

import (
	"context"

	"github.com/bishtbros/ledger/models"
)

// UserRepository is the persistence contract for account records.
type UserRepository interface {
	// CreateUser inserts a new account. Role assignment is atomic with the
	// insert: the very first account ever stored becomes admin, every later
	// one becomes viewer, decided inside a single transaction.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByMobile returns the account for mobile. ErrNoUserWasFound
	// covers every miss. Used by login, role changes, and the legacy
	// migration.
	FindUserByMobile(ctx context.Context, mobile string) (models.User, error)

	// UpsertUser inserts or fully replaces the account keyed by mobile.
	// Used by the legacy migration.
	UpsertUser(ctx context.Context, user models.User) error

	// UpdateRole overwrites the role of the account identified by mobile.
	UpdateRole(ctx context.Context, mobile, role string) error

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// RecordRepository is the persistence contract for monthly due records.
type RecordRepository interface {
	// UpsertRecord creates or replaces the record keyed by (name, period).
	// On replace, only amount, status, and paid_date change; record identity
	// and creation time are untouched.
	UpsertRecord(ctx context.Context, record models.Record) (models.Record, error)

	// ListRecords returns records matching the filter; a zero filter
	// returns the full snapshot.
	ListRecords(ctx context.Context, filter RecordFilter) ([]models.Record, error)
}

// ExpenseRepository is the persistence contract for expenses.
type ExpenseRepository interface {
	// CreateExpense inserts a new expense under its pre-generated id.
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)

	// DeleteExpense removes the expense with the given id. Deleting an
	// absent id is not an error.
	DeleteExpense(ctx context.Context, id string) error

	// ListExpenses returns every expense.
	ListExpenses(ctx context.Context) ([]models.Expense, error)
}

// MemberRepository is the persistence contract for the membership registry.
type MemberRepository interface {
	// ListMembers returns every stored member. An empty registry returns an
	// empty slice, not the seed roster; the fallback is service-level.
	ListMembers(ctx context.Context) ([]models.Member, error)

	// ReplaceMembers atomically discards the stored registry and installs
	// the given one in full. A failure rolls back to the previous registry.
	ReplaceMembers(ctx context.Context, members []models.Member) error
}

// SettingRepository is the persistence contract for the key→value settings
// store.
type SettingRepository interface {
	// GetSetting returns the setting for key, or ErrSettingNotFound.
	GetSetting(ctx context.Context, key string) (models.Setting, error)

	// PutSetting inserts or replaces the setting keyed by its Key field.
	PutSetting(ctx context.Context, setting models.Setting) error
}

// RecordFilter restricts ListRecords. Zero-valued fields are not applied.
type RecordFilter struct {
	// Name filters to records whose payer name matches exactly.
	Name string

	// Status filters to records with the given status.
	Status string
}
