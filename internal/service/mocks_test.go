package service

import (
	"context"

	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn       func(ctx context.Context, user models.User) (models.User, error)
	findUserByMobileFn func(ctx context.Context, mobile string) (models.User, error)
	upsertUserFn       func(ctx context.Context, user models.User) error
	updateRoleFn       func(ctx context.Context, mobile, role string) error
	listUsersFn        func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByMobile(ctx context.Context, mobile string) (models.User, error) {
	if m.findUserByMobileFn != nil {
		return m.findUserByMobileFn(ctx, mobile)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpsertUser(ctx context.Context, user models.User) error {
	if m.upsertUserFn != nil {
		return m.upsertUserFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, mobile, role string) error {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, mobile, role)
	}
	return nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.RecordRepository
// ─────────────────────────────────────────────

type mockRecordRepository struct {
	upsertRecordFn func(ctx context.Context, record models.Record) (models.Record, error)
	listRecordsFn  func(ctx context.Context, filter store.RecordFilter) ([]models.Record, error)
}

func (m *mockRecordRepository) UpsertRecord(ctx context.Context, record models.Record) (models.Record, error) {
	if m.upsertRecordFn != nil {
		return m.upsertRecordFn(ctx, record)
	}
	return record, nil
}

func (m *mockRecordRepository) ListRecords(ctx context.Context, filter store.RecordFilter) ([]models.Record, error) {
	if m.listRecordsFn != nil {
		return m.listRecordsFn(ctx, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.ExpenseRepository
// ─────────────────────────────────────────────

type mockExpenseRepository struct {
	createExpenseFn func(ctx context.Context, expense models.Expense) (models.Expense, error)
	deleteExpenseFn func(ctx context.Context, id string) error
	listExpensesFn  func(ctx context.Context) ([]models.Expense, error)
}

func (m *mockExpenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(ctx, expense)
	}
	return expense, nil
}

func (m *mockExpenseRepository) DeleteExpense(ctx context.Context, id string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(ctx, id)
	}
	return nil
}

func (m *mockExpenseRepository) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.MemberRepository
// ─────────────────────────────────────────────

type mockMemberRepository struct {
	listMembersFn    func(ctx context.Context) ([]models.Member, error)
	replaceMembersFn func(ctx context.Context, members []models.Member) error
}

func (m *mockMemberRepository) ListMembers(ctx context.Context) ([]models.Member, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx)
	}
	return []models.Member{}, nil
}

func (m *mockMemberRepository) ReplaceMembers(ctx context.Context, members []models.Member) error {
	if m.replaceMembersFn != nil {
		return m.replaceMembersFn(ctx, members)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: IDGenerator
// ─────────────────────────────────────────────

type fixedIDGenerator struct {
	id string
}

func (g *fixedIDGenerator) Generate() string {
	return g.id
}
