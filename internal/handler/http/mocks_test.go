package http

import (
	"context"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/service"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn     func(ctx context.Context, mobile, password, name string) (string, error)
	authenticateFn func(ctx context.Context, mobile, password string) (models.User, error)
	changeRoleFn   func(ctx context.Context, acting models.Session, targetMobile, newRole string) error
	listUsersFn    func(ctx context.Context) ([]models.UserInfo, error)
}

func (m *mockAuthService) Register(ctx context.Context, mobile, password, name string) (string, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, mobile, password, name)
	}
	return models.RoleViewer, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, mobile, password string) (models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, mobile, password)
	}
	return models.User{}, service.ErrInvalidCredentials
}

func (m *mockAuthService) ChangeRole(ctx context.Context, acting models.Session, targetMobile, newRole string) error {
	if m.changeRoleFn != nil {
		return m.changeRoleFn(ctx, acting, targetMobile, newRole)
	}
	return nil
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.LedgerService
// ─────────────────────────────────────────────

type mockLedgerService struct {
	upsertRecordFn  func(ctx context.Context, name, period string, amount any, status, paidDate string) (models.Record, error)
	listRecordsFn   func(ctx context.Context, filter store.RecordFilter) ([]models.Record, error)
	addExpenseFn    func(ctx context.Context, description string, amount any, date, category string) (models.Expense, error)
	removeExpenseFn func(ctx context.Context, id string) error
	listExpensesFn  func(ctx context.Context) ([]models.Expense, error)
}

func (m *mockLedgerService) UpsertRecord(ctx context.Context, name, period string, amount any, status, paidDate string) (models.Record, error) {
	if m.upsertRecordFn != nil {
		return m.upsertRecordFn(ctx, name, period, amount, status, paidDate)
	}
	return models.Record{}, nil
}

func (m *mockLedgerService) ListRecords(ctx context.Context, filter store.RecordFilter) ([]models.Record, error) {
	if m.listRecordsFn != nil {
		return m.listRecordsFn(ctx, filter)
	}
	return []models.Record{}, nil
}

func (m *mockLedgerService) AddExpense(ctx context.Context, description string, amount any, date, category string) (models.Expense, error) {
	if m.addExpenseFn != nil {
		return m.addExpenseFn(ctx, description, amount, date, category)
	}
	return models.Expense{}, nil
}

func (m *mockLedgerService) RemoveExpense(ctx context.Context, id string) error {
	if m.removeExpenseFn != nil {
		return m.removeExpenseFn(ctx, id)
	}
	return nil
}

func (m *mockLedgerService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(ctx)
	}
	return []models.Expense{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.MemberService
// ─────────────────────────────────────────────

type mockMemberService struct {
	listMembersFn    func(ctx context.Context) ([]models.Member, error)
	replaceMembersFn func(ctx context.Context, members []models.Member) error
}

func (m *mockMemberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx)
	}
	return models.DefaultMembers(), nil
}

func (m *mockMemberService) ReplaceMembers(ctx context.Context, members []models.Member) error {
	if m.replaceMembersFn != nil {
		return m.replaceMembersFn(ctx, members)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: session.Store
// ─────────────────────────────────────────────

type mockSessionStore struct {
	createFn    func(mobile, role, name string) string
	lookupFn    func(token string) (models.Session, bool)
	destroyFn   func(token string)
	authorizeFn func(mobile, token, requiredRole string) bool
}

func (m *mockSessionStore) Create(mobile, role, name string) string {
	if m.createFn != nil {
		return m.createFn(mobile, role, name)
	}
	return "test-token"
}

func (m *mockSessionStore) Lookup(token string) (models.Session, bool) {
	if m.lookupFn != nil {
		return m.lookupFn(token)
	}
	return models.Session{}, false
}

func (m *mockSessionStore) Destroy(token string) {
	if m.destroyFn != nil {
		m.destroyFn(token)
	}
}

func (m *mockSessionStore) Authorize(mobile, token, requiredRole string) bool {
	if m.authorizeFn != nil {
		return m.authorizeFn(mobile, token, requiredRole)
	}
	return false
}

func (m *mockSessionStore) Sweep() int {
	return 0
}

// ─────────────────────────────────────────────
// Mock: Pinger
// ─────────────────────────────────────────────

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// newTestHandler assembles a Handler over the given mocks, substituting
// permissive defaults for any nil dependency.
func newTestHandler(auth *mockAuthService, ledger *mockLedgerService, members *mockMemberService, sessions *mockSessionStore) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if ledger == nil {
		ledger = &mockLedgerService{}
	}
	if members == nil {
		members = &mockMemberService{}
	}
	if sessions == nil {
		sessions = &mockSessionStore{}
	}

	return NewHandler(&service.Services{
		AuthService:   auth,
		LedgerService: ledger,
		MemberService: members,
	}, sessions, &mockPinger{}, logger.Nop())
}

// adminSessionStore returns a session store that accepts exactly the given
// mobile/token pair as a live admin session.
func adminSessionStore(mobile, token string) *mockSessionStore {
	sess := models.Session{Mobile: mobile, Role: models.RoleAdmin, Name: "Deepak"}
	return &mockSessionStore{
		lookupFn: func(t string) (models.Session, bool) {
			if t == token {
				return sess, true
			}
			return models.Session{}, false
		},
		authorizeFn: func(m, t, requiredRole string) bool {
			return m == mobile && t == token && requiredRole == models.RoleAdmin
		},
	}
}
