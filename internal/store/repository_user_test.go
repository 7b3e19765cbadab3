package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User, at time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"user_id", "mobile", "password", "name", "role", "created_at"}).
		AddRow(user.UserID, user.Mobile, user.Password, user.Name, user.Role, at)
}

func TestCreateUser_FirstUserBecomesAdmin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Mobile: "9876543210", Password: "digest", Name: "Deepak"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Mobile, user.Password, user.Name, models.RoleAdmin).
		WillReturnRows(userRows(models.User{UserID: 1, Mobile: user.Mobile, Password: user.Password, Name: user.Name, Role: models.RoleAdmin}, time.Now()))
	mock.ExpectCommit()

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %s", created.Role)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_SubsequentUserIsViewer(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Mobile: "9876543211", Password: "digest", Name: "Lokesh"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Mobile, user.Password, user.Name, models.RoleViewer).
		WillReturnRows(userRows(models.User{UserID: 4, Mobile: user.Mobile, Password: user.Password, Name: user.Name, Role: models.RoleViewer}, time.Now()))
	mock.ExpectCommit()

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Role != models.RoleViewer {
		t.Errorf("expected role viewer, got %s", created.Role)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, models.User{Mobile: "9876543210"})
	if !errors.Is(err, ErrMobileAlreadyRegistered) {
		t.Fatalf("expected ErrMobileAlreadyRegistered, got %v", err)
	}
}

func TestCreateUser_SQLiteUniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("UNIQUE constraint failed: users.mobile"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, models.User{Mobile: "9876543210"})
	if !errors.Is(err, ErrMobileAlreadyRegistered) {
		t.Fatalf("expected ErrMobileAlreadyRegistered, got %v", err)
	}
}

func TestCreateUser_RetriesOnSerializationConflict(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Mobile: "9876543210", Password: "digest", Name: "Deepak"}

	// first attempt loses the serialization race at insert
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Mobile, user.Password, user.Name, models.RoleAdmin).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	// retry sees the winner's row and demotes to viewer
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Mobile, user.Password, user.Name, models.RoleViewer).
		WillReturnRows(userRows(models.User{UserID: 2, Mobile: user.Mobile, Password: user.Password, Name: user.Name, Role: models.RoleViewer}, time.Now()))
	mock.ExpectCommit()

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Role != models.RoleViewer {
		t.Errorf("expected role viewer after retry, got %s", created.Role)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_GivesUpAfterRepeatedConflicts(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Mobile: "9876543210", Password: "digest", Name: "Deepak"}

	for i := 0; i < createUserRetries; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Mobile, user.Password, user.Name, models.RoleAdmin).
			WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectRollback()
	}

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindUserByMobile_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	want := models.User{UserID: 1, Mobile: "9876543210", Password: "digest", Name: "Deepak", Role: models.RoleAdmin}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(want.Mobile).
		WillReturnRows(userRows(want, time.Now()))

	found, err := repo.FindUserByMobile(ctx, want.Mobile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != want.Name || found.Role != want.Role {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByMobile_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("9876543299").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByMobile(ctx, "9876543299")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateRole_Executes(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET role").
		WithArgs(models.RoleAdmin, "9876543211").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateRole(context.Background(), "9876543211", models.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpsertUser_Executes(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	u := models.User{Mobile: "9876543210", Password: "digest", Name: "Deepak", Role: models.RoleAdmin}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.Mobile, u.Password, u.Name, u.Role).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.UpsertUser(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListUsers_ReturnsAll(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "mobile", "password", "name", "role", "created_at"}).
		AddRow(1, "9876543210", "d1", "Deepak", "admin", now).
		AddRow(2, "9876543211", "d2", "Lokesh", "viewer", now)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Role != "admin" || users[1].Role != "viewer" {
		t.Errorf("unexpected roles: %+v", users)
	}
}
