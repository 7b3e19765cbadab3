package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/models"
)

func newTestMemberRepo(t *testing.T) (*memberRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &memberRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestListMembers_EmptyRegistry(t *testing.T) {
	repo, mock, db := newTestMemberRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM members").
		WillReturnRows(sqlmock.NewRows([]string{"code", "name", "phone"}))

	members, err := repo.ListMembers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if members == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(members) != 0 {
		t.Fatalf("expected no members, got %d", len(members))
	}
}

func TestReplaceMembers_CommitsDeleteAndInsert(t *testing.T) {
	repo, mock, db := newTestMemberRepo(t)
	defer db.Close()

	members := []models.Member{
		{Code: "BB-01", Name: "Deepak Singh Bisht", Phone: "9876543210"},
		{Code: "BB-02", Name: "Lokesh Singh Bisht", Phone: "9876543211"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM members").
		WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectExec("INSERT INTO members").
		WithArgs("BB-01", "Deepak Singh Bisht", "9876543210", "BB-02", "Lokesh Singh Bisht", "9876543211").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := repo.ReplaceMembers(context.Background(), members); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceMembers_EmptyListSkipsInsert(t *testing.T) {
	repo, mock, db := newTestMemberRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM members").
		WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectCommit()

	if err := repo.ReplaceMembers(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceMembers_RollsBackOnInsertFailure(t *testing.T) {
	repo, mock, db := newTestMemberRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM members").
		WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectExec("INSERT INTO members").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.ReplaceMembers(context.Background(), []models.Member{
		{Code: "BB-01", Name: "Deepak Singh Bisht", Phone: "9876543210"},
	})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
