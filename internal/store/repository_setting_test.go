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

func newTestSettingRepo(t *testing.T) (*settingRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &settingRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetSetting_Success(t *testing.T) {
	repo, mock, db := newTestSettingRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM settings").
		WithArgs("currency").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("currency", "INR"))

	setting, err := repo.GetSetting(context.Background(), "currency")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setting.Value != "INR" {
		t.Fatalf("expected value INR, got %q", setting.Value)
	}
}

func TestGetSetting_NotFound(t *testing.T) {
	repo, mock, db := newTestSettingRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM settings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSetting(context.Background(), "missing")
	if !errors.Is(err, ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}

func TestPutSetting_Upserts(t *testing.T) {
	repo, mock, db := newTestSettingRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("currency", "INR").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.PutSetting(context.Background(), models.Setting{Key: "currency", Value: "INR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
