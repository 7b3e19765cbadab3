package store

import (
	"context"
	"strings"

	"github.com/bishtbros/ledger/internal/config"
	"github.com/bishtbros/ledger/internal/logger"
)

// Storages aggregates every repository over one shared database connection.
// DB is exposed for connectivity checks (the ping endpoint) and shutdown.
type Storages struct {
	DB *DB

	UserRepository    UserRepository
	RecordRepository  RecordRepository
	ExpenseRepository ExpenseRepository
	MemberRepository  MemberRepository
	SettingRepository SettingRepository
}

// NewStorages connects to the backend selected by the DSN (postgres:// picks
// PostgreSQL, anything else is a SQLite file path), runs migrations, and
// wires every repository over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if strings.HasPrefix(cfg.DB.DSN, "postgres://") || strings.HasPrefix(cfg.DB.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		RecordRepository:  NewRecordRepository(db, log),
		ExpenseRepository: NewExpenseRepository(db, log),
		MemberRepository:  NewMemberRepository(db, log),
		SettingRepository: NewSettingRepository(db, log),
	}, nil
}
