package service

import (
	"github.com/bishtbros/ledger/internal/config"
	"github.com/bishtbros/ledger/internal/hash"
	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/internal/utils"
)

type Services struct {
	AuthService    AuthService
	LedgerService  LedgerService
	MemberService  MemberService
	LegacyMigrator LegacyMigrator
}

func NewServices(storages *store.Storages, hasher hash.Hasher, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, hasher, logger),
		LedgerService: NewLedgerService(storages.RecordRepository, storages.ExpenseRepository, utils.NewUUIDGenerator(), logger),
		MemberService: NewMemberService(storages.MemberRepository, logger),
		LegacyMigrator: NewLegacyMigrator(storages.UserRepository, storages.RecordRepository, hasher,
			cfg.LegacyUsersFile, cfg.LegacyRecordsFile, logger),
	}
}
