package http

import (
	"context"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/service"
	"github.com/bishtbros/ledger/internal/session"
)

// Pinger is the slice of the database handle the health endpoint needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	sessions session.Store
	db       Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions session.Store, db Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		db:       db,
		logger:   logger,
	}
}
