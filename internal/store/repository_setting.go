package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/models"
)

// settingRepository is the SQL-backed implementation of [SettingRepository].
type settingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingRepository constructs a [SettingRepository] backed by the
// provided database connection and logger.
func NewSettingRepository(db *DB, logger *logger.Logger) SettingRepository {
	logger.Debug().Msg("creating setting repository")
	return &settingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingRepository) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	log := logger.FromContext(ctx)

	var s models.Setting
	row := r.db.QueryRowContext(ctx, getSetting, key)
	if err := row.Scan(&s.Key, &s.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Setting{}, ErrSettingNotFound
		}
		log.Err(err).Str("func", "*settingRepository.GetSetting").Msg("error: scanning error")
		return models.Setting{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return s, nil
}

func (r *settingRepository) PutSetting(ctx context.Context, setting models.Setting) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, putSetting, setting.Key, setting.Value); err != nil {
		log.Err(err).Str("func", "*settingRepository.PutSetting").Msg("error: upserting setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
