package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bishtbros/ledger/internal/hash"
	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/models"
)

// legacyMigrator imports JSON exports left behind by the previous system:
// a users file and a records file dropped next to the binary. Each entry is
// reconciled independently with an upsert, so the import carries no ordering
// dependency and running it twice only re-derives identical rows.
type legacyMigrator struct {
	userRepository   store.UserRepository
	recordRepository store.RecordRepository
	hasher           hash.Hasher

	// usersFile and recordsFile are the paths probed at startup. Either may
	// be absent.
	usersFile   string
	recordsFile string

	logger *logger.Logger
}

// legacyUser is the shape of one entry in the exported users file. Passwords
// may be plain text or an already-computed digest.
type legacyUser struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// legacyRecord is the shape of one entry in the exported records file. The
// export calls the period "date" and carries amounts in whatever type the
// old client happened to send.
type legacyRecord struct {
	Name     string `json:"name"`
	Amount   any    `json:"amount"`
	Period   string `json:"date"`
	Status   string `json:"status"`
	PaidDate string `json:"paidDate"`
}

// NewLegacyMigrator constructs a LegacyMigrator probing the given file
// paths. Empty paths disable the corresponding import.
func NewLegacyMigrator(users store.UserRepository, records store.RecordRepository, hasher hash.Hasher, usersFile, recordsFile string, logger *logger.Logger) LegacyMigrator {
	return &legacyMigrator{
		userRepository:   users,
		recordRepository: records,
		hasher:           hasher,
		usersFile:        usersFile,
		recordsFile:      recordsFile,
		logger:           logger,
	}
}

// Run imports both files. A missing file is skipped silently; a present but
// unreadable or malformed file aborts with an error so a truncated export is
// never half-imported without notice.
func (m *legacyMigrator) Run(ctx context.Context) error {
	if err := m.migrateUsers(ctx); err != nil {
		return fmt.Errorf("legacy user migration: %w", err)
	}
	if err := m.migrateRecords(ctx); err != nil {
		return fmt.Errorf("legacy record migration: %w", err)
	}
	return nil
}

func (m *legacyMigrator) migrateUsers(ctx context.Context) error {
	users, err := readLegacyFile[legacyUser](m.usersFile)
	if err != nil {
		return err
	}
	if users == nil {
		return nil
	}

	for _, u := range users {
		if u.Mobile == "" {
			continue
		}

		// exports may hold digests already; only plain text gets hashed
		password := u.Password
		if !m.hasher.IsDigest(password) {
			password = m.hasher.Hash(password)
		}

		role := u.Role
		if !models.ValidRole(role) {
			role = models.RoleViewer
		}

		if err := m.userRepository.UpsertUser(ctx, models.User{
			Mobile:   u.Mobile,
			Password: password,
			Name:     u.Name,
			Role:     role,
		}); err != nil {
			return fmt.Errorf("upserting user %s: %w", u.Mobile, err)
		}
	}

	m.logger.Info().Int("count", len(users)).Msg("legacy users migrated")
	return nil
}

func (m *legacyMigrator) migrateRecords(ctx context.Context) error {
	records, err := readLegacyFile[legacyRecord](m.recordsFile)
	if err != nil {
		return err
	}
	if records == nil {
		return nil
	}

	for _, r := range records {
		if r.Name == "" || r.Period == "" {
			continue
		}

		status := r.Status
		if status != models.StatusDone {
			status = models.StatusPending
		}

		if _, err := m.recordRepository.UpsertRecord(ctx, models.Record{
			Name:     r.Name,
			Period:   r.Period,
			Amount:   coerceAmount(r.Amount),
			Status:   status,
			PaidDate: r.PaidDate,
		}); err != nil {
			return fmt.Errorf("upserting record %s/%s: %w", r.Name, r.Period, err)
		}
	}

	m.logger.Info().Int("count", len(records)).Msg("legacy records migrated")
	return nil
}

// readLegacyFile loads and decodes one export file. A missing file or an
// empty path yields (nil, nil).
func readLegacyFile[T any](path string) ([]T, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return entries, nil
}
