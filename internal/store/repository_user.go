package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// createUserRetries bounds how many serialization conflicts a single signup
// absorbs before giving up.
const createUserRetries = 3

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, Role, CreatedAt).
//
// The role decision and the insert happen inside one SERIALIZABLE
// transaction. Under read committed two concurrent first signups with
// distinct mobiles could both count zero rows and both commit as admin; at
// the serializable level PostgreSQL aborts one of them with a serialization
// conflict instead, and that attempt is retried from the count. SQLite
// serializes writers on its own.
//
// Error handling:
//   - unique violation on mobile → [ErrMobileAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= createUserRetries; attempt++ {
		created, err := r.createUserTx(ctx, user)
		if err == nil {
			return created, nil
		}
		if !isSerializationFailure(err) {
			return models.User{}, err
		}

		log.Warn().Str("func", "*userRepository.CreateUser").Int("attempt", attempt).
			Msg("serialization conflict on signup, retrying")
		lastErr = err
	}

	return models.User{}, lastErr
}

// createUserTx runs one count-then-insert attempt in its own transaction.
func (r *userRepository) createUserTx(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var count int64
	if err := tx.QueryRowContext(ctx, countUsers).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: counting users")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// first account ever stored becomes admin
	user.Role = models.RoleViewer
	if count == 0 {
		user.Role = models.RoleAdmin
	}

	row := tx.QueryRowContext(ctx, createUser, user.Mobile, user.Password, user.Name, user.Role)
	if err := row.Scan(&user.UserID, &user.Mobile, &user.Password, &user.Name, &user.Role, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		if isUniqueViolation(err) {
			return models.User{}, ErrMobileAlreadyRegistered
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// FindUserByMobile retrieves the account for mobile.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByMobile(ctx context.Context, mobile string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByMobile, mobile)

	if err := row.Scan(&foundUser.UserID, &foundUser.Mobile, &foundUser.Password, &foundUser.Name, &foundUser.Role, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByMobile").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpsertUser inserts or fully replaces the account keyed by mobile. Used by
// the legacy migration, where running twice must not create duplicates.
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertUser, user.Mobile, user.Password, user.Name, user.Role); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: upserting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateRole overwrites the role of the account identified by mobile.
// Updating an absent mobile affects zero rows and is not an error, matching
// the permissive behaviour of the original system.
func (r *userRepository) UpdateRole(ctx context.Context, mobile, role string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateUserRole, role, mobile); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateRole").Msg("error: updating role")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListUsers returns every account ordered by creation.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Mobile, &u.Password, &u.Name, &u.Role, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
