package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bishtbros/ledger/internal/hash"
	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/models"
)

// authService is the concrete implementation of AuthService. It handles
// account registration, credential verification, and role administration
// using a UserRepository for persistence and a hash.Hasher for credential
// digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// hasher turns plain-text passwords into stored digests and verifies
	// presented passwords against them.
	hasher hash.Hasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and credential hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher hash.Hasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that all fields are present, the mobile is exactly ten
// digits, and the password is at least six characters, hashes the password,
// and delegates persistence to the UserRepository. The repository decides
// the role atomically with the insert: the first account ever stored becomes
// admin, every later one viewer.
//
// Returns the assigned role or:
//   - ErrInvalidDataProvided if any field is blank.
//   - ErrInvalidMobile if the mobile is not exactly ten digits.
//   - ErrPasswordTooShort if the password is under six characters.
//   - A wrapped storage error if the repository call fails (e.g.
//     store.ErrMobileAlreadyRegistered when the mobile is taken).
func (a *authService) Register(ctx context.Context, mobile, password, name string) (string, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if mobile == "" || password == "" || name == "" {
		log.Error().Str("mobile", mobile).Msg("signup with missing fields")
		return "", ErrInvalidDataProvided
	}
	if !isMobile(mobile) {
		return "", ErrInvalidMobile
	}
	if len(password) < 6 {
		return "", ErrPasswordTooShort
	}

	registered, err := a.userRepository.CreateUser(ctx, models.User{
		Mobile:   mobile,
		Password: a.hasher.Hash(password),
		Name:     name,
	})
	if err != nil {
		log.Err(err).Str("mobile", mobile).Msg("user creation ended with error")
		return "", fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("name", registered.Name).Str("role", registered.Role).Msg("user registered")
	return registered.Role, nil
}

// Authenticate verifies credentials for an existing account.
//
// It looks the account up by mobile and compares the presented password
// against the stored digest. A missing account and a wrong password are
// indistinguishable to the caller.
//
// Returns the stored account or ErrInvalidCredentials on any failure except
// unexpected storage errors, which are wrapped.
func (a *authService) Authenticate(ctx context.Context, mobile, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if mobile == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("mobile", mobile).Msg("user search by mobile failed")
		return models.User{}, fmt.Errorf("user search by mobile failed: %w", err)
	}

	if !a.hasher.Matches(password, foundUser.Password) {
		log.Warn().Str("mobile", mobile).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// ChangeRole overwrites the role of the account identified by targetMobile.
//
// Returns:
//   - ErrAdminOnly unless the acting session carries the admin role.
//   - ErrInvalidRole unless newRole is "admin" or "viewer".
//   - A wrapped storage error if the update fails.
//
// Sessions issued before the change keep the role captured at login; the
// new role takes effect at the target's next login.
func (a *authService) ChangeRole(ctx context.Context, acting models.Session, targetMobile, newRole string) error {
	log := logger.FromContext(ctx)

	if acting.Role != models.RoleAdmin {
		return ErrAdminOnly
	}
	if !models.ValidRole(newRole) {
		return ErrInvalidRole
	}

	if err := a.userRepository.UpdateRole(ctx, targetMobile, newRole); err != nil {
		log.Err(err).Str("target", targetMobile).Msg("role update failed")
		return fmt.Errorf("role update failed: %w", err)
	}

	log.Info().Str("target", targetMobile).Str("role", newRole).Msg("role changed")
	return nil
}

// ListUsers returns the public projection (name, mobile, role) of every
// account. Credentials never leave the service layer.
func (a *authService) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	infos := make([]models.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, models.UserInfo{Name: u.Name, Mobile: u.Mobile, Role: u.Role})
	}

	return infos, nil
}

// isMobile reports whether s is exactly ten ASCII digits.
func isMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
