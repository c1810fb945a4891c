// ABOUTME: Credential verification for login: email lookup plus bcrypt check
// ABOUTME: Unknown email and wrong password collapse into one uniform failure

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DavidJulianGit/MovieAPI/internal/store"
)

// ErrInvalidCredentials is returned for every credential failure: unknown
// email, wrong password, or empty input. Callers must not surface anything
// more specific; which case occurred appears only in server logs.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserLookup is the slice of the store the verifier needs.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*store.User, error)
}

// CredentialVerifier checks a submitted email/password pair against stored
// credentials.
type CredentialVerifier struct {
	users  UserLookup
	hasher *PasswordHasher
	logger *slog.Logger
}

// NewCredentialVerifier creates a verifier over the given user lookup.
func NewCredentialVerifier(users UserLookup, hasher *PasswordHasher, logger *slog.Logger) *CredentialVerifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialVerifier{
		users:  users,
		hasher: hasher,
		logger: logger.With("component", "auth"),
	}
}

// Verify looks up the account by email and checks the password against the
// stored hash. On success it returns the account. Every credential failure
// returns ErrInvalidCredentials; a store fault is returned as-is so the
// caller can surface a server error instead.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (*store.User, error) {
	if email == "" {
		compareDummy(password)
		return nil, ErrInvalidCredentials
	}

	user, err := v.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a bcrypt comparison so unknown emails take as long
			// as wrong passwords
			compareDummy(password)
			v.logger.Warn("login failed: unknown email", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !v.hasher.Verify(password, user.PasswordHash) {
		v.logger.Warn("login failed: wrong password", "email", email)
		return nil, ErrInvalidCredentials
	}

	v.logger.Info("login succeeded", "email", email)
	return user, nil
}
