// ABOUTME: Password hashing and verification using bcrypt
// ABOUTME: Fixed work factor of 10, mismatch and malformed hashes both verify false

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for all stored credentials.
// Raising it slows both legitimate logins and brute-force guessing.
const HashCost = 10

// dummyHash is a bcrypt hash of an unguessable throwaway value. It is
// compared against when no stored hash exists so that lookups for unknown
// accounts take as long as failed password checks.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given bcrypt cost.
// A cost of 0 selects HashCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = HashCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted bcrypt hash of the plaintext. The hash embeds its
// own salt and cost, so no separate salt storage is needed.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// hash string verifies false rather than erroring; the comparison itself
// is constant-time inside bcrypt.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// compareDummy burns the same CPU as a real verification. Called on code
// paths that would otherwise return early and leak, through timing, whether
// an account exists.
func compareDummy(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
