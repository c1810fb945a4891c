// ABOUTME: Unit tests for credential verification
// ABOUTME: All credential failures must collapse into the same error

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/DavidJulianGit/MovieAPI/internal/store"
)

// seedAccount registers a user with a hashed password in the mock store.
func seedAccount(t *testing.T, s *store.MockStore, email, password string) *store.User {
	t.Helper()

	hasher := NewPasswordHasher(0)
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	user := &store.User{
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: hash,
	}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return user
}

func TestCredentialVerifier_Success(t *testing.T) {
	s := store.NewMockStore()
	seedAccount(t, s, "alice@example.com", "longpass1")

	verifier := NewCredentialVerifier(s, NewPasswordHasher(0), nil)

	user, err := verifier.Verify(context.Background(), "alice@example.com", "longpass1")
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", user.Email, "alice@example.com")
	}
}

func TestCredentialVerifier_UniformFailure(t *testing.T) {
	s := store.NewMockStore()
	seedAccount(t, s, "alice@example.com", "longpass1")

	verifier := NewCredentialVerifier(s, NewPasswordHasher(0), nil)

	// Wrong password, unknown email, and empty email must be
	// indistinguishable to the caller
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "alice@example.com", password: "wrongpass"},
		{name: "unknown email", email: "nobody@example.com", password: "longpass1"},
		{name: "empty email", email: "", password: "longpass1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := verifier.Verify(context.Background(), tt.email, tt.password)
			if user != nil {
				t.Error("Verify() returned a user on failure")
			}
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestCredentialVerifier_StoreFault(t *testing.T) {
	s := store.NewMockStore()
	s.GetUserByEmailErr = errors.New("database unreachable")

	verifier := NewCredentialVerifier(s, NewPasswordHasher(0), nil)

	_, err := verifier.Verify(context.Background(), "alice@example.com", "longpass1")
	if err == nil {
		t.Fatal("Verify() should have returned an error")
	}
	// A store fault is not a credential failure; callers surface it as a
	// server error instead of a login rejection
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("store fault was collapsed into ErrInvalidCredentials")
	}
}
