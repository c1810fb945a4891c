// ABOUTME: HTTP middleware for bearer-token authentication and ownership checks
// ABOUTME: Extracts the JWT, resolves the account, and gates mutating routes

package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DavidJulianGit/MovieAPI/internal/store"
)

// UserResolver is the slice of the store the middleware needs to turn a
// verified token back into an account.
type UserResolver interface {
	GetUserByID(ctx context.Context, id string) (*store.User, error)
}

// extractBearerToken extracts a bearer token from the Authorization header.
// Returns the token and an error message (empty if successful).
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// Middleware creates an HTTP middleware that extracts and validates bearer
// tokens and resolves the account they name. Every failure (missing or
// malformed header, bad signature, expired token, or an account that no
// longer exists) rejects the request as 401 before the handler runs; only
// the log detail differs. A store fault resolving the account is a 500.
func Middleware(users UserResolver, verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
			if errMsg != "" {
				logger.Warn("rejected request", "reason", errMsg, "path", r.URL.Path)
				writeUnauthorized(w, errMsg)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("rejected token", "error", err, "path", r.URL.Path)
				writeUnauthorized(w, "invalid token")
				return
			}

			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					// Signature-valid token for a deleted account
					logger.Warn("rejected token for missing account", "user_id", claims.UserID)
					writeUnauthorized(w, "invalid token")
					return
				}
				logger.Error("resolving account failed", "error", err)
				http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// Owns reports whether the authenticated account may act on the target
// identity. The check is exact, case-sensitive string equality of the two
// email identity keys. No roles, no overrides.
func Owns(principalEmail, targetEmail string) bool {
	return principalEmail == targetEmail
}

// RequireOwner creates an HTTP middleware that denies requests whose {email}
// path value differs from the authenticated account's email. Ownership is
// checked before anything looks at the target, so a mismatch is 403 even
// when the target account doesn't exist. Must be used after Middleware.
func RequireOwner() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := FromContext(r.Context())
			if user == nil {
				writeUnauthorized(w, "not authenticated")
				return
			}

			if !Owns(user.Email, r.PathValue("email")) {
				http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	http.Error(w, `{"error":"`+msg+`"}`, http.StatusUnauthorized)
}
