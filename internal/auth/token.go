// ABOUTME: JWT token issuance and verification for authenticating API requests
// ABOUTME: Uses HS256 signing with a configured secret and 7-day expiry

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// TokenTTL is how long issued tokens stay valid.
const TokenTTL = 7 * 24 * time.Hour

// TokenClaims is the identity carried by a verified token.
type TokenClaims struct {
	UserID string // internal account ID ("uid" claim)
	Email  string // identity key ("sub" claim)
}

// TokenIssuer mints signed tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// TokenVerifier validates presented tokens and extracts their claims.
type TokenVerifier interface {
	Verify(tokenString string) (*TokenClaims, error)
}

// TokenService implements TokenIssuer and TokenVerifier using HS256 JWTs
// signed with a single shared secret. The same secret must be used for
// issuance and verification; it is injected at construction and never
// changes at runtime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. An empty secret is a
// misconfiguration and refuses construction; callers treat this as fatal
// at startup so the service never runs with signing disabled.
func NewTokenService(secret []byte, ttl time.Duration) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is required")
	}
	if ttl == 0 {
		ttl = TokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}, nil
}

// Issue mints a signed token binding the account's email as subject and its
// internal ID as the "uid" claim, expiring TTL from now.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"uid": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify validates the token's signature and expiry and extracts its claims.
// Malformed structure, signature mismatch, and expiry each fail verification;
// expiry is distinguished as ErrExpiredToken, everything else wraps
// ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		// Check if it's specifically an expiration error
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, fmt.Errorf("%w: uid", ErrMissingClaim)
	}

	return &TokenClaims{UserID: uid, Email: sub}, nil
}
