// Package auth provides authentication and authorization for the myFlix API.
//
// # Login Flow
//
// Credentials are checked by CredentialVerifier:
//
//	user, err := verifier.Verify(ctx, email, password)
//
// Unknown email, wrong password, and empty input all return
// ErrInvalidCredentials; callers get no signal about which case occurred.
// On success, TokenService mints a signed JWT:
//
//	token, err := tokens.Issue(user.ID, user.Email)
//
// Tokens are HS256-signed with the configured jwt_secret and expire after
// seven days. Claims: "sub" (email), "uid" (internal account ID), "iat",
// "exp". There is no server-side revocation; a fresh login mints a fresh
// token independent of outstanding ones.
//
// # Protected Requests
//
// Middleware extracts the bearer token from the Authorization header,
// verifies it, resolves the account by its "uid" claim, and attaches it to
// the request context. Malformed tokens, bad signatures, expired tokens,
// and tokens for deleted accounts are all rejected 401 before any handler
// runs.
//
// # Ownership
//
// RequireOwner gates mutating account routes: the authenticated account's
// email must exactly equal the {email} path value (case-sensitive). A
// mismatch is 403 regardless of whether the target exists. This is the only
// authorization policy; there are no roles and no admin override.
//
// # Passwords
//
// PasswordHasher wraps bcrypt at a fixed work factor of 10. Hashing is
// synchronous and CPU-bound; it runs on the request goroutine, which the Go
// runtime schedules preemptively.
package auth
