// Package api implements the myFlix HTTP surface.
//
// Routes are mounted in three tiers:
//
//   - Public: welcome/documentation pages, health, registration, login
//   - Protected: movie catalog lookups, behind the bearer-token middleware
//   - Owner-gated: account reads and mutations, additionally behind the
//     ownership check (the {email} path value must match the authenticated
//     account)
//
// Handlers translate auth and store outcomes into status codes: uniform
// credential failures become 400, every token failure becomes 401 before a
// handler runs, ownership mismatches become 403, missing resources 404,
// and store faults 500. The package contains no authorization logic of its
// own; that lives in internal/auth.
package api
