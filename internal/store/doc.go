// Package store provides persistent storage for the myFlix API using SQLite.
//
// # Architecture
//
// The store package uses an interface-driven architecture with per-concern
// interfaces:
//
//   - UserStore: Account registration, lookup, update, deletion, favorites
//   - MovieStore: Movie catalog, genre and director lookups, seed import
//
// SQLiteStore implements all interfaces in a single struct, allowing easy
// composition while maintaining clear interface boundaries. The combined
// Store interface is what the HTTP layer depends on.
//
// # Data Models
//
//   - User: Registered account. Email is the identity key; ID is the stable
//     internal identifier embedded in token payloads. PasswordHash always
//     holds a bcrypt hash, never plaintext.
//   - Movie: Catalog entry with embedded Genre and Director data.
//
// Favorites are stored in a join table keyed by (user_id, movie_id) with the
// user side cascading on account deletion. The movie side carries no foreign
// key: favorites referencing a deleted movie are left dangling, preserving
// the existing data model.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: Requested entity does not exist
//   - ErrEmailExists: Email already registered
//   - ErrDuplicateTitle: Movie title already in the catalog
//
// All methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewMockStore() for unit tests:
//
//	s := store.NewMockStore()
//	// s implements the full Store interface
//
// Use NewSQLiteStore(":memory:") for integration tests with real SQLite.
package store
