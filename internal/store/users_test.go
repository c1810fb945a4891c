// ABOUTME: Tests for the user account store methods
// ABOUTME: Covers CRUD, the unique email key, and the favorites join table

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func testUser(email string) *User {
	return &User{
		Email:        email,
		FirstName:    "Alice",
		LastName:     "Adams",
		PasswordHash: "$2a$04$notarealhashbutitdoesnotmatterhere",
	}
}

func TestStore_CreateUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	birthday := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	user := testUser("alice@example.com")
	user.Birthday = &birthday

	err := store.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID, "CreateUser should assign a UUID")

	retrieved, err := store.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, "Alice", retrieved.FirstName)
	assert.Equal(t, "Adams", retrieved.LastName)
	require.NotNil(t, retrieved.Birthday)
	assert.True(t, retrieved.Birthday.Equal(birthday))
	assert.Empty(t, retrieved.Favorites)
	assert.NotNil(t, retrieved.Favorites, "favorites should be an empty slice, not nil")
}

func TestStore_CreateUser_DuplicateEmail(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testUser("alice@example.com")))

	err := store.CreateUser(ctx, testUser("alice@example.com"))
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestStore_GetUserByID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	user := testUser("alice@example.com")
	require.NoError(t, store.CreateUser(ctx, user))

	retrieved, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", retrieved.Email)

	_, err = store.GetUserByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetUser_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	user := testUser("alice@example.com")
	require.NoError(t, store.CreateUser(ctx, user))

	newFirst := "Alicia"
	newHash := "$2a$04$adifferenthashvalueentirelyhere"
	birthday := time.Date(1991, 2, 3, 0, 0, 0, 0, time.UTC)

	updated, err := store.UpdateUser(ctx, "alice@example.com", UserUpdate{
		FirstName:    &newFirst,
		PasswordHash: &newHash,
		Birthday:     &birthday,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Adams", updated.LastName, "unset fields should be untouched")
	assert.Equal(t, newHash, updated.PasswordHash)
	require.NotNil(t, updated.Birthday)
	assert.True(t, updated.Birthday.Equal(birthday))
	assert.Equal(t, "alice@example.com", updated.Email, "email is the identity key and never changes")
}

func TestStore_UpdateUser_NotFound(t *testing.T) {
	store := setupTestStore(t)

	newFirst := "Nobody"
	_, err := store.UpdateUser(context.Background(), "nobody@example.com", UserUpdate{FirstName: &newFirst})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeleteUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	user := testUser("alice@example.com")
	require.NoError(t, store.CreateUser(ctx, user))

	require.NoError(t, store.DeleteUser(ctx, "alice@example.com"))

	_, err := store.GetUserByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteUser(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_AddFavorite(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testUser("alice@example.com")))

	updated, err := store.AddFavorite(ctx, "alice@example.com", "movie-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie-1"}, updated.Favorites)

	updated, err = store.AddFavorite(ctx, "alice@example.com", "movie-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie-1", "movie-2"}, updated.Favorites)
}

func TestStore_AddFavorite_Duplicate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testUser("alice@example.com")))

	_, err := store.AddFavorite(ctx, "alice@example.com", "movie-1")
	require.NoError(t, err)

	// Adding the same movie again is a no-op, not an error
	updated, err := store.AddFavorite(ctx, "alice@example.com", "movie-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie-1"}, updated.Favorites)
}

func TestStore_AddFavorite_DanglingMovie(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testUser("alice@example.com")))

	// Favorites reference movie IDs without a foreign key, so an ID that was
	// never in the catalog still sticks
	updated, err := store.AddFavorite(ctx, "alice@example.com", "never-existed")
	require.NoError(t, err)
	assert.Equal(t, []string{"never-existed"}, updated.Favorites)
}

func TestStore_AddFavorite_UserNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.AddFavorite(context.Background(), "nobody@example.com", "movie-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_RemoveFavorite(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testUser("alice@example.com")))
	_, err := store.AddFavorite(ctx, "alice@example.com", "movie-1")
	require.NoError(t, err)
	_, err = store.AddFavorite(ctx, "alice@example.com", "movie-2")
	require.NoError(t, err)

	updated, err := store.RemoveFavorite(ctx, "alice@example.com", "movie-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie-2"}, updated.Favorites)

	// Removing an absent movie is a no-op
	updated, err = store.RemoveFavorite(ctx, "alice@example.com", "movie-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie-2"}, updated.Favorites)
}

func TestStore_DeleteUser_RemovesFavorites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testUser("alice@example.com")))
	_, err := store.AddFavorite(ctx, "alice@example.com", "movie-1")
	require.NoError(t, err)

	require.NoError(t, store.DeleteUser(ctx, "alice@example.com"))

	// Re-registering the same email starts with a clean favorites list
	require.NoError(t, store.CreateUser(ctx, testUser("alice@example.com")))
	retrieved, err := store.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, retrieved.Favorites)
}
