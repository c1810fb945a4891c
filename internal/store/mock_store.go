// ABOUTME: Mock Store implementation for testing
// ABOUTME: Allows tests to run without SQLite

package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	mu           sync.RWMutex
	users        map[string]*User   // keyed by user ID
	emailIndex   map[string]string  // keyed by email -> user ID
	movies       map[string]*Movie  // keyed by movie ID
	titleIndex   map[string]string  // keyed by lowercase title -> movie ID

	// Error overrides for fault injection. When set, the corresponding
	// method returns the error instead of touching the maps.
	GetUserByEmailErr error
	GetUserByIDErr    error
}

// Ensure MockStore implements Store.
var _ Store = (*MockStore)(nil)

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		users:      make(map[string]*User),
		emailIndex: make(map[string]string),
		movies:     make(map[string]*Movie),
		titleIndex: make(map[string]string),
	}
}

// CreateUser stores a new user.
func (m *MockStore) CreateUser(ctx context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.emailIndex[user.Email]; exists {
		return ErrEmailExists
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	// Make a copy to avoid external modification
	u := *user
	u.Favorites = append([]string{}, user.Favorites...)
	m.users[u.ID] = &u
	m.emailIndex[u.Email] = u.ID
	return nil
}

// GetUserByEmail retrieves a user by email.
func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetUserByEmailErr != nil {
		return nil, m.GetUserByEmailErr
	}

	id, ok := m.emailIndex[email]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(m.users[id]), nil
}

// GetUserByID retrieves a user by internal ID.
func (m *MockStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetUserByIDErr != nil {
		return nil, m.GetUserByIDErr
	}

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(u), nil
}

// UpdateUser applies non-nil fields to the stored user.
func (m *MockStore) UpdateUser(ctx context.Context, email string, upd UserUpdate) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.emailIndex[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.users[id]
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Birthday != nil {
		b := *upd.Birthday
		u.Birthday = &b
	}
	u.UpdatedAt = time.Now().UTC()
	return copyUser(u), nil
}

// DeleteUser removes a user.
func (m *MockStore) DeleteUser(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.emailIndex[email]
	if !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	delete(m.emailIndex, email)
	return nil
}

// AddFavorite adds a movie ID to the user's favorites, suppressing duplicates.
func (m *MockStore) AddFavorite(ctx context.Context, email, movieID string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.emailIndex[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.users[id]
	for _, fav := range u.Favorites {
		if fav == movieID {
			return copyUser(u), nil
		}
	}
	u.Favorites = append(u.Favorites, movieID)
	return copyUser(u), nil
}

// RemoveFavorite removes a movie ID from the user's favorites.
func (m *MockStore) RemoveFavorite(ctx context.Context, email, movieID string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.emailIndex[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.users[id]
	kept := u.Favorites[:0]
	for _, fav := range u.Favorites {
		if fav != movieID {
			kept = append(kept, fav)
		}
	}
	u.Favorites = kept
	return copyUser(u), nil
}

// CreateMovie stores a new movie.
func (m *MockStore) CreateMovie(ctx context.Context, movie *Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(movie.Title)
	if _, exists := m.titleIndex[key]; exists {
		return ErrDuplicateTitle
	}
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if movie.CreatedAt.IsZero() {
		movie.CreatedAt = time.Now().UTC()
	}
	mv := *movie
	m.movies[mv.ID] = &mv
	m.titleIndex[key] = mv.ID
	return nil
}

// ListMovies returns all movies.
func (m *MockStore) ListMovies(ctx context.Context) ([]*Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	movies := make([]*Movie, 0, len(m.movies))
	for _, mv := range m.movies {
		result := *mv
		movies = append(movies, &result)
	}
	return movies, nil
}

// GetMovieByTitle retrieves a movie by title, case-insensitively.
func (m *MockStore) GetMovieByTitle(ctx context.Context, title string) (*Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.titleIndex[strings.ToLower(title)]
	if !ok {
		return nil, ErrNotFound
	}
	result := *m.movies[id]
	return &result, nil
}

// GetMovieByID retrieves a movie by ID.
func (m *MockStore) GetMovieByID(ctx context.Context, id string) (*Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mv, ok := m.movies[id]
	if !ok {
		return nil, ErrNotFound
	}
	result := *mv
	return &result, nil
}

// GetGenre retrieves a genre by name from any movie carrying it.
func (m *MockStore) GetGenre(ctx context.Context, name string) (*Genre, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, mv := range m.movies {
		if strings.EqualFold(mv.Genre.Name, name) {
			g := mv.Genre
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

// GetDirector retrieves a director by name from any movie they directed.
func (m *MockStore) GetDirector(ctx context.Context, name string) (*Director, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, mv := range m.movies {
		if strings.EqualFold(mv.Director.Name, name) {
			d := mv.Director
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

// CountMovies returns the number of stored movies.
func (m *MockStore) CountMovies(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.movies), nil
}

// Close is a no-op for the mock.
func (m *MockStore) Close() error {
	return nil
}

// copyUser returns a deep copy so callers can't mutate stored state.
func copyUser(u *User) *User {
	result := *u
	result.Favorites = append([]string{}, u.Favorites...)
	if u.Birthday != nil {
		b := *u.Birthday
		result.Birthday = &b
	}
	return &result
}
