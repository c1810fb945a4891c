// ABOUTME: Store interfaces and data types for myFlix persistence
// ABOUTME: Defines User, Movie structs and the per-concern store interfaces

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when trying to register an email that is already taken
var ErrEmailExists = errors.New("email already registered")

// ErrDuplicateTitle is returned when trying to create a movie whose title already exists
var ErrDuplicateTitle = errors.New("movie title already exists")

// User represents a registered account. Email is the identity key used in
// request paths and token subjects; ID is the stable internal identifier
// embedded in token payloads.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt hash, never plaintext
	Birthday     *time.Time
	Favorites    []string // movie IDs, duplicates suppressed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate holds the updatable user fields. Nil pointers leave the stored
// value unchanged. The email identity key is immutable.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	PasswordHash *string
	Birthday     *time.Time
}

// Genre is a movie genre with its description
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Director holds biographical data for a movie director
type Director struct {
	Name  string     `json:"name"`
	Bio   string     `json:"bio"`
	Birth *time.Time `json:"birth,omitempty"`
	Death *time.Time `json:"death,omitempty"`
}

// Movie represents a catalog entry
type Movie struct {
	ID          string
	Title       string
	Description string
	Genre       Genre
	Director    Director
	Actors      []string
	PosterURL   string
	Year        int
	Featured    bool
	CreatedAt   time.Time
}

// UserStore defines the interface for account persistence
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, email string, upd UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, email string) error
	AddFavorite(ctx context.Context, email, movieID string) (*User, error)
	RemoveFavorite(ctx context.Context, email, movieID string) (*User, error)
}

// MovieStore defines the interface for catalog persistence
type MovieStore interface {
	CreateMovie(ctx context.Context, movie *Movie) error
	ListMovies(ctx context.Context) ([]*Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*Movie, error)
	GetMovieByID(ctx context.Context, id string) (*Movie, error)
	GetGenre(ctx context.Context, name string) (*Genre, error)
	GetDirector(ctx context.Context, name string) (*Director, error)
	CountMovies(ctx context.Context) (int, error)
}

// Store combines all persistence interfaces implemented by SQLiteStore
type Store interface {
	UserStore
	MovieStore
	Close() error
}
