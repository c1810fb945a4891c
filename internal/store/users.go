// ABOUTME: User account store methods for registration, lookup, update, deletion
// ABOUTME: Favorites live in a join table keyed by (user_id, movie_id)

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ensure SQLiteStore implements UserStore.
var _ UserStore = (*SQLiteStore)(nil)

// CreateUser creates a new user. A missing ID is assigned a fresh UUID.
// The caller is responsible for hashing the password before the record
// reaches the store; PasswordHash must never hold plaintext.
// Returns ErrEmailExists if the email is already registered.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, first_name, last_name, password_hash, birthday, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		nullTime(user.Birthday),
		formatTime(user.CreatedAt),
		formatTime(user.UpdatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	s.logger.Info("created user", "id", user.ID, "email", user.Email)
	return nil
}

// GetUserByEmail retrieves a user by email, including favorites.
// Returns ErrNotFound if no account exists for the email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.getUser(ctx, "email = ?", email)
}

// GetUserByID retrieves a user by internal ID, including favorites.
// Returns ErrNotFound if the account no longer exists.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	return s.getUser(ctx, "id = ?", id)
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, arg any) (*User, error) {
	query := `
		SELECT id, email, first_name, last_name, password_hash, birthday, created_at, updated_at
		FROM users
		WHERE ` + where

	var user User
	var birthday sql.NullString
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&birthday,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	user.Birthday = scanNullTime(birthday)
	user.CreatedAt = parseTime(createdAt)
	user.UpdatedAt = parseTime(updatedAt)

	favorites, err := s.listFavorites(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Favorites = favorites

	return &user, nil
}

// listFavorites returns the movie IDs favorited by a user, oldest first
func (s *SQLiteStore) listFavorites(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT movie_id FROM favorites WHERE user_id = ? ORDER BY created_at, movie_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	favorites := []string{}
	for rows.Next() {
		var movieID string
		if err := rows.Scan(&movieID); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		favorites = append(favorites, movieID)
	}
	return favorites, rows.Err()
}

// UpdateUser applies the non-nil fields of upd to the account identified by
// email and returns the updated record. PasswordHash, when set, must already
// be hashed by the caller. Returns ErrNotFound if the account doesn't exist.
func (s *SQLiteStore) UpdateUser(ctx context.Context, email string, upd UserUpdate) (*User, error) {
	sets := []string{"updated_at = ?"}
	args := []any{formatTime(time.Now())}

	if upd.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *upd.FirstName)
	}
	if upd.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *upd.LastName)
	}
	if upd.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *upd.PasswordHash)
	}
	if upd.Birthday != nil {
		sets = append(sets, "birthday = ?")
		args = append(args, formatTime(*upd.Birthday))
	}

	query := "UPDATE users SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += " WHERE email = ?"
	args = append(args, email)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	s.logger.Info("updated user", "email", email)
	return s.GetUserByEmail(ctx, email)
}

// DeleteUser removes the account and its favorites rows (cascade).
// Returns ErrNotFound if the account doesn't exist.
func (s *SQLiteStore) DeleteUser(ctx context.Context, email string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.logger.Info("deleted user", "email", email)
	return nil
}

// AddFavorite adds a movie to the user's favorites and returns the updated
// user. Adding an already-favorited movie is a no-op. The movie is not
// required to exist in the catalog.
func (s *SQLiteStore) AddFavorite(ctx context.Context, email, movieID string) (*User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (user_id, movie_id, created_at) VALUES (?, ?, ?)`,
		user.ID, movieID, formatTime(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("inserting favorite: %w", err)
	}

	s.logger.Debug("added favorite", "email", email, "movie_id", movieID)
	return s.GetUserByEmail(ctx, email)
}

// RemoveFavorite removes a movie from the user's favorites and returns the
// updated user. Removing a movie that isn't favorited is a no-op.
func (s *SQLiteStore) RemoveFavorite(ctx context.Context, email, movieID string) (*User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND movie_id = ?`, user.ID, movieID)
	if err != nil {
		return nil, fmt.Errorf("deleting favorite: %w", err)
	}

	s.logger.Debug("removed favorite", "email", email, "movie_id", movieID)
	return s.GetUserByEmail(ctx, email)
}
