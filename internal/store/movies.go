// ABOUTME: Movie catalog store methods and embedded seed data import
// ABOUTME: Title, genre, and director lookups are case-insensitive

package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ensure SQLiteStore implements MovieStore.
var _ MovieStore = (*SQLiteStore)(nil)

//go:embed seed/movies.json
var seedMovies []byte

// CreateMovie creates a new catalog entry. A missing ID is assigned a fresh
// UUID. Returns ErrDuplicateTitle if the title is already present.
func (s *SQLiteStore) CreateMovie(ctx context.Context, movie *Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if movie.CreatedAt.IsZero() {
		movie.CreatedAt = time.Now().UTC()
	}

	actorsJSON, err := json.Marshal(movie.Actors)
	if err != nil {
		return fmt.Errorf("marshaling actors: %w", err)
	}

	query := `
		INSERT INTO movies (
			id, title, description,
			genre_name, genre_description,
			director_name, director_bio, director_birth, director_death,
			actors_json, poster_url, year, featured, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Genre.Name,
		movie.Genre.Description,
		movie.Director.Name,
		movie.Director.Bio,
		nullTime(movie.Director.Birth),
		nullTime(movie.Director.Death),
		string(actorsJSON),
		movie.PosterURL,
		movie.Year,
		movie.Featured,
		formatTime(movie.CreatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("inserting movie: %w", err)
	}

	s.logger.Debug("created movie", "id", movie.ID, "title", movie.Title)
	return nil
}

const movieColumns = `
	id, title, description,
	genre_name, genre_description,
	director_name, director_bio, director_birth, director_death,
	actors_json, poster_url, year, featured, created_at
`

// scanMovie scans a movie row in movieColumns order
func scanMovie(row interface{ Scan(...any) error }) (*Movie, error) {
	var movie Movie
	var directorBirth, directorDeath, actorsJSON sql.NullString
	var createdAt string

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&directorBirth,
		&directorDeath,
		&actorsJSON,
		&movie.PosterURL,
		&movie.Year,
		&movie.Featured,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	movie.Director.Birth = scanNullTime(directorBirth)
	movie.Director.Death = scanNullTime(directorDeath)
	movie.CreatedAt = parseTime(createdAt)

	if actorsJSON.Valid && actorsJSON.String != "" {
		if err := json.Unmarshal([]byte(actorsJSON.String), &movie.Actors); err != nil {
			return nil, fmt.Errorf("unmarshaling actors: %w", err)
		}
	}

	return &movie, nil
}

// ListMovies returns the full catalog ordered by title
func (s *SQLiteStore) ListMovies(ctx context.Context) ([]*Movie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("querying movies: %w", err)
	}
	defer rows.Close()

	movies := []*Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning movie: %w", err)
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

// GetMovieByTitle retrieves a movie by title (case-insensitive).
// Returns ErrNotFound if no such movie exists.
func (s *SQLiteStore) GetMovieByTitle(ctx context.Context, title string) (*Movie, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE title = ?`, title)

	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying movie by title: %w", err)
	}
	return movie, nil
}

// GetMovieByID retrieves a movie by internal ID.
// Returns ErrNotFound if no such movie exists.
func (s *SQLiteStore) GetMovieByID(ctx context.Context, id string) (*Movie, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)

	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying movie by id: %w", err)
	}
	return movie, nil
}

// GetGenre retrieves a genre by name (case-insensitive) from any movie
// carrying it. Returns ErrNotFound if no movie has the genre.
func (s *SQLiteStore) GetGenre(ctx context.Context, name string) (*Genre, error) {
	var genre Genre
	err := s.db.QueryRowContext(ctx,
		`SELECT genre_name, genre_description FROM movies WHERE genre_name = ? LIMIT 1`, name).
		Scan(&genre.Name, &genre.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying genre: %w", err)
	}
	return &genre, nil
}

// GetDirector retrieves a director by name (case-insensitive) from any movie
// they directed. Returns ErrNotFound if no movie has the director.
func (s *SQLiteStore) GetDirector(ctx context.Context, name string) (*Director, error) {
	var director Director
	var birth, death sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT director_name, director_bio, director_birth, director_death
		 FROM movies WHERE director_name = ? LIMIT 1`, name).
		Scan(&director.Name, &director.Bio, &birth, &death)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying director: %w", err)
	}
	director.Birth = scanNullTime(birth)
	director.Death = scanNullTime(death)
	return &director, nil
}

// CountMovies returns the number of catalog entries
func (s *SQLiteStore) CountMovies(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting movies: %w", err)
	}
	return count, nil
}

// seedMovie mirrors the embedded seed file layout
type seedMovie struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	Actors      []string `json:"actors"`
	PosterURL   string   `json:"poster_url"`
	Year        int      `json:"year"`
	Featured    bool     `json:"featured"`
}

// SeedCatalog imports the embedded movie seed data if the catalog is empty.
// Safe to call on every startup.
func (s *SQLiteStore) SeedCatalog(ctx context.Context) error {
	count, err := s.CountMovies(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var seeds []seedMovie
	if err := json.Unmarshal(seedMovies, &seeds); err != nil {
		return fmt.Errorf("parsing seed data: %w", err)
	}

	for _, seed := range seeds {
		movie := &Movie{
			Title:       seed.Title,
			Description: seed.Description,
			Genre:       seed.Genre,
			Director:    seed.Director,
			Actors:      seed.Actors,
			PosterURL:   seed.PosterURL,
			Year:        seed.Year,
			Featured:    seed.Featured,
		}
		if err := s.CreateMovie(ctx, movie); err != nil {
			return fmt.Errorf("seeding movie %q: %w", seed.Title, err)
		}
	}

	s.logger.Info("seeded movie catalog", "count", len(seeds))
	return nil
}
