// ABOUTME: HTTP handlers for the movie catalog: movies, genres, directors
// ABOUTME: Read-only lookups, mounted behind the token middleware

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/DavidJulianGit/MovieAPI/internal/store"
)

// MovieResponse is the JSON shape of a catalog entry.
type MovieResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Genre       store.Genre      `json:"genre"`
	Director    DirectorResponse `json:"director"`
	Actors      []string         `json:"actors"`
	PosterURL   string           `json:"poster_url,omitempty"`
	Year        int              `json:"year,omitempty"`
	Featured    bool             `json:"featured"`
}

// DirectorResponse is the JSON shape of a director.
type DirectorResponse struct {
	Name  string     `json:"name"`
	Bio   string     `json:"bio"`
	Birth *time.Time `json:"birth,omitempty"`
	Death *time.Time `json:"death,omitempty"`
}

func toMovieResponse(m *store.Movie) MovieResponse {
	actors := m.Actors
	if actors == nil {
		actors = []string{}
	}
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genre:       m.Genre,
		Director:    toDirectorResponse(&m.Director),
		Actors:      actors,
		PosterURL:   m.PosterURL,
		Year:        m.Year,
		Featured:    m.Featured,
	}
}

func toDirectorResponse(d *store.Director) DirectorResponse {
	return DirectorResponse{
		Name:  d.Name,
		Bio:   d.Bio,
		Birth: d.Birth,
		Death: d.Death,
	}
}

// handleListMovies handles GET /movies
func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := s.store.ListMovies(r.Context())
	if err != nil {
		s.logger.Error("listing movies failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		response = append(response, toMovieResponse(m))
	}
	s.writeJSON(w, http.StatusOK, response)
}

// handleGetMovie handles GET /movies/{title}
func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := s.store.GetMovieByTitle(r.Context(), r.PathValue("title"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "movie not found")
			return
		}
		s.logger.Error("getting movie failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, toMovieResponse(movie))
}

// handleGetGenre handles GET /genres/{name}
func (s *Server) handleGetGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := s.store.GetGenre(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "genre not found")
			return
		}
		s.logger.Error("getting genre failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, genre)
}

// handleGetDirector handles GET /directors/{name}
func (s *Server) handleGetDirector(w http.ResponseWriter, r *http.Request) {
	director, err := s.store.GetDirector(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "director not found")
			return
		}
		s.logger.Error("getting director failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, toDirectorResponse(director))
}
