// ABOUTME: HTTP handlers for registration, login, account CRUD, and favorites
// ABOUTME: Login failures are uniform; account hashes never leave the server

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/DavidJulianGit/MovieAPI/internal/auth"
	"github.com/DavidJulianGit/MovieAPI/internal/store"
)

// RegisterRequest is the JSON request body for POST /users.
type RegisterRequest struct {
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"firstname"`
	LastName  string     `json:"lastname"`
	Birthday  *time.Time `json:"birthday,omitempty"`
}

// UpdateUserRequest is the JSON request body for PUT /users/{email}.
// All fields are optional; absent fields are left unchanged.
type UpdateUserRequest struct {
	FirstName *string    `json:"firstname,omitempty"`
	Password  *string    `json:"password,omitempty"`
	LastName  *string    `json:"lastname,omitempty"`
	Birthday  *time.Time `json:"birthday,omitempty"`
}

// LoginRequest is the JSON request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the JSON shape of an account. The password hash is never
// serialized.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstname"`
	LastName  string     `json:"lastname"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Favorites []string   `json:"favorites"`
}

// LoginResponse is the JSON response for a successful login.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func toUserResponse(u *store.User) UserResponse {
	favorites := u.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Birthday:  u.Birthday,
		Favorites: favorites,
	}
}

// handleRegister handles POST /users. The password is hashed before the
// record is handed to the store, so plaintext never reaches persistence.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		s.writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if req.FirstName == "" || req.LastName == "" {
		s.writeError(w, http.StatusBadRequest, "firstname and lastname are required")
		return
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("hashing password failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := &store.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Birthday:     req.Birthday,
	}

	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.writeError(w, http.StatusConflict, "email already registered")
			return
		}
		s.logger.Error("creating user failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// handleLogin handles POST /login. Credential failures of every kind map to
// the same 400 response; only store faults surface as 500.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.creds.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.writeError(w, http.StatusBadRequest, "invalid email or password")
			return
		}
		s.logger.Error("login lookup failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("issuing token failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeJSON(w, http.StatusOK, LoginResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// handleGetUser handles GET /users/{email}
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUserByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error("getting user failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, toUserResponse(user))
}

// handleUpdateUser handles PUT /users/{email}. A supplied password is
// re-hashed; the stored hash is replaced, never appended to.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := store.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthday:  req.Birthday,
	}

	if req.Password != nil {
		if *req.Password == "" {
			s.writeError(w, http.StatusBadRequest, "password must not be empty")
			return
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			s.logger.Error("hashing password failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		upd.PasswordHash = &hash
	}

	user, err := s.store.UpdateUser(r.Context(), r.PathValue("email"), upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error("updating user failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeJSON(w, http.StatusOK, toUserResponse(user))
}

// handleDeleteUser handles DELETE /users/{email}. Outstanding tokens for the
// account keep their valid signature but stop resolving, so they are
// rejected at the auth middleware from here on.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if err := s.store.DeleteUser(r.Context(), email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error("deleting user failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

// handleAddFavorite handles POST /users/{email}/movies/{movieID}. The movie
// is not required to exist in the catalog; the reference is stored as given.
func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.AddFavorite(r.Context(), r.PathValue("email"), r.PathValue("movieID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error("adding favorite failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, toUserResponse(user))
}

// handleRemoveFavorite handles DELETE /users/{email}/movies/{movieID}
func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.RemoveFavorite(r.Context(), r.PathValue("email"), r.PathValue("movieID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error("removing favorite failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, toUserResponse(user))
}
