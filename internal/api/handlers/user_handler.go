package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kvasnikov/workorders/internal/domain/entities"
	"github.com/kvasnikov/workorders/internal/domain/repositories"
	apperrors "github.com/kvasnikov/workorders/pkg/errors"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	repo repositories.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo repositories.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

type userRequest struct {
	ID        *int    `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Age       *int    `json:"age"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Phone     *string `json:"phone"`
}

// validate checks field presence. The id is only required on create;
// item updates take it from the path and ignore any body value.
func (p *userRequest) validate(requireID bool) error {
	if requireID && p.ID == nil {
		return apperrors.NewFieldValidationError("id", "is required")
	}
	checks := []struct {
		name    string
		present bool
	}{
		{"first_name", p.FirstName != nil},
		{"last_name", p.LastName != nil},
		{"age", p.Age != nil},
		{"email", p.Email != nil},
		{"role", p.Role != nil},
		{"phone", p.Phone != nil},
	}
	for _, check := range checks {
		if !check.present {
			return apperrors.NewFieldValidationError(check.name, "is required")
		}
	}
	return nil
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if users == nil {
		users = []*entities.User{}
	}
	respondWithJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload userRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.validate(true); err != nil {
		respondWithAppError(w, err)
		return
	}

	user := &entities.User{
		ID:        *payload.ID,
		FirstName: *payload.FirstName,
		LastName:  *payload.LastName,
		Age:       *payload.Age,
		Email:     *payload.Email,
		Role:      *payload.Role,
		Phone:     *payload.Phone,
	}

	if err := h.repo.Create(r.Context(), user); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	user, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	var payload userRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.validate(false); err != nil {
		respondWithAppError(w, err)
		return
	}

	user, err := replaceByID(r.Context(), id, h.repo.GetByID, h.repo.Update, func(u *entities.User) {
		u.FirstName = *payload.FirstName
		u.LastName = *payload.LastName
		u.Age = *payload.Age
		u.Email = *payload.Email
		u.Role = *payload.Role
		u.Phone = *payload.Phone
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
