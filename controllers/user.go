package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"brandm-backend/models"
	"brandm-backend/services"
	"brandm-backend/utils"
)

// UserController handles user management requests
type UserController struct {
	users *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Me returns the authenticated user's profile
func (uc *UserController) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := uc.users.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user.Public())
}

// UpdateMe updates the authenticated user's own profile. Role changes are
// ignored here.
func (uc *UserController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := uc.users.UpdateMe(ctx, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user.Public())
}

// ListUsers returns all users (Admin only)
func (uc *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, err := uc.users.List(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	utils.WriteJSON(w, http.StatusOK, public)
}

// GetUser returns one user by id (Admin only)
func (uc *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := uc.users.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user.Public())
}

// CreateUser creates a user with an explicit role (Admin only)
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := uc.users.Create(ctx, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, user.Public())
}

// UpdateUser updates any user, including role changes (Admin only)
func (uc *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := uc.users.Update(ctx, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user.Public())
}

// DeleteUser removes a user (Admin only)
func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := uc.users.Delete(ctx, id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "User removed"})
}
