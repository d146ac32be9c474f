package controllers

import (
	"context"
	"net/http"

	"brandm-backend/models"
	"brandm-backend/services"
	"brandm-backend/utils"
)

// AuthController handles registration and login
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register creates a new customer account and returns a token
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ac.auth.Register(ctx, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result)
}

// Login authenticates a user and returns a token
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ac.auth.Login(ctx, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
