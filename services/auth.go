package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"brandm-backend/models"
	"brandm-backend/store"
	"brandm-backend/utils"
)

// AuthService issues signed tokens for registered users.
type AuthService struct {
	users  UserStore
	tokens *utils.TokenIssuer
}

func NewAuthService(users UserStore, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// AuthResult is the token plus a public-safe user projection.
type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, Unauthorized("Invalid credentials")
		}
		return nil, Internal("error looking up user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, Internal("error generating token", err)
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Register creates a user and issues a token. Duplicate emails are rejected
// with a conflict.
func (s *AuthService) Register(ctx context.Context, req models.CreateUserRequest) (*AuthResult, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, Conflict("Email already in use")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, Internal("error checking user existence", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Internal("error hashing password", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Age:      req.Age,
		Role:     models.RoleUser,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, Internal("error creating user", err)
	}
	user.ID = id

	token, err := s.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, Internal("error generating token", err)
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}
