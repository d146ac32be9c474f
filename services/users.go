package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"brandm-backend/models"
	"brandm-backend/store"
)

// UserService is the admin user administration surface, plus self-update.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create adds a user. Unlike registration, an admin may assign a role.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, Conflict("Email already in use")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, Internal("error checking user existence", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Internal("error hashing password", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Age:      req.Age,
		Role:     role,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, Internal("error creating user", err)
	}
	user.ID = id
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, Internal("error fetching users", err)
	}
	return users, nil
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("User not found")
		}
		return nil, Internal("error fetching user", err)
	}
	return user, nil
}

// Update applies the non-nil fields. A new password is hashed; a new email
// must not collide with another account.
func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateUserRequest) (*models.User, error) {
	if req.Email != nil {
		if existing, err := s.users.FindByEmail(ctx, *req.Email); err == nil && existing.ID != id {
			return nil, Conflict("Email already in use")
		} else if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, Internal("error checking user existence", err)
		}
	}

	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, Internal("error hashing password", err)
		}
		hashedStr := string(hashed)
		req.Password = &hashedStr
	}

	user, err := s.users.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("User not found")
		}
		return nil, Internal("error updating user", err)
	}
	return user, nil
}

// UpdateMe is the self-service update; the role field is ignored so a user
// cannot raise their own privileges.
func (s *UserService) UpdateMe(ctx context.Context, id primitive.ObjectID, req models.UpdateUserRequest) (*models.User, error) {
	req.Role = nil
	return s.Update(ctx, id, req)
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("User not found")
		}
		return Internal("error deleting user", err)
	}
	return nil
}
