package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. Carts, checkouts and orders reference
// a user by id but never own its lifecycle.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Age      int                `bson:"age,omitempty" json:"age,omitempty"`
	Role     string             `bson:"role" json:"role"` // "user" or "admin"
}

// PublicUser is the projection returned to clients; it never carries the hash.
type PublicUser struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Role     string             `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// CreateUserRequest is accepted by registration and by the admin create route.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Age      int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// UpdateUserRequest carries optional fields; nil means "leave unchanged".
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// LoginRequest is the credential pair for /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
