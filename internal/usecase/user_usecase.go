// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in. The field names
// follow the OAuth2 password-grant form convention: `username` carries the
// email address.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserWithTasks pairs a user with their explicitly queried tasks.
type UserWithTasks struct {
	User  *entity.User
	Tasks []*entity.Task
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user account. A duplicate email yields a
	// conflict error and leaves the existing record untouched.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Login verifies the credentials and issues a bearer token whose
	// subject is the user's email. Unknown email and wrong password yield
	// the same generic error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetMe returns the user together with their tasks, fetched by an
	// explicit owner query.
	GetMe(ctx context.Context, userID int64) (*UserWithTasks, error)
}
