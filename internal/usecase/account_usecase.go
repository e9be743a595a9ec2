package usecase

import (
	"context"

	"congo/internal/domain/entity"
)

// SignupInput carries the signup form fields.
type SignupInput struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
}

// SignupOutput is returned after a successful registration.
type SignupOutput struct {
	User *entity.User
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginOutput is returned after successful authentication.
type LoginOutput struct {
	User         *entity.User
	SessionToken string
}

// AccountUsecase exposes signup and login.
type AccountUsecase interface {
	// Signup registers a new account. It rejects duplicate emails
	// (case-insensitive), mismatched confirmation passwords and passwords
	// shorter than the configured minimum.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies credentials and issues a session token. Failures are
	// reported with a single generic error that does not reveal whether
	// the email or the password was wrong.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
