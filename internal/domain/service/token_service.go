package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionToken creates a signed token identifying the user.
	GenerateSessionToken(userID uuid.UUID, email string) (string, error)

	// ValidateSessionToken checks the validity of a token string and
	// returns the claims it carries.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
