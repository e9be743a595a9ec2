package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered shopper account.
// Email is stored lower-cased; uniqueness is case-insensitive.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier, normalized to lower case.
	PasswordHash string    // Salted bcrypt hash. Plaintext passwords are never stored.
	Address      Address   // The user's saved shipping address. Fields may be blank.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Address is a shipping address, either saved on a User or submitted at checkout.
type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// Flatten renders the address as the single string persisted on an order.
func (a Address) Flatten() string {
	return strings.Join([]string{a.Street, a.City, a.State, a.PostalCode, a.Country}, ", ")
}

// IsBlank reports whether every field of the address is empty.
func (a Address) IsBlank() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.PostalCode == "" && a.Country == ""
}

// NormalizeEmail lower-cases and trims an email for case-insensitive matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
