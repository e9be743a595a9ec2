// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// CartSessionCookie names the cookie carrying the anonymous session id
	// that scopes a shopper's cart.
	CartSessionCookie = "cart_session"

	// SessionIDContextKey is the echo context key holding the session id.
	SessionIDContextKey = "sessionID"
)

// SessionMiddleware issues and propagates the per-browser session id. The
// cart is keyed by this id, so it exists before (and independently of) login.
type SessionMiddleware struct{}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// EnsureSession guarantees every request carries a valid cart session id,
// minting a new one when the cookie is absent or malformed.
func (m *SessionMiddleware) EnsureSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := ""
		if cookie, err := c.Cookie(CartSessionCookie); err == nil {
			if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				sessionID = cookie.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     CartSessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(SessionIDContextKey, sessionID)

		return next(c)
	}
}

// SessionID extracts the cart session id set by EnsureSession.
func SessionID(c echo.Context) string {
	sessionID, _ := c.Get(SessionIDContextKey).(string)

	return sessionID
}
