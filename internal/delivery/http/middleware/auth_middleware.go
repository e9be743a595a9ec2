package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"congo/internal/delivery/http/response"
	"congo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionTokenCookie names the HttpOnly cookie carrying the signed
	// session token, so the browser flow behaves like a classic session.
	SessionTokenCookie = "session_token"

	// UserIDContextKey and UserEmailContextKey are the echo context keys
	// set after successful authentication.
	UserIDContextKey    = "userID"
	UserEmailContextKey = "userEmail"
)

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token and rejects with 401 on failure.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.resolveClaims(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Login required")
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// RequireLoginRedirect validates the session token and, on failure, redirects
// to the login page preserving the original path as the return target. Used
// by the checkout flow.
func (m *AuthMiddleware) RequireLoginRedirect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.resolveClaims(c)
		if !ok {
			target := "/login?next=" + url.QueryEscape(c.Request().URL.Path)

			return c.Redirect(http.StatusFound, target)
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// resolveClaims extracts the session token from the Authorization header or
// the session cookie and validates it.
func (m *AuthMiddleware) resolveClaims(c echo.Context) (*service.SessionClaims, bool) {
	tokenString := ""

	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	} else if cookie, err := c.Cookie(SessionTokenCookie); err == nil {
		tokenString = cookie.Value
	}

	if tokenString == "" {
		return nil, false
	}

	claims, err := m.tokenSvc.ValidateSessionToken(tokenString)
	if err != nil {
		return nil, false
	}

	return claims, true
}

func setIdentity(c echo.Context, claims *service.SessionClaims) {
	c.Set(UserIDContextKey, claims.UserID)
	c.Set(UserEmailContextKey, claims.Email)
}

// UserID extracts the authenticated user's id set by the auth middleware.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)

	return userID, ok
}
