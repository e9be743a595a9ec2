package handler

import (
	"log/slog"
	"net/http"
	"time"

	"congo/config"
	"congo/internal/delivery/http/middleware"
	"congo/internal/delivery/http/response"
	"congo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for signup, login and logout handlers.
type AccountHandler struct {
	cfg    *config.Config
	uc     usecase.AccountUsecase
	cartUc usecase.CartUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(cfg *config.Config, uc usecase.AccountUsecase, cartUc usecase.CartUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		cfg:    cfg,
		uc:     uc,
		cartUc: cartUc,
		logger: logger,
	}
}

// ShowSignup returns the signup form descriptor.
func (h *AccountHandler) ShowSignup(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"fields": []string{"email", "password", "confirm_password"},
	}, "Signup form")
}

// Signup handles the account registration request.
func (h *AccountHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"email":    output.User.Email,
		"redirect": "/login",
	}, "Account created successfully")
}

// ShowLogin returns the login form descriptor, echoing the return target so
// the client can carry it through the form post.
func (h *AccountHandler) ShowLogin(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"fields": []string{"email", "password"},
		"next":   sanitizeNext(c.QueryParam("next")),
	}, "Login form")
}

// Login handles the login request. On success it issues the session token as
// an HttpOnly cookie and reports where the client should navigate next.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	next := sanitizeNext(c.QueryParam("next"))
	if next == "" {
		next = sanitizeNext(c.FormValue("next"))
	}
	if next == "" {
		next = "/"
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionTokenCookie,
		Value:    output.SessionToken,
		Path:     "/",
		MaxAge:   int((time.Duration(h.cfg.Auth.SessionTTLHours) * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]any{
		"email":    output.User.Email,
		"token":    output.SessionToken,
		"redirect": next,
	}, "Login successful")
}

// Logout ends the session: the session token cookie is expired, the cart is
// dropped and the cart session cookie is expired with it.
func (h *AccountHandler) Logout(c echo.Context) error {
	if sessionID := middleware.SessionID(c); sessionID != "" {
		if err := h.cartUc.ClearCart(c.Request().Context(), sessionID); err != nil {
			h.logger.Warn("Failed to clear cart on logout",
				slog.String("sessionID", sessionID),
				slog.Any("error", err),
			)
		}
	}

	expireCookie(c, middleware.SessionTokenCookie)
	expireCookie(c, middleware.CartSessionCookie)

	return response.Success(c, http.StatusOK, map[string]string{"redirect": "/"}, "Logged out successfully")
}

func expireCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sanitizeNext only accepts local paths as post-login targets, so the login
// flow cannot be used as an open redirect.
func sanitizeNext(next string) string {
	if len(next) == 0 || next[0] != '/' {
		return ""
	}
	if len(next) > 1 && next[1] == '/' {
		return ""
	}

	return next
}
