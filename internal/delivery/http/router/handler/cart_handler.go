package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"congo/internal/delivery/http/middleware"
	"congo/internal/delivery/http/response"
	"congo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for session cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddToCart merges a product into the session cart. The quantity comes from
// the form and defaults to one when absent or unparseable.
func (h *CartHandler) AddToCart(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	quantity := 1
	if raw := c.FormValue("quantity"); raw != "" {
		if parsed, parseErr := strconv.Atoi(raw); parseErr == nil {
			quantity = parsed
		}
	}

	sessionID := middleware.SessionID(c)

	cart, err := h.uc.AddToCart(c.Request().Context(), sessionID, productID, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"lines":    cart.Lines,
		"redirect": "/cart",
	}, "Product added to cart")
}

// ViewCart returns the cart page payload: lines plus computed totals.
func (h *CartHandler) ViewCart(c echo.Context) error {
	sessionID := middleware.SessionID(c)

	view, err := h.uc.ViewCart(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}
