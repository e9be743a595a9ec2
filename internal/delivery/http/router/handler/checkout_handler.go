package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"congo/internal/delivery/http/middleware"
	"congo/internal/delivery/http/response"
	"congo/internal/domain/entity"
	"congo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// checkoutForm carries the shipping address fields of the checkout form.
type checkoutForm struct {
	Street      string   `json:"street" form:"street"`
	City        string   `json:"city" form:"city"`
	State       string   `json:"state" form:"state"`
	PostalCode  string   `json:"postal_code" form:"postal_code"`
	Country     string   `json:"country" form:"country"`
	SaveAddress checkbox `json:"save_address" form:"save_address"`
}

// checkbox binds a checkbox field from either transport: HTML forms submit
// "on" for a checked box, JSON clients send a boolean.
type checkbox bool

func (b *checkbox) UnmarshalParam(value string) error {
	*b = checkbox(parseCheckbox(value))

	return nil
}

func (b *checkbox) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.Wrap(err, "failed to decode checkbox value")
	}

	switch v := value.(type) {
	case bool:
		*b = checkbox(v)
	case string:
		*b = checkbox(parseCheckbox(v))
	default:
		*b = false
	}

	return nil
}

// CheckoutHandler holds dependencies for the checkout handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCheckout returns the checkout page payload with the user's saved
// address for form prefill.
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	prefill, err := h.uc.GetCheckout(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefill, "Checkout retrieved successfully")
}

// PlaceOrder converts the session cart plus the submitted shipping address
// into a persisted order and returns the confirmation.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var form checkoutForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	input := &usecase.PlaceOrderInput{
		UserID:    userID,
		SessionID: middleware.SessionID(c),
		Address: entity.Address{
			Street:     form.Street,
			City:       form.City,
			State:      form.State,
			PostalCode: form.PostalCode,
			Country:    form.Country,
		},
		SaveAddress: bool(form.SaveAddress),
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed successfully")
}

// parseCheckbox accepts the values browsers and JSON clients send for a
// checked checkbox.
func parseCheckbox(value string) bool {
	switch value {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}
