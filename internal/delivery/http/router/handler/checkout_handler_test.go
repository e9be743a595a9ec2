package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"congo/internal/delivery/http/middleware"
	"congo/internal/domain/entity"
	mockUc "congo/internal/mocks/usecase"
	"congo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHandler_GetCheckout_Prefill(t *testing.T) {
	uc := mockUc.NewMockCheckoutUsecase(t)
	handler := NewCheckoutHandler(uc, newDiscardLogger())

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	c, rec := newTestContext(req)
	c.Set(middleware.UserIDContextKey, userID)

	uc.EXPECT().
		GetCheckout(req.Context(), userID).
		Return(&usecase.CheckoutPrefill{
			Address: entity.Address{Street: "12 Rue Neuve", City: "Lyon", State: "Rhone", PostalCode: "69002", Country: "France"},
		}, nil)

	err := handler.GetCheckout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "12 Rue Neuve")
}

func TestCheckoutHandler_GetCheckout_MissingIdentity(t *testing.T) {
	uc := mockUc.NewMockCheckoutUsecase(t)
	handler := NewCheckoutHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	c, rec := newTestContext(req)

	err := handler.GetCheckout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutHandler_PlaceOrder_Success(t *testing.T) {
	uc := mockUc.NewMockCheckoutUsecase(t)
	handler := NewCheckoutHandler(uc, newDiscardLogger())

	userID := uuid.New()
	orderID := uuid.New()

	form := strings.NewReader("street=12+Rue+Neuve&city=Lyon&state=Rhone&postal_code=69002&country=France&save_address=on")
	req := httptest.NewRequest(http.MethodPost, "/checkout", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := newTestContext(req)
	c.Set(middleware.UserIDContextKey, userID)
	c.Set(middleware.SessionIDContextKey, "session-1")

	uc.EXPECT().
		PlaceOrder(req.Context(), &usecase.PlaceOrderInput{
			UserID:    userID,
			SessionID: "session-1",
			Address: entity.Address{
				Street:     "12 Rue Neuve",
				City:       "Lyon",
				State:      "Rhone",
				PostalCode: "69002",
				Country:    "France",
			},
			SaveAddress: true,
		}).
		Return(&usecase.PlaceOrderOutput{
			OrderID:      orderID,
			TotalPrice:   decimal.RequireFromString("28.25"),
			DeliveryDate: "Tuesday, September 08, 2026",
			QRCode:       "cG5nLWJ5dGVz",
		}, nil)

	err := handler.PlaceOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, orderID.String())
	assert.Contains(t, body, "Tuesday, September 08, 2026")
	assert.Contains(t, body, "cG5nLWJ5dGVz")
}

func TestCheckoutHandler_PlaceOrder_JSONSaveAddress(t *testing.T) {
	uc := mockUc.NewMockCheckoutUsecase(t)
	handler := NewCheckoutHandler(uc, newDiscardLogger())

	userID := uuid.New()

	body := strings.NewReader(`{"street":"12 Rue Neuve","city":"Lyon","state":"Rhone","postal_code":"69002","country":"France","save_address":true}`)
	req := httptest.NewRequest(http.MethodPost, "/checkout", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(req)
	c.Set(middleware.UserIDContextKey, userID)
	c.Set(middleware.SessionIDContextKey, "session-1")

	uc.EXPECT().
		PlaceOrder(req.Context(), &usecase.PlaceOrderInput{
			UserID:    userID,
			SessionID: "session-1",
			Address: entity.Address{
				Street:     "12 Rue Neuve",
				City:       "Lyon",
				State:      "Rhone",
				PostalCode: "69002",
				Country:    "France",
			},
			SaveAddress: true,
		}).
		Return(&usecase.PlaceOrderOutput{OrderID: uuid.New(), TotalPrice: decimal.RequireFromString("28.25")}, nil)

	err := handler.PlaceOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckoutHandler_PlaceOrder_UncheckedSaveAddress(t *testing.T) {
	uc := mockUc.NewMockCheckoutUsecase(t)
	handler := NewCheckoutHandler(uc, newDiscardLogger())

	userID := uuid.New()

	form := strings.NewReader("street=12+Rue+Neuve&city=Lyon&state=Rhone&postal_code=69002&country=France")
	req := httptest.NewRequest(http.MethodPost, "/checkout", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, _ := newTestContext(req)
	c.Set(middleware.UserIDContextKey, userID)
	c.Set(middleware.SessionIDContextKey, "session-1")

	uc.EXPECT().
		PlaceOrder(req.Context(), &usecase.PlaceOrderInput{
			UserID:    userID,
			SessionID: "session-1",
			Address: entity.Address{
				Street:     "12 Rue Neuve",
				City:       "Lyon",
				State:      "Rhone",
				PostalCode: "69002",
				Country:    "France",
			},
			SaveAddress: false,
		}).
		Return(&usecase.PlaceOrderOutput{OrderID: uuid.New(), TotalPrice: decimal.RequireFromString("11.30")}, nil)

	err := handler.PlaceOrder(c)

	require.NoError(t, err)
}
