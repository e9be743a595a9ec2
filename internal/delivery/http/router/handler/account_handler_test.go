package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"congo/config"
	"congo/internal/delivery/http/middleware"
	"congo/internal/delivery/http/validator"
	"congo/internal/domain/entity"
	mockUc "congo/internal/mocks/usecase"
	"congo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{SessionTTLHours: 24},
	}
}

func newValidatedContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Signup_Success(t *testing.T) {
	accountUc := mockUc.NewMockAccountUsecase(t)
	cartUc := mockUc.NewMockCartUsecase(t)
	handler := NewAccountHandler(newAccountTestConfig(), accountUc, cartUc, newDiscardLogger())

	form := strings.NewReader("email=shopper%40example.com&password=password123&confirm_password=password123")
	req := httptest.NewRequest(http.MethodPost, "/signup", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := newValidatedContext(req)

	accountUc.EXPECT().
		Signup(req.Context(), &usecase.SignupInput{
			Email:           "shopper@example.com",
			Password:        "password123",
			ConfirmPassword: "password123",
		}).
		Return(&usecase.SignupOutput{
			User: &entity.User{ID: uuid.New(), Email: "shopper@example.com"},
		}, nil)

	err := handler.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)
}

func TestAccountHandler_Signup_MissingEmail(t *testing.T) {
	accountUc := mockUc.NewMockAccountUsecase(t)
	cartUc := mockUc.NewMockCartUsecase(t)
	handler := NewAccountHandler(newAccountTestConfig(), accountUc, cartUc, newDiscardLogger())

	form := strings.NewReader("password=password123&confirm_password=password123")
	req := httptest.NewRequest(http.MethodPost, "/signup", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, _ := newValidatedContext(req)

	err := handler.Signup(c)

	// Validation failures surface as errors for the central error handler.
	require.Error(t, err)
}

func TestAccountHandler_Login_SetsSessionCookie(t *testing.T) {
	accountUc := mockUc.NewMockAccountUsecase(t)
	cartUc := mockUc.NewMockCartUsecase(t)
	handler := NewAccountHandler(newAccountTestConfig(), accountUc, cartUc, newDiscardLogger())

	form := strings.NewReader("email=shopper%40example.com&password=password123")
	req := httptest.NewRequest(http.MethodPost, "/login?next=/checkout", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := newValidatedContext(req)

	accountUc.EXPECT().
		Login(req.Context(), &usecase.LoginInput{
			Email:    "shopper@example.com",
			Password: "password123",
		}).
		Return(&usecase.LoginOutput{
			User:         &entity.User{ID: uuid.New(), Email: "shopper@example.com"},
			SessionToken: "session-token",
		}, nil)

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/checkout"`)

	cookies := rec.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == middleware.SessionTokenCookie {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "session-token", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestAccountHandler_Login_RejectsExternalRedirect(t *testing.T) {
	accountUc := mockUc.NewMockAccountUsecase(t)
	cartUc := mockUc.NewMockCartUsecase(t)
	handler := NewAccountHandler(newAccountTestConfig(), accountUc, cartUc, newDiscardLogger())

	form := strings.NewReader("email=shopper%40example.com&password=password123")
	req := httptest.NewRequest(http.MethodPost, "/login?next=https://evil.example.com", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := newValidatedContext(req)

	accountUc.EXPECT().
		Login(req.Context(), &usecase.LoginInput{
			Email:    "shopper@example.com",
			Password: "password123",
		}).
		Return(&usecase.LoginOutput{
			User:         &entity.User{ID: uuid.New(), Email: "shopper@example.com"},
			SessionToken: "session-token",
		}, nil)

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"redirect":"/"`)
}

func TestAccountHandler_Logout_ClearsCartAndCookies(t *testing.T) {
	accountUc := mockUc.NewMockAccountUsecase(t)
	cartUc := mockUc.NewMockCartUsecase(t)
	handler := NewAccountHandler(newAccountTestConfig(), accountUc, cartUc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	c, rec := newValidatedContext(req)
	c.Set(middleware.SessionIDContextKey, "session-1")

	cartUc.EXPECT().ClearCart(req.Context(), "session-1").Return(nil)

	err := handler.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	expired := map[string]bool{}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			expired[cookie.Name] = true
		}
	}
	assert.True(t, expired[middleware.SessionTokenCookie])
	assert.True(t, expired[middleware.CartSessionCookie])
}
