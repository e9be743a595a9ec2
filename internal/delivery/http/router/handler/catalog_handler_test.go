package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"congo/internal/domain/entity"
	mockUc "congo/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_ListProducts_WithSearch(t *testing.T) {
	uc := mockUc.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/?search=mug", nil)
	c, rec := newTestContext(req)

	rating := 4.5
	uc.EXPECT().
		ListProducts(req.Context(), "mug").
		Return([]*entity.Product{
			{
				ID:          1,
				Name:        "Mug",
				Description: "A sturdy mug",
				Price:       decimal.RequireFromString("10.00"),
				Rating:      &rating,
				PictureURL:  "https://cdn.example.com/mug.png",
			},
		}, nil)

	err := handler.ListProducts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"search":"mug"`)
	assert.Contains(t, body, `"name":"Mug"`)
	assert.Contains(t, body, `"image":"https://cdn.example.com/mug.png"`)
}

func TestCatalogHandler_ListProducts_EmptyCatalog(t *testing.T) {
	uc := mockUc.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(req)

	uc.EXPECT().ListProducts(req.Context(), "").Return(nil, nil)

	err := handler.ListProducts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"products":[]`)
}

func TestCatalogHandler_GetProduct_InvalidID(t *testing.T) {
	uc := mockUc.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(req)
	c.SetPath("/product/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	err := handler.GetProduct(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCatalogHandler_GetProduct_Found(t *testing.T) {
	uc := mockUc.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(req)
	c.SetPath("/product/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	uc.EXPECT().
		GetProduct(req.Context(), int64(42)).
		Return(&entity.Product{ID: 42, Name: "Mug", Price: decimal.RequireFromString("10.00")}, nil)

	err := handler.GetProduct(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}
