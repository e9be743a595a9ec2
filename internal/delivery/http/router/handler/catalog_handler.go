// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"congo/internal/delivery/http/response"
	"congo/internal/domain/entity"
	"congo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// productDTO is the catalog wire representation of a product.
type productDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Rating      *float64        `json:"rating,omitempty"`
	Image       string          `json:"image"`
}

func toProductDTO(p *entity.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Rating:      p.Rating,
		Image:       p.PictureURL,
	}
}

// CatalogHandler holds dependencies for product browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the storefront landing page: the full catalog,
// optionally narrowed by the search query parameter.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	search := c.QueryParam("search")

	products, err := h.uc.ListProducts(c.Request().Context(), search)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]productDTO, 0, len(products))
	for _, p := range products {
		items = append(items, toProductDTO(p))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": items,
		"search":   search,
	}, "Products retrieved successfully")
}

// GetProduct handles the product detail request.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductDTO(product), "Product retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
