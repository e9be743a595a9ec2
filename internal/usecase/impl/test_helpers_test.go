package impl

import (
	"io"
	"log/slog"

	"congo/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(id int64, name string, price string) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func testAddress() entity.Address {
	return entity.Address{
		Street:     "12 Rue Neuve",
		City:       "Lyon",
		State:      "Rhone",
		PostalCode: "69002",
		Country:    "France",
	}
}
