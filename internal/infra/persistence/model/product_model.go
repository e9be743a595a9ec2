// Package model contains the GORM persistence models mirroring the
// relational schema. Mapping to and from domain entities happens in the
// repository implementations.
package model

import (
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Rows are pre-seeded; the
// application only reads them.
type ProductModel struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(80);not null;index"`
	Description string          `gorm:"type:varchar(200)"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Rating      *float64
	PictureURL  string `gorm:"type:varchar(200);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
