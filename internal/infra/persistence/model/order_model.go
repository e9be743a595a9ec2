package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Rows are immutable once created.
type OrderModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Address    string          `gorm:"type:varchar(120);not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time

	Lines []OrderProductModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderProductModel mirrors the 'order_products' table, one row per line item.
type OrderProductModel struct {
	ID        int64     `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderProductModel) TableName() string {
	return "order_products"
}
