package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Emails are stored lower-cased and the
// unique index makes uniqueness case-insensitive.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(120);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(120);not null"`
	Street       string    `gorm:"type:varchar(200)"`
	City         string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(100)"`
	PostalCode   string    `gorm:"type:varchar(20)"`
	Country      string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Orders []OrderModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
