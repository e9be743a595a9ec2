package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateOrderQR generates a QR code image (PNG bytes) encoding an
	// order confirmation reference.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)
}
