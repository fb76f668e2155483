package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateTrackingQR generates a PNG QR code encoding the order
	// tracking deep link for the given order.
	GenerateTrackingQR(orderID int) ([]byte, error)
}
