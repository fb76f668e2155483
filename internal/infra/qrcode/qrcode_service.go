package qrcode

import (
	"fmt"
	"strconv"
	"strings"

	"nosh/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	trackingBaseURL      string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, trackingBaseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		trackingBaseURL:      strings.TrimRight(trackingBaseURL, "/"),
	}
}

// GenerateTrackingQR generates a PNG QR code encoding the order tracking
// deep link, suitable for sharing a running order with another device.
func (s *qrcodeService) GenerateTrackingQR(orderID int) ([]byte, error) {
	link := s.trackingBaseURL + "/" + strconv.Itoa(orderID)

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
