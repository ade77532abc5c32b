package qrcode

import (
	"encoding/json"
	"fmt"

	"pennyekart/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CollabCode string `json:"collab_code"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
	}
}

// GenerateCollabQR generates a QR code carrying an agent's collab code
func (s *qrcodeService) GenerateCollabQR(collabCode string) ([]byte, error) {
	if collabCode == "" {
		return nil, fmt.Errorf("collab code must not be empty")
	}

	// Create QR code data
	data := QRCodeData{
		CollabCode: collabCode,
		Type:       "collab",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCollabQR parses QR code data and returns the collab code
func (s *qrcodeService) ParseCollabQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "collab" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.CollabCode == "" {
		return "", fmt.Errorf("QR code carries no collab code")
	}

	return data.CollabCode, nil
}
