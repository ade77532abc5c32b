package service

// QRCodeService defines the interface for collab code QR generation, used by
// agents to share their personal code.
type QRCodeService interface {
	// GenerateCollabQR generates a PNG QR code carrying the collab code.
	GenerateCollabQR(collabCode string) ([]byte, error)

	// ParseCollabQR parses QR payload data and returns the collab code.
	ParseCollabQR(qrData string) (string, error)
}
