package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateCollabQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	pngBytes, err := service.GenerateCollabQR("JOYSTORE20-9810")

	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)
	// PNG magic header.
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_GenerateCollabQR_EmptyCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	pngBytes, err := service.GenerateCollabQR("")

	assert.Error(t, err)
	assert.Nil(t, pngBytes)
}

func TestQRCodeService_ParseCollabQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		CollabCode: "JOYSTORE20-9810",
		Type:       "collab",
	})
	require.NoError(t, err)

	code, err := service.ParseCollabQR(string(payload))

	require.NoError(t, err)
	assert.Equal(t, "JOYSTORE20-9810", code)
}

func TestQRCodeService_ParseCollabQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		CollabCode: "JOYSTORE20-9810",
		Type:       "merchant",
	})
	require.NoError(t, err)

	code, err := service.ParseCollabQR(string(payload))

	assert.Error(t, err)
	assert.Empty(t, code)
}

func TestQRCodeService_ParseCollabQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	code, err := service.ParseCollabQR("not-json")

	assert.Error(t, err)
	assert.Empty(t, code)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	pngBytes, err := service.GenerateCollabQR("JOYSTORE20-9810")

	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)
}
