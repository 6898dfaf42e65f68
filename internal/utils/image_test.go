package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBase64Image(t *testing.T) {
	payload := []byte("fake-png-bytes")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	raw, ext, contentType, err := DecodeBase64Image(encoded)

	assert.NoError(t, err)
	assert.Equal(t, payload, raw)
	assert.Equal(t, "png", ext)
	assert.Equal(t, "image/png", contentType)
}

func TestDecodeBase64ImageRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a data url", "hello world"},
		{"missing base64 marker", "data:image/png,abc"},
		{"broken base64 payload", "data:image/jpeg;base64,!!!not-base64!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := DecodeBase64Image(tt.data)
			assert.ErrorIs(t, err, ErrInvalidImageData)
		})
	}
}
