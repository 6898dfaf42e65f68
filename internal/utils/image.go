package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImageData = errors.New("invalid base64 image data")

// DecodeBase64Image decodes a data-URL encoded image
// ("data:image/png;base64,....") into raw bytes plus the file
// extension and content type taken from the data-URL header.
func DecodeBase64Image(data string) ([]byte, string, string, error) {
	if !strings.HasPrefix(data, "data:image") {
		return nil, "", "", ErrInvalidImageData
	}

	parts := strings.SplitN(data, ";base64,", 2)
	if len(parts) != 2 {
		return nil, "", "", ErrInvalidImageData
	}

	contentType := strings.TrimPrefix(parts[0], "data:")
	ext := contentType[strings.LastIndex(contentType, "/")+1:]

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", "", ErrInvalidImageData
	}

	return raw, ext, contentType, nil
}
