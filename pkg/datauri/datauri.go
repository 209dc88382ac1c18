package datauri

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrMalformed       = errors.New("malformed data uri")
	ErrUnsupportedMime = errors.New("unsupported image type")
)

// Image is a decoded base64 image data URI.
type Image struct {
	MimeType string
	Data     []byte
}

var imageMimes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// DecodeImage parses "data:image/<png|jpeg>;base64,<payload>".
func DecodeImage(raw string) (Image, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "data:") {
		return Image{}, ErrMalformed
	}
	header, payload, ok := strings.Cut(raw[len("data:"):], ",")
	if !ok || payload == "" {
		return Image{}, ErrMalformed
	}
	mime, enc, ok := strings.Cut(header, ";")
	if !ok || !strings.EqualFold(enc, "base64") {
		return Image{}, ErrMalformed
	}
	mime = strings.ToLower(strings.TrimSpace(mime))
	if !imageMimes[mime] {
		return Image{}, ErrUnsupportedMime
	}
	if mime == "image/jpg" {
		mime = "image/jpeg"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, ErrMalformed
	}
	if len(data) == 0 {
		return Image{}, ErrMalformed
	}
	return Image{MimeType: mime, Data: data}, nil
}

// FpdfImageType returns the image type name fpdf expects ("PNG" or "JPG").
func (i Image) FpdfImageType() string {
	if i.MimeType == "image/png" {
		return "PNG"
	}
	return "JPG"
}
