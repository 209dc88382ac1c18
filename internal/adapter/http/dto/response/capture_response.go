package response

import (
	"time"

	"meditrack_pro/internal/domain/entities"
)

// CaptureResponse leaves the image out; it is returned only on creation.
type CaptureResponse struct {
	ID         string    `json:"id"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int       `json:"size_bytes"`
	CapturedAt time.Time `json:"captured_at"`
	DataURI    string    `json:"data_uri,omitempty"`
}

func FromCapture(c entities.Capture, withImage bool) CaptureResponse {
	res := CaptureResponse{ID: c.ID, MimeType: c.MimeType, SizeBytes: c.SizeBytes, CapturedAt: c.CapturedAt}
	if withImage {
		res.DataURI = c.DataURI
	}
	return res
}

func FromCaptures(cs []entities.Capture) []CaptureResponse {
	out := make([]CaptureResponse, len(cs))
	for i, c := range cs {
		out[i] = FromCapture(c, false)
	}
	return out
}
