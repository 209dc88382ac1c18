package entities

import "time"

// Capture is a still image taken by the operator's device camera, kept as a
// base64 data URI (data:image/jpeg;base64,...).
type Capture struct {
	ID         string    `json:"id"`
	MimeType   string    `json:"mime_type"`
	DataURI    string    `json:"data_uri"`
	SizeBytes  int       `json:"size_bytes"`
	CapturedAt time.Time `json:"captured_at"`
}
