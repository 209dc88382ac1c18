package entities

import "time"

// AttendanceCertificate is the data printed on an "Atestado de Comparecimento".
// Photo is optional; PhotoMime is image/png or image/jpeg when set.
type AttendanceCertificate struct {
	Record       BillingRecord
	IssuedAt     time.Time
	Verification string
	PhotoMime    string
	Photo        []byte
}
