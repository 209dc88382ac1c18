package interfaces

import "meditrack_pro/internal/domain/entities"

type ICertificateRenderer interface {
	Render(cert entities.AttendanceCertificate) ([]byte, error)
}
