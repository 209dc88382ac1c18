package interfaces

import (
	"context"

	"meditrack_pro/internal/domain/entities"
)

// IPatientRepository reads the patient base.
//
// GetByID returns the zero Patient (empty ID) when the patient does not exist.
type IPatientRepository interface {
	List(ctx context.Context) ([]entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
}
