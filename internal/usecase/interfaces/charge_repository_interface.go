package interfaces

import (
	"context"

	"meditrack_pro/internal/domain/entities"
)

// IChargeRepository persists collection attempts of billing records.

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	ListByRecordID(ctx context.Context, recordID string) ([]entities.Charge, error)
}
