package interfaces

import (
	"context"

	"meditrack_pro/internal/domain/entities"
)

// IContractRepository reads convênio agreements. GetByID returns the zero
// Contract when not found.
type IContractRepository interface {
	List(ctx context.Context) ([]entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
}
