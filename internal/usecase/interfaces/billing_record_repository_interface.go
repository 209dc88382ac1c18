package interfaces

import (
	"context"

	"meditrack_pro/internal/domain/entities"
)

// IBillingRecordRepository reads billing records keyed by id_agendamento.
type IBillingRecordRepository interface {
	List(ctx context.Context) ([]entities.BillingRecord, error)
	GetBySchedulingID(ctx context.Context, schedulingID string) (entities.BillingRecord, error)
}
