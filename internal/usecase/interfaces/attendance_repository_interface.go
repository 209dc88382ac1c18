package interfaces

import (
	"context"

	"meditrack_pro/internal/domain/entities"
)

type IAttendanceRepository interface {
	MonthlyTrend(ctx context.Context) ([]entities.MonthlyVisits, error)
}
