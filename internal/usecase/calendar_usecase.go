package usecase

import (
	"context"
	"errors"
	"time"

	"meditrack_pro/internal/analytics"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/logger"

	"go.uber.org/zap"
)

var ErrInvalidCalendarMonth = errors.New("invalid calendar month")

// CalendarQuery selects the month to display. Zero Year/Month mean the current
// ones; PatientID and ContractID accept "" or "all".
type CalendarQuery struct {
	Year       int
	Month      time.Month
	PatientID  string
	ContractID string
}

// CalendarMonth is a month view: a Sunday-first grid with LeadingBlanks empty
// cells, the records of each day and the ordered agenda.
type CalendarMonth struct {
	Year          int
	Month         time.Month
	DaysInMonth   int
	LeadingBlanks int
	Days          map[int][]entities.BillingRecord
	Agenda        []entities.BillingRecord
}

type ICalendarUseCase interface {
	Month(ctx context.Context, q CalendarQuery) (CalendarMonth, error)
}

type CalendarUseCase struct {
	records interfaces.IBillingRecordRepository
	now     func() time.Time
	log     *zap.Logger
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(records interfaces.IBillingRecordRepository, log *zap.Logger) *CalendarUseCase {
	return &CalendarUseCase{records: records, now: time.Now, log: logger.Component(log, "calendar.usecase")}
}

func (u *CalendarUseCase) Month(ctx context.Context, q CalendarQuery) (CalendarMonth, error) {
	if q.Year == 0 && q.Month == 0 {
		today := u.now()
		q.Year, q.Month = today.Year(), today.Month()
	}
	if q.Month < time.January || q.Month > time.December || q.Year < 1 {
		return CalendarMonth{}, ErrInvalidCalendarMonth
	}

	records, err := u.records.List(ctx)
	if err != nil {
		u.log.Error("list records failed", zap.Error(err))
		return CalendarMonth{}, err
	}
	filtered := analytics.FilterRecords(records, q.PatientID, q.ContractID)

	return CalendarMonth{
		Year:          q.Year,
		Month:         q.Month,
		DaysInMonth:   analytics.DaysInMonth(q.Year, q.Month),
		LeadingBlanks: int(analytics.FirstWeekdayOfMonth(q.Year, q.Month)),
		Days:          analytics.BucketByMonth(filtered, q.Year, q.Month),
		Agenda:        analytics.AgendaForMonth(filtered, q.Year, q.Month),
	}, nil
}
