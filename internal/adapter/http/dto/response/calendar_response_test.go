package response

import (
	"testing"
	"time"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
)

func TestFromCalendarMonth(t *testing.T) {
	m := usecase.CalendarMonth{
		Year:          2024,
		Month:         time.February,
		DaysInMonth:   29,
		LeadingBlanks: 4,
		Days:          map[int][]entities.BillingRecord{10: {{SchedulingID: "AG-1"}}},
	}

	res := FromCalendarMonth(m)
	if res.Month != 2 || len(res.Days) != 29 {
		t.Fatalf("unexpected month: %+v", res)
	}
	if res.Days[0].Day != 1 || res.Days[0].Records == nil || len(res.Days[0].Records) != 0 {
		t.Fatalf("unexpected first day: %+v", res.Days[0])
	}
	if len(res.Days[9].Records) != 1 || res.Days[9].Records[0].SchedulingID != "AG-1" {
		t.Fatalf("unexpected day 10: %+v", res.Days[9])
	}
	if res.Agenda == nil {
		t.Fatalf("expected empty agenda slice")
	}
}
