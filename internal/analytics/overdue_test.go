package analytics

import (
	"testing"
	"time"

	"meditrack_pro/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckOverdue(t *testing.T) {
	today := date(2024, time.May, 10)

	cases := []struct {
		name   string
		date   string
		status entities.PaymentStatus
		today  time.Time
		want   OverdueResult
	}{
		{name: "pending nine days", date: "2024-05-01", status: entities.PaymentStatusPendente, today: today, want: OverdueResult{IsOverdue: true, DaysElapsed: 9}},
		{name: "partial at threshold", date: "2024-05-03", status: entities.PaymentStatusParcial, today: today, want: OverdueResult{IsOverdue: false, DaysElapsed: 7}},
		{name: "partial past threshold", date: "2024-05-02", status: entities.PaymentStatusParcial, today: today, want: OverdueResult{IsOverdue: true, DaysElapsed: 8}},
		{name: "same day", date: "2024-05-10", status: entities.PaymentStatusPendente, today: today, want: OverdueResult{}},
		{name: "paid long ago", date: "2020-01-01", status: entities.PaymentStatusPago, today: today, want: OverdueResult{}},
		{name: "paid in future", date: "2030-01-01", status: entities.PaymentStatusPago, today: today, want: OverdueResult{}},
		{name: "future date counts absolute days", date: "2024-05-20", status: entities.PaymentStatusPendente, today: today, want: OverdueResult{IsOverdue: true, DaysElapsed: 10}},
		{name: "time of day ignored", date: "2024-05-09", status: entities.PaymentStatusPendente, today: time.Date(2024, time.May, 10, 23, 59, 0, 0, time.UTC), want: OverdueResult{DaysElapsed: 1}},
		{name: "malformed date", date: "20/05/2024", status: entities.PaymentStatusPendente, today: today, want: OverdueResult{InvalidDate: true}},
		{name: "paid with malformed date", date: "nope", status: entities.PaymentStatusPago, today: today, want: OverdueResult{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckOverdue(tc.date, tc.status, tc.today, DefaultOverdueThresholdDays)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckOverdue_CustomThreshold(t *testing.T) {
	got := CheckOverdue("2024-05-01", entities.PaymentStatusPendente, date(2024, time.May, 10), 30)
	assert.False(t, got.IsOverdue)
	assert.Equal(t, 9, got.DaysElapsed)
}

func TestMidnight_KeepsCalendarDateOfLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*3600)
	got := Midnight(time.Date(2024, time.May, 10, 22, 30, 0, 0, saoPaulo))
	assert.Equal(t, date(2024, time.May, 10), got)
}
