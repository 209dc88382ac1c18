package analytics

import (
	"math"
	"strings"
	"time"

	"meditrack_pro/internal/domain/entities"
)

// DefaultOverdueThresholdDays is the number of days after which an unpaid
// consultation is flagged.
const DefaultOverdueThresholdDays = 7

const day = 24 * time.Hour

// OverdueResult tells whether an unpaid record is late and by how many days.
// InvalidDate is set, with the zero result, when the consultation date cannot
// be parsed.
type OverdueResult struct {
	IsOverdue   bool `json:"is_overdue"`
	DaysElapsed int  `json:"days_elapsed"`
	InvalidDate bool `json:"invalid_date,omitempty"`
}

// CheckOverdue compares consultationDate (YYYY-MM-DD) with today at calendar-day
// granularity. Paid records are never overdue.
//
// The day count is the absolute difference rounded up, so a consultation in the
// future also accumulates days.
func CheckOverdue(consultationDate string, status entities.PaymentStatus, today time.Time, thresholdDays int) OverdueResult {
	if status == entities.PaymentStatusPago {
		return OverdueResult{}
	}
	recordDate, err := ParseDate(consultationDate)
	if err != nil {
		return OverdueResult{InvalidDate: true}
	}

	diff := Midnight(today).Sub(recordDate)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(float64(diff) / float64(day)))
	return OverdueResult{
		IsOverdue:   days > thresholdDays,
		DaysElapsed: days,
	}
}

// ParseDate parses a YYYY-MM-DD calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(entities.DateLayout, strings.TrimSpace(s))
}

// Midnight drops the time of day of t, keeping its calendar date, in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
