package response

import (
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
)

type CalendarDayResponse struct {
	Day     int                      `json:"day"`
	Records []entities.BillingRecord `json:"records"`
}

// CalendarMonthResponse lists every day of the month in order, so the client
// can lay out a Sunday-first grid after leading_blanks empty cells.
type CalendarMonthResponse struct {
	Year          int                      `json:"year"`
	Month         int                      `json:"month"`
	DaysInMonth   int                      `json:"days_in_month"`
	LeadingBlanks int                      `json:"leading_blanks"`
	Days          []CalendarDayResponse    `json:"days"`
	Agenda        []entities.BillingRecord `json:"agenda"`
}

func FromCalendarMonth(m usecase.CalendarMonth) CalendarMonthResponse {
	days := make([]CalendarDayResponse, 0, m.DaysInMonth)
	for d := 1; d <= m.DaysInMonth; d++ {
		recs := m.Days[d]
		if recs == nil {
			recs = []entities.BillingRecord{}
		}
		days = append(days, CalendarDayResponse{Day: d, Records: recs})
	}
	agenda := m.Agenda
	if agenda == nil {
		agenda = []entities.BillingRecord{}
	}
	return CalendarMonthResponse{
		Year:          m.Year,
		Month:         int(m.Month),
		DaysInMonth:   m.DaysInMonth,
		LeadingBlanks: m.LeadingBlanks,
		Days:          days,
		Agenda:        agenda,
	}
}
