package analytics

import (
	"sort"
	"strings"
	"time"

	"meditrack_pro/internal/domain/entities"
)

// FilterAll is the sentinel accepted by the id filters to mean "no filter".
const FilterAll = "all"

func isNoFilter(v string) bool {
	return v == "" || v == FilterAll
}

// FilterRecords keeps records matching both patientID and contractID. Each
// filter is disabled when empty or FilterAll; surrounding spaces are ignored.
func FilterRecords(records []entities.BillingRecord, patientID, contractID string) []entities.BillingRecord {
	patientID = strings.TrimSpace(patientID)
	contractID = strings.TrimSpace(contractID)
	out := make([]entities.BillingRecord, 0, len(records))
	for _, r := range records {
		if !isNoFilter(patientID) && r.PatientID != patientID {
			continue
		}
		if !isNoFilter(contractID) && r.ContractID != contractID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DaysInMonth returns 28..31 for the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth is the weekday of day 1, i.e. the number of blank
// leading cells of a Sunday-first 7-column grid.
func FirstWeekdayOfMonth(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// BucketByMonth maps every day of the month (1..DaysInMonth) to the records
// dated that day. Days without records map to an empty slice. Records with an
// unparseable date are left out.
func BucketByMonth(records []entities.BillingRecord, year int, month time.Month) map[int][]entities.BillingRecord {
	n := DaysInMonth(year, month)
	buckets := make(map[int][]entities.BillingRecord, n)
	for d := 1; d <= n; d++ {
		buckets[d] = []entities.BillingRecord{}
	}
	for _, r := range records {
		dt, err := ParseDate(r.ConsultationDate)
		if err != nil {
			continue
		}
		if dt.Year() != year || dt.Month() != month {
			continue
		}
		buckets[dt.Day()] = append(buckets[dt.Day()], r)
	}
	return buckets
}

// AgendaForMonth lists the records of the month ordered by consultation date.
// Records on the same day keep their input order.
func AgendaForMonth(records []entities.BillingRecord, year int, month time.Month) []entities.BillingRecord {
	type dated struct {
		record entities.BillingRecord
		date   time.Time
	}
	items := make([]dated, 0)
	for _, r := range records {
		dt, err := ParseDate(r.ConsultationDate)
		if err != nil || dt.Year() != year || dt.Month() != month {
			continue
		}
		items = append(items, dated{record: r, date: dt})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].date.Before(items[j].date)
	})

	agenda := make([]entities.BillingRecord, len(items))
	for i, it := range items {
		agenda[i] = it.record
	}
	return agenda
}
