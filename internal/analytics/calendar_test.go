package analytics

import (
	"testing"
	"time"

	"meditrack_pro/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarRecords() []entities.BillingRecord {
	return []entities.BillingRecord{
		{SchedulingID: "AG-1", PatientID: "P-001", ContractID: "C-10", ConsultationDate: "2024-05-25"},
		{SchedulingID: "AG-2", PatientID: "P-002", ContractID: "C-00", ConsultationDate: "2024-05-20"},
		{SchedulingID: "AG-3", PatientID: "P-001", ContractID: "C-10", ConsultationDate: "2024-05-20"},
		{SchedulingID: "AG-4", PatientID: "P-001", ContractID: "C-00", ConsultationDate: "2024-06-01"},
		{SchedulingID: "AG-5", PatientID: "P-003", ContractID: "C-03", ConsultationDate: "2024-5-3"},
	}
}

func ids(records []entities.BillingRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.SchedulingID)
	}
	return out
}

func TestFilterRecords(t *testing.T) {
	records := calendarRecords()

	assert.Len(t, FilterRecords(records, "", ""), 5)
	assert.Len(t, FilterRecords(records, FilterAll, FilterAll), 5)
	assert.Equal(t, []string{"AG-1", "AG-3", "AG-4"}, ids(FilterRecords(records, "P-001", FilterAll)))
	assert.Equal(t, []string{"AG-2", "AG-4"}, ids(FilterRecords(records, "all", "C-00")))
	assert.Equal(t, []string{"AG-4"}, ids(FilterRecords(records, "P-001", "C-00")))
	assert.Empty(t, FilterRecords(records, "P-404", ""))
}

func TestFilterRecords_IgnoresSurroundingSpaces(t *testing.T) {
	records := calendarRecords()

	assert.Equal(t, []string{"AG-1", "AG-3", "AG-4"}, ids(FilterRecords(records, " P-001 ", "")))
	assert.Equal(t, []string{"AG-4"}, ids(FilterRecords(records, "\tP-001", "C-00 ")))
	assert.Len(t, FilterRecords(records, " all ", "  "), 5)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.May))
	assert.Equal(t, 30, DaysInMonth(2024, time.June))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
}

func TestFirstWeekdayOfMonth(t *testing.T) {
	assert.Equal(t, time.Wednesday, FirstWeekdayOfMonth(2024, time.May))
	assert.Equal(t, time.Saturday, FirstWeekdayOfMonth(2024, time.June))
	assert.Equal(t, time.Sunday, FirstWeekdayOfMonth(2024, time.September))
}

func TestBucketByMonth(t *testing.T) {
	buckets := BucketByMonth(calendarRecords(), 2024, time.May)

	require.Len(t, buckets, 31)
	for d := 1; d <= 31; d++ {
		b, ok := buckets[d]
		require.True(t, ok, "missing day %d", d)
		assert.NotNil(t, b)
	}
	assert.Equal(t, []string{"AG-2", "AG-3"}, ids(buckets[20]))
	assert.Equal(t, []string{"AG-1"}, ids(buckets[25]))
	assert.Empty(t, buckets[1])
	assert.Empty(t, buckets[3], "non-padded date is not a valid calendar date")

	seen := 0
	for _, b := range buckets {
		for _, r := range b {
			if r.SchedulingID == "AG-2" {
				seen++
			}
		}
	}
	assert.Equal(t, 1, seen)
}

func TestBucketByMonth_EmptyMonth(t *testing.T) {
	buckets := BucketByMonth(nil, 2024, time.February)
	require.Len(t, buckets, 29)
	assert.Empty(t, buckets[29])
}

func TestAgendaForMonth(t *testing.T) {
	agenda := AgendaForMonth(calendarRecords(), 2024, time.May)
	assert.Equal(t, []string{"AG-2", "AG-3", "AG-1"}, ids(agenda))

	assert.Equal(t, []string{"AG-4"}, ids(AgendaForMonth(calendarRecords(), 2024, time.June)))
	assert.Empty(t, AgendaForMonth(calendarRecords(), 2023, time.May))
}
