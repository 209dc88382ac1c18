package repository

import (
	"context"
	"testing"
	"time"

	"meditrack_pro/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientMemoryRepository(SeedPatients())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	all[0].Name = "changed"
	again, _ := repo.List(ctx)
	assert.Equal(t, "João Silva", again[0].Name)

	p, err := repo.GetByID(ctx, "P-002")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", p.Name)
	assert.Len(t, p.VisitHistory, 2)

	missing, err := repo.GetByID(ctx, "P-999")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestContractMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContractMemoryRepository(SeedContracts())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	c, _ := repo.GetByID(ctx, entities.SelfPayContractID)
	assert.True(t, c.IsSelfPay())
	assert.Equal(t, 100.0, c.RepassePercent)

	missing, _ := repo.GetByID(ctx, "C-99")
	assert.Empty(t, missing.ID)
}

func TestBillingRecordMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBillingRecordMemoryRepository(SeedBillingRecords())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	r, _ := repo.GetBySchedulingID(ctx, "AG-8001")
	assert.Equal(t, 1200.0, r.OutstandingBalance())

	missing, _ := repo.GetBySchedulingID(ctx, "AG-0000")
	assert.Empty(t, missing.SchedulingID)
}

func TestAttendanceMemoryRepository(t *testing.T) {
	trend, err := NewAttendanceMemoryRepository(SeedAttendanceTrend()).MonthlyTrend(context.Background())
	require.NoError(t, err)
	require.Len(t, trend, 7)
	assert.Equal(t, entities.MonthlyVisits{Month: "Jan", Visits: 45}, trend[0])
	assert.Equal(t, entities.MonthlyVisits{Month: "Jul", Visits: 72}, trend[6])
}

func TestChargeMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewChargeMemoryRepository()

	_, err := repo.Create(ctx, entities.Charge{ID: "ch-1", RecordID: "AG-8001", Amount: 1200})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Charge{ID: "ch-2", RecordID: "AG-8003", Amount: 10})
	require.NoError(t, err)

	_, err = repo.Create(ctx, entities.Charge{ID: "ch-1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	got, _ := repo.GetByID(ctx, "ch-1")
	assert.Equal(t, 1200.0, got.Amount)

	list, err := repo.ListByRecordID(ctx, "AG-8001")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ch-1", list[0].ID)

	empty, err := repo.ListByRecordID(ctx, "AG-0000")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCaptureMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCaptureMemoryRepository()
	base := time.Date(2024, 5, 28, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, entities.Capture{ID: id, CapturedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].ID, list[1].ID, list[2].ID})

	got, _ := repo.GetByID(ctx, "b")
	assert.Equal(t, "b", got.ID)
	missing, _ := repo.GetByID(ctx, "z")
	assert.Empty(t, missing.ID)
}
