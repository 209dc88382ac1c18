package repository

import (
	"context"
	"sort"
	"sync"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
)

// Memory repositories back the default data source (DATA_SOURCE=memory).
// Reads return copies; not-found lookups return the zero value like the
// DynamoDB repositories do.

type PatientMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Patient
}

var _ interfaces.IPatientRepository = (*PatientMemoryRepository)(nil)

func NewPatientMemoryRepository(items []entities.Patient) *PatientMemoryRepository {
	return &PatientMemoryRepository{items: items}
}

func (r *PatientMemoryRepository) List(ctx context.Context) ([]entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Patient(nil), r.items...), nil
}

func (r *PatientMemoryRepository) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Patient{}, nil
}

type ContractMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Contract
}

var _ interfaces.IContractRepository = (*ContractMemoryRepository)(nil)

func NewContractMemoryRepository(items []entities.Contract) *ContractMemoryRepository {
	return &ContractMemoryRepository{items: items}
}

func (r *ContractMemoryRepository) List(ctx context.Context) ([]entities.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Contract(nil), r.items...), nil
}

func (r *ContractMemoryRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Contract{}, nil
}

type BillingRecordMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.BillingRecord
}

var _ interfaces.IBillingRecordRepository = (*BillingRecordMemoryRepository)(nil)

func NewBillingRecordMemoryRepository(items []entities.BillingRecord) *BillingRecordMemoryRepository {
	return &BillingRecordMemoryRepository{items: items}
}

func (r *BillingRecordMemoryRepository) List(ctx context.Context) ([]entities.BillingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.BillingRecord(nil), r.items...), nil
}

func (r *BillingRecordMemoryRepository) GetBySchedulingID(ctx context.Context, schedulingID string) (entities.BillingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.items {
		if rec.SchedulingID == schedulingID {
			return rec, nil
		}
	}
	return entities.BillingRecord{}, nil
}

type AttendanceMemoryRepository struct {
	trend []entities.MonthlyVisits
}

var _ interfaces.IAttendanceRepository = (*AttendanceMemoryRepository)(nil)

func NewAttendanceMemoryRepository(trend []entities.MonthlyVisits) *AttendanceMemoryRepository {
	return &AttendanceMemoryRepository{trend: trend}
}

func (r *AttendanceMemoryRepository) MonthlyTrend(ctx context.Context) ([]entities.MonthlyVisits, error) {
	return append([]entities.MonthlyVisits(nil), r.trend...), nil
}

type ChargeMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Charge
}

var _ interfaces.IChargeRepository = (*ChargeMemoryRepository)(nil)

func NewChargeMemoryRepository() *ChargeMemoryRepository {
	return &ChargeMemoryRepository{items: make(map[string]entities.Charge)}
}

func (r *ChargeMemoryRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[c.ID]; exists {
		return entities.Charge{}, ErrAlreadyExists
	}
	r.items[c.ID] = c
	return c, nil
}

func (r *ChargeMemoryRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *ChargeMemoryRepository) ListByRecordID(ctx context.Context, recordID string) ([]entities.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Charge, 0)
	for _, c := range r.items {
		if c.RecordID == recordID {
			out = append(out, c)
		}
	}
	return out, nil
}

type CaptureMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Capture
}

var _ interfaces.ICaptureRepository = (*CaptureMemoryRepository)(nil)

func NewCaptureMemoryRepository() *CaptureMemoryRepository {
	return &CaptureMemoryRepository{items: make(map[string]entities.Capture)}
}

func (r *CaptureMemoryRepository) Create(ctx context.Context, c entities.Capture) (entities.Capture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[c.ID]; exists {
		return entities.Capture{}, ErrAlreadyExists
	}
	r.items[c.ID] = c
	return c, nil
}

func (r *CaptureMemoryRepository) GetByID(ctx context.Context, id string) (entities.Capture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

// List returns the captures newest first.
func (r *CaptureMemoryRepository) List(ctx context.Context) ([]entities.Capture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Capture, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CapturedAt.Equal(out[j].CapturedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})
	return out, nil
}
