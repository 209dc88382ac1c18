package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"meditrack_pro/internal/domain/entities"
	mock_interfaces "meditrack_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingRecord() entities.BillingRecord {
	return entities.BillingRecord{
		SchedulingID:  "AG-8001",
		PatientID:     "P-001",
		ContractName:  "Convênio Prata",
		PatientName:   "Ana Souza",
		Procedure:     "Tratamento Canal",
		TotalValue:    1200,
		PaidValue:     200,
		PaymentStatus: entities.PaymentStatusParcial,
	}
}

func TestChargeUseCase_ChargeOutstanding_Validations(t *testing.T) {
	t.Run("empty scheduling id", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil, PaymentSettings{}, nil)
		_, err := uc.ChargeOutstanding(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidSchedulingID) {
			t.Fatalf("expected ErrInvalidSchedulingID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil, PaymentSettings{}, nil)
		_, err := uc.ChargeOutstanding(context.Background(), "AG-8001", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil, PaymentSettings{}, nil)
		_, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
		uc := NewChargeUseCase(nil, records, nil, PaymentSettings{}, nil)

		_, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestChargeUseCase_ChargeOutstanding_RecordChecks(t *testing.T) {
	cases := []struct {
		name   string
		record entities.BillingRecord
		err    error
		want   error
	}{
		{name: "repository error", err: errors.New("db"), want: nil},
		{name: "record not found", record: entities.BillingRecord{}, want: ErrBillingRecordNotFound},
		{name: "already paid", record: entities.BillingRecord{SchedulingID: "AG-8001", TotalValue: 100, PaidValue: 100, PaymentStatus: entities.PaymentStatusPago}, want: ErrRecordAlreadyPaid},
		{name: "overpaid partial", record: entities.BillingRecord{SchedulingID: "AG-8001", TotalValue: 100, PaidValue: 150, PaymentStatus: entities.PaymentStatusParcial}, want: ErrNothingToCharge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIChargeRepository(ctrl)
			records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewChargeUseCase(repo, records, gateway, PaymentSettings{}, nil)

			records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(tc.record, tc.err)

			_, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`{"payment_method_id":"pix"}`))
			if tc.want == nil {
				if err == nil || err.Error() != "db" {
					t.Fatalf("expected db error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestChargeUseCase_ChargeOutstanding_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChargeRepository(ctrl)
		records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewChargeUseCase(repo, records, gateway, PaymentSettings{}, nil)

		records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(pendingRecord(), nil)
		repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return(nil, nil)

		_, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChargeRepository(ctrl)
		records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewChargeUseCase(repo, records, gateway, PaymentSettings{AccessToken: "APP_USR-1"}, nil)

		records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(pendingRecord(), nil)
		repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return(nil, nil)

		_, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestChargeUseCase_ChargeOutstanding_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIChargeRepository(ctrl)
			records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewChargeUseCase(repo, records, gateway, PaymentSettings{}, nil)

			records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(pendingRecord(), nil)
			repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return(nil, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChargeRepository(ctrl)
		records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewChargeUseCase(repo, records, gateway, PaymentSettings{}, nil)

		records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(pendingRecord(), nil)
		repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestChargeUseCase_ChargeOutstanding_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIChargeRepository(ctrl)
	records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(repo, records, gateway, PaymentSettings{AccessToken: "TEST-123"}, nil)
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(pendingRecord(), nil)
	repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return(nil, nil)

	var sent map[string]any
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			if err := json.Unmarshal(payload, &sent); err != nil {
				t.Fatalf("gateway received invalid json: %v", err)
			}
			return "991", "approved", json.RawMessage(`{"id":991,"status":"approved"}`), nil
		})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Charge) (entities.Charge, error) { return c, nil })

	// caller-provided amount is ignored
	got, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "991" || got.RecordID != "AG-8001" || got.Status != entities.ChargeStatusAprovado {
		t.Fatalf("unexpected charge: %+v", got)
	}
	if got.Amount != 1000 {
		t.Fatalf("expected amount 1000, got %v", got.Amount)
	}
	if !got.Date.Equal(fixed) {
		t.Fatalf("expected date %v, got %v", fixed, got.Date)
	}
	if sent["transaction_amount"] != float64(1000) {
		t.Fatalf("expected transaction_amount 1000, got %v", sent["transaction_amount"])
	}
	if sent["external_reference"] != "AG-8001" {
		t.Fatalf("expected external_reference AG-8001, got %v", sent["external_reference"])
	}
	payer, _ := sent["payer"].(map[string]any)
	if payer["email"] != "test_user_br@testuser.com" {
		t.Fatalf("expected sandbox payer email, got %v", payer)
	}
	if payer["first_name"] != "Ana Souza" || payer["type"] != "customer" {
		t.Fatalf("expected payer named after the patient, got %v", payer)
	}
	info, _ := sent["additional_info"].(map[string]any)
	items, _ := info["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one procedure item, got %v", info)
	}
	item, _ := items[0].(map[string]any)
	if item["title"] != "Tratamento Canal" || item["unit_price"] != float64(1000) {
		t.Fatalf("unexpected procedure item: %v", item)
	}
}

func TestChargeUseCase_ChargeOutstanding_SubtractsPreviousCharges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIChargeRepository(ctrl)
	records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
	uc := NewChargeUseCase(repo, records, nil, PaymentSettings{Mock: true}, nil)

	record := entities.BillingRecord{
		SchedulingID:  "AG-8002",
		PatientName:   "Bruno Lima",
		Procedure:     "Limpeza",
		TotalValue:    300,
		PaidValue:     100,
		PaymentStatus: entities.PaymentStatusParcial,
	}
	stored := []entities.Charge{{ID: "old-denied", RecordID: "AG-8002", Amount: 200, Status: entities.ChargeStatusNegado}}

	records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8002").Return(record, nil).Times(3)
	repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8002").DoAndReturn(
		func(_ context.Context, _ string) ([]entities.Charge, error) { return stored, nil }).Times(3)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Charge) (entities.Charge, error) {
			stored = append(stored, c)
			return c, nil
		}).Times(1)

	first, err := uc.ChargeOutstanding(context.Background(), "AG-8002", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Amount != 200 {
		t.Fatalf("expected first charge of 200, got %v", first.Amount)
	}

	for i := 0; i < 2; i++ {
		if _, err := uc.ChargeOutstanding(context.Background(), "AG-8002", nil); !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("charge %d: expected ErrNothingToCharge, got %v", i+2, err)
		}
	}
}

func TestChargeUseCase_ChargeOutstanding_ChargesOnlyTheRemainder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIChargeRepository(ctrl)
	records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
	uc := NewChargeUseCase(repo, records, nil, PaymentSettings{Mock: true}, nil)

	records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(pendingRecord(), nil)
	repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return([]entities.Charge{
		{ID: "p1", Amount: 250.10, Status: entities.ChargeStatusAprovado},
		{ID: "p2", Amount: 49.90, Status: entities.ChargeStatusPendente},
	}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Charge) (entities.Charge, error) { return c, nil })

	got, err := uc.ChargeOutstanding(context.Background(), "AG-8001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Amount != 700 {
		t.Fatalf("expected remainder of 700, got %v", got.Amount)
	}
}

func TestChargeUseCase_ChargeOutstanding_PreviousChargesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIChargeRepository(ctrl)
	records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
	uc := NewChargeUseCase(repo, records, nil, PaymentSettings{Mock: true}, nil)

	records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(pendingRecord(), nil)
	repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return(nil, errors.New("db"))

	if _, err := uc.ChargeOutstanding(context.Background(), "AG-8001", nil); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestMapGatewayError_PrefersMostSpecificFailure(t *testing.T) {
	err := mapGatewayError(errors.New(`{"status":400,"cause":[{"code":2034,"description":"Invalid users involved"}]}`))
	if !errors.Is(err, ErrPaymentGatewayInvalidUsers) {
		t.Fatalf("expected ErrPaymentGatewayInvalidUsers, got %v", err)
	}
}

func TestChargeUseCase_PayerDefaults(t *testing.T) {
	record := pendingRecord()

	t.Run("keeps an identified payer", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil, PaymentSettings{AccessToken: "TEST-1", TestPayerEmail: "cfg@test.com"}, nil)
		m := map[string]any{"payer": map[string]any{"id": 42, "first_name": "Titular"}}
		uc.ensurePayerDefaults(m, record)
		payer := m["payer"].(map[string]any)
		if payer["email"] != nil || payer["first_name"] != "Titular" {
			t.Fatalf("unexpected payer: %v", payer)
		}
	})

	t.Run("production token leaves payer anonymous", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil, PaymentSettings{AccessToken: "APP_USR-1"}, nil)
		m := map[string]any{}
		uc.ensurePayerDefaults(m, record)
		if _, identified := payerIdentity(m); identified {
			t.Fatalf("expected unidentified payer, got %v", m["payer"])
		}
	})

	t.Run("sandbox user id becomes email", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil, PaymentSettings{AccessToken: "TEST-1", TestPayerEmail: "buyer@test.com", TestPayerUserID: "777"}, nil)
		m := map[string]any{"payer": map[string]any{"id": float64(777)}}
		uc.normalizeSandboxPayerFromUserID(m)
		payer := m["payer"].(map[string]any)
		if payer["email"] != "buyer@test.com" || payer["id"] != nil {
			t.Fatalf("unexpected payer: %v", payer)
		}
	})
}

func TestChargeUseCase_ChargeOutstanding_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIChargeRepository(ctrl)
	records := mock_interfaces.NewMockIBillingRecordRepository(ctrl)
	uc := NewChargeUseCase(repo, records, nil, PaymentSettings{Mock: true}, nil)

	records.EXPECT().GetBySchedulingID(gomock.Any(), "AG-8001").Return(pendingRecord(), nil)
	repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Charge) (entities.Charge, error) { return c, nil })

	got, err := uc.ChargeOutstanding(context.Background(), "AG-8001", json.RawMessage(`not-json`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.ChargeStatusAprovado || got.ID == "" {
		t.Fatalf("unexpected charge: %+v", got)
	}
	if got.MPPayload["status_detail"] != "accredited" {
		t.Fatalf("expected mock provider payload, got %v", got.MPPayload)
	}
}

func TestChargeUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChargeRepository(ctrl)
		uc := NewChargeUseCase(repo, nil, nil, PaymentSettings{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Charge{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrChargeNotFound) {
			t.Fatalf("expected ErrChargeNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChargeRepository(ctrl)
		uc := NewChargeUseCase(repo, nil, nil, PaymentSettings{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Charge{ID: "c-1"}, nil)

		got, err := uc.GetByID(context.Background(), " c-1 ")
		if err != nil || got.ID != "c-1" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}

func TestChargeUseCase_ListByRecord(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil, PaymentSettings{}, nil)
		_, err := uc.ListByRecord(context.Background(), "")
		if !errors.Is(err, ErrInvalidSchedulingID) {
			t.Fatalf("expected ErrInvalidSchedulingID, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChargeRepository(ctrl)
		uc := NewChargeUseCase(repo, nil, nil, PaymentSettings{}, nil)

		older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByRecordID(gomock.Any(), "AG-8001").Return([]entities.Charge{
			{ID: "a", Date: older},
			{ID: "b", Date: older.Add(time.Hour)},
		}, nil)

		got, err := uc.ListByRecord(context.Background(), "AG-8001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "b" {
			t.Fatalf("expected newest first, got %+v", got)
		}
	})
}
