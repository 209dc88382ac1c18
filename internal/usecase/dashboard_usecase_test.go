package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meditrack_pro/internal/domain/entities"
	mock_interfaces "meditrack_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_GetStats(t *testing.T) {
	t.Run("computes cards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		attendance := mock_interfaces.NewMockIAttendanceRepository(ctrl)
		uc := NewDashboardUseCase(patients, contracts, attendance, nil, ClinicSettings{}, nil)

		patients.EXPECT().List(gomock.Any()).Return(fixturePatients(), nil)
		contracts.EXPECT().List(gomock.Any()).Return(fixtureContracts(), nil)
		attendance.EXPECT().MonthlyTrend(gomock.Any()).Return([]entities.MonthlyVisits{{Month: "Jan", Visits: 45}}, nil)

		stats, err := uc.GetStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalPatients != 2 || stats.Profitability.SelfPayCount != 1 {
			t.Fatalf("unexpected counts: %+v", stats)
		}
		if stats.Profitability.ProfitabilityPercent != 50 {
			t.Fatalf("expected 50%%, got %v", stats.Profitability.ProfitabilityPercent)
		}
		if stats.BestContract == nil || stats.BestContract.ID != "C-03" {
			t.Fatalf("expected best C-03, got %+v", stats.BestContract)
		}
		if stats.RankedContracts[0].ID != "C-00" || stats.RankedContracts[0].Score != 100 {
			t.Fatalf("unexpected ranking head: %+v", stats.RankedContracts[0])
		}
		if len(stats.CriticalContracts) != 1 || stats.CriticalContracts[0].ID != "C-02" {
			t.Fatalf("unexpected critical contracts: %+v", stats.CriticalContracts)
		}
		if stats.MaxTurnaroundDays != 45 {
			t.Fatalf("expected 45, got %d", stats.MaxTurnaroundDays)
		}
		if stats.ReviewHint != "Revisar contratos com Amil Dental para reduzir o gap de 45 dias." {
			t.Fatalf("unexpected hint: %q", stats.ReviewHint)
		}
		if len(stats.AttendanceTrend) != 1 {
			t.Fatalf("expected trend, got %+v", stats.AttendanceTrend)
		}
	})

	t.Run("no critical contracts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewDashboardUseCase(patients, contracts, nil, nil, ClinicSettings{}, nil)

		patients.EXPECT().List(gomock.Any()).Return(nil, nil)
		contracts.EXPECT().List(gomock.Any()).Return(fixtureContracts()[:2], nil)

		stats, err := uc.GetStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.ReviewHint != reviewHintOptimized {
			t.Fatalf("unexpected hint: %q", stats.ReviewHint)
		}
		if stats.Profitability.ProfitabilityPercent != 0 {
			t.Fatalf("expected 0, got %v", stats.Profitability.ProfitabilityPercent)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		uc := NewDashboardUseCase(patients, nil, nil, nil, ClinicSettings{}, nil)

		patients.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.GetStats(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestDashboardUseCase_GetAISummary(t *testing.T) {
	t.Run("empty patient list skips generator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		gen := mock_interfaces.NewMockITextGenerator(ctrl)
		uc := NewDashboardUseCase(patients, nil, nil, gen, ClinicSettings{}, nil)

		patients.EXPECT().List(gomock.Any()).Return([]entities.Patient{}, nil)

		got, err := uc.GetAISummary(context.Background())
		if err != nil || got.Text != "" || got.Fallback {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("builds financial prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gen := mock_interfaces.NewMockITextGenerator(ctrl)
		uc := NewDashboardUseCase(patients, contracts, nil, gen, ClinicSettings{}, nil)

		patients.EXPECT().List(gomock.Any()).Return(fixturePatients(), nil)
		contracts.EXPECT().List(gomock.Any()).Return(fixtureContracts(), nil)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.TextGenerationRequest) (entities.TextGenerationResponse, error) {
				if !strings.Contains(req.Prompt, "João Silva (Convênio: Convênio Prata)") {
					t.Fatalf("prompt missing patient data: %s", req.Prompt)
				}
				if !strings.Contains(req.Prompt, "Amil Dental: Repasse 70%, Reembolso em 45 dias") {
					t.Fatalf("prompt missing contract data: %s", req.Prompt)
				}
				if req.Temperature == nil || *req.Temperature != 0.3 {
					t.Fatalf("expected temperature 0.3")
				}
				return entities.TextGenerationResponse{Text: "  1. Fluxo saudável.  "}, nil
			})

		got, err := uc.GetAISummary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Text != "1. Fluxo saudável." || got.Fallback {
			t.Fatalf("unexpected summary: %+v", got)
		}
	})

	t.Run("generator failure returns fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gen := mock_interfaces.NewMockITextGenerator(ctrl)
		uc := NewDashboardUseCase(patients, contracts, nil, gen, ClinicSettings{}, nil)

		patients.EXPECT().List(gomock.Any()).Return(fixturePatients(), nil)
		contracts.EXPECT().List(gomock.Any()).Return(fixtureContracts(), nil)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.TextGenerationResponse{}, errors.New("quota"))

		got, err := uc.GetAISummary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Text != summaryErrorText || !got.Fallback {
			t.Fatalf("unexpected summary: %+v", got)
		}
	})

	t.Run("empty answer returns unavailable text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		patients := mock_interfaces.NewMockIPatientRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gen := mock_interfaces.NewMockITextGenerator(ctrl)
		uc := NewDashboardUseCase(patients, contracts, nil, gen, ClinicSettings{}, nil)

		patients.EXPECT().List(gomock.Any()).Return(fixturePatients(), nil)
		contracts.EXPECT().List(gomock.Any()).Return(fixtureContracts(), nil)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.TextGenerationResponse{Text: " "}, nil)

		got, _ := uc.GetAISummary(context.Background())
		if got.Text != summaryUnavailableText || !got.Fallback {
			t.Fatalf("unexpected summary: %+v", got)
		}
	})
}
