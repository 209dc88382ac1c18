package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"meditrack_pro/internal/analytics"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/logger"

	"go.uber.org/zap"
)

const (
	summaryUnavailableText = "Análise indisponível no momento."
	summaryErrorText       = "Erro ao processar insights financeiros."
	reviewHintOptimized    = "Excelente! Estrutura de prazos está otimizada para o próximo ciclo."

	financialSummaryInstruction = `Você é um gestor financeiro de clínica médica.
Sua tarefa é gerar um "Resumo IA" em 3 pontos curtos e muito claros:
1. Saúde do Fluxo de Caixa (analise prazos de reembolso e % de repasse).
2. Concentração de Pacientes (quais convênios trazem mais volume vs rentabilidade).
3. Sugestão estratégica para maximizar o lucro imediato (ex: priorizar atendimentos particulares ou convênios com melhor repasse).
Responda de forma direta e profissional em Português Brasileiro.`
	financialSummaryTemperature = 0.3
)

// RankedContract is a contract with its ranking score.
type RankedContract struct {
	entities.Contract
	Score float64
}

// DashboardStats feeds the dashboard cards, ranking table and trend chart.
type DashboardStats struct {
	TotalPatients     int
	Profitability     analytics.Profitability
	RankedContracts   []RankedContract
	BestContract      *entities.Contract
	CriticalContracts []entities.Contract
	MaxTurnaroundDays int
	ReviewHint        string
	AttendanceTrend   []entities.MonthlyVisits
}

// AISummary is the "Resumo IA" card. Fallback marks a canned text.
type AISummary struct {
	Text     string
	Fallback bool
}

type IDashboardUseCase interface {
	GetStats(ctx context.Context) (DashboardStats, error)
	GetAISummary(ctx context.Context) (AISummary, error)
}

type DashboardUseCase struct {
	patients   interfaces.IPatientRepository
	contracts  interfaces.IContractRepository
	attendance interfaces.IAttendanceRepository
	generator  interfaces.ITextGenerator
	settings   ClinicSettings
	log        *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	patients interfaces.IPatientRepository,
	contracts interfaces.IContractRepository,
	attendance interfaces.IAttendanceRepository,
	generator interfaces.ITextGenerator,
	settings ClinicSettings,
	log *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		patients:   patients,
		contracts:  contracts,
		attendance: attendance,
		generator:  generator,
		settings:   settings.withDefaults(),
		log:        logger.Component(log, "dashboard.usecase"),
	}
}

func (u *DashboardUseCase) GetStats(ctx context.Context) (DashboardStats, error) {
	patients, err := u.patients.List(ctx)
	if err != nil {
		u.log.Error("list patients failed", zap.Error(err))
		return DashboardStats{}, err
	}
	contracts, err := u.contracts.List(ctx)
	if err != nil {
		u.log.Error("list contracts failed", zap.Error(err))
		return DashboardStats{}, err
	}

	trend := []entities.MonthlyVisits{}
	if u.attendance != nil {
		trend, err = u.attendance.MonthlyTrend(ctx)
		if err != nil {
			u.log.Error("load attendance trend failed", zap.Error(err))
			return DashboardStats{}, err
		}
	}

	ranked := analytics.RankContracts(contracts)
	rankedWithScore := make([]RankedContract, 0, len(ranked))
	for _, c := range ranked {
		rankedWithScore = append(rankedWithScore, RankedContract{Contract: c, Score: analytics.Score(c)})
	}

	stats := DashboardStats{
		TotalPatients:     len(patients),
		Profitability:     analytics.ComputeProfitability(patients, u.settings.SelfPayContractID),
		RankedContracts:   rankedWithScore,
		CriticalContracts: analytics.CriticalContracts(contracts, u.settings.CriticalThresholdDays),
		MaxTurnaroundDays: analytics.MaxTurnaround(contracts),
		AttendanceTrend:   trend,
	}
	if best, ok := analytics.BestContract(ranked, u.settings.SelfPayContractID); ok {
		stats.BestContract = &best
	}
	stats.ReviewHint = reviewHint(stats.CriticalContracts)

	u.log.Debug("stats computed",
		zap.Int("patients", stats.TotalPatients),
		zap.Int("contracts", len(contracts)),
		zap.Int("critical", len(stats.CriticalContracts)),
	)
	return stats, nil
}

func reviewHint(critical []entities.Contract) string {
	if len(critical) == 0 {
		return reviewHintOptimized
	}
	return fmt.Sprintf("Revisar contratos com %s para reduzir o gap de %d dias.", critical[0].Name, critical[0].PrazoDias)
}

// GetAISummary never fails on the generator: a failure becomes the fallback text.
// Repository errors are still returned.
func (u *DashboardUseCase) GetAISummary(ctx context.Context) (AISummary, error) {
	patients, err := u.patients.List(ctx)
	if err != nil {
		return AISummary{}, err
	}
	if len(patients) == 0 {
		return AISummary{}, nil
	}
	contracts, err := u.contracts.List(ctx)
	if err != nil {
		return AISummary{}, err
	}
	if u.generator == nil {
		u.log.Warn("text generator not configured")
		return AISummary{Text: summaryErrorText, Fallback: true}, nil
	}

	temperature := financialSummaryTemperature
	resp, err := u.generator.Generate(ctx, entities.TextGenerationRequest{
		Prompt:            financialSummaryPrompt(patients, contracts),
		SystemInstruction: financialSummaryInstruction,
		Temperature:       &temperature,
		ResponseFormat:    entities.ResponseFormatText,
	})
	if err != nil {
		u.log.Warn("financial summary generation failed", zap.Error(err))
		return AISummary{Text: summaryErrorText, Fallback: true}, nil
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return AISummary{Text: summaryUnavailableText, Fallback: true}, nil
	}
	return AISummary{Text: text}, nil
}

func financialSummaryPrompt(patients []entities.Patient, contracts []entities.Contract) string {
	names := make(map[string]string, len(contracts))
	for _, c := range contracts {
		names[c.ID] = c.Name
	}

	patientData := make([]string, 0, len(patients))
	for _, p := range patients {
		contractName := names[p.ContractID]
		if contractName == "" {
			contractName = "Não informado"
		}
		patientData = append(patientData, fmt.Sprintf("%s (Convênio: %s)", p.Name, contractName))
	}

	financialData := make([]string, 0, len(contracts))
	for _, c := range contracts {
		financialData = append(financialData, fmt.Sprintf("%s: Repasse %s%%, Reembolso em %d dias",
			c.Name, strconv.FormatFloat(c.RepassePercent, 'f', -1, 64), c.PrazoDias))
	}

	return fmt.Sprintf("Analise a situação da clínica. Dados de pacientes: %s. Regras de Convênios: %s",
		strings.Join(patientData, "; "), strings.Join(financialData, "; "))
}
