package response

import (
	"meditrack_pro/internal/analytics"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
)

type RankedContractResponse struct {
	entities.Contract
	Score float64 `json:"score"`
}

type DashboardStatsResponse struct {
	TotalPatients     int                      `json:"total_patients"`
	Profitability     analytics.Profitability  `json:"profitability"`
	RankedContracts   []RankedContractResponse `json:"ranked_contracts"`
	BestContract      *entities.Contract       `json:"best_contract"`
	CriticalContracts []entities.Contract      `json:"critical_contracts"`
	MaxTurnaroundDays int                      `json:"max_turnaround_days"`
	ReviewHint        string                   `json:"review_hint"`
	AttendanceTrend   []entities.MonthlyVisits `json:"attendance_trend"`
}

func FromDashboardStats(s usecase.DashboardStats) DashboardStatsResponse {
	ranked := make([]RankedContractResponse, len(s.RankedContracts))
	for i, rc := range s.RankedContracts {
		ranked[i] = RankedContractResponse{Contract: rc.Contract, Score: rc.Score}
	}
	critical := s.CriticalContracts
	if critical == nil {
		critical = []entities.Contract{}
	}
	trend := s.AttendanceTrend
	if trend == nil {
		trend = []entities.MonthlyVisits{}
	}
	return DashboardStatsResponse{
		TotalPatients:     s.TotalPatients,
		Profitability:     s.Profitability,
		RankedContracts:   ranked,
		BestContract:      s.BestContract,
		CriticalContracts: critical,
		MaxTurnaroundDays: s.MaxTurnaroundDays,
		ReviewHint:        s.ReviewHint,
		AttendanceTrend:   trend,
	}
}

// AISummaryResponse: an empty text with fallback=false means there is no data
// to summarize yet.
type AISummaryResponse struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

func FromAISummary(s usecase.AISummary) AISummaryResponse {
	return AISummaryResponse{Text: s.Text, Fallback: s.Fallback}
}
