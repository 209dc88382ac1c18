package usecase

import (
	"time"

	"meditrack_pro/internal/analytics"
	"meditrack_pro/internal/domain/entities"
)

// ClinicSettings are the thresholds shared by the use cases. Zero fields take
// the analytics defaults.
type ClinicSettings struct {
	SelfPayContractID     string
	OverdueThresholdDays  int
	CriticalThresholdDays int
	SummaryTTL            time.Duration
}

func (s ClinicSettings) withDefaults() ClinicSettings {
	if s.SelfPayContractID == "" {
		s.SelfPayContractID = entities.SelfPayContractID
	}
	if s.OverdueThresholdDays <= 0 {
		s.OverdueThresholdDays = analytics.DefaultOverdueThresholdDays
	}
	if s.CriticalThresholdDays <= 0 {
		s.CriticalThresholdDays = analytics.DefaultCriticalThresholdDays
	}
	if s.SummaryTTL <= 0 {
		s.SummaryTTL = 24 * time.Hour
	}
	return s
}
