package analytics

import (
	"sort"

	"meditrack_pro/internal/domain/entities"
)

// DefaultCriticalThresholdDays is the turnaround above which a contract is flagged.
const DefaultCriticalThresholdDays = 30

// Profitability is the share of self-pay patients in the patient base.
type Profitability struct {
	SelfPayCount         int     `json:"self_pay_count"`
	ProfitabilityPercent float64 `json:"profitability_percent"`
}

// ComputeProfitability counts patients on selfPayContractID. The percentage is 0
// for an empty patient list.
func ComputeProfitability(patients []entities.Patient, selfPayContractID string) Profitability {
	count := 0
	for _, p := range patients {
		if p.ContractID == selfPayContractID {
			count++
		}
	}
	if len(patients) == 0 {
		return Profitability{}
	}
	return Profitability{
		SelfPayCount:         count,
		ProfitabilityPercent: float64(count) / float64(len(patients)) * 100,
	}
}

// Score ranks contracts by reimbursement share penalized by half the turnaround.
func Score(c entities.Contract) float64 {
	return c.RepassePercent - float64(c.PrazoDias)/2
}

// RankContracts returns a copy of contracts sorted by Score, highest first.
// Contracts with equal scores keep their input order.
func RankContracts(contracts []entities.Contract) []entities.Contract {
	ranked := make([]entities.Contract, len(contracts))
	copy(ranked, contracts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i]) > Score(ranked[j])
	})
	return ranked
}

// BestContract picks the highest ranked contract that is not the self-pay one.
// When only self-pay entries exist it falls back to ranked[0]; ok is false only
// for an empty list.
func BestContract(ranked []entities.Contract, selfPayContractID string) (entities.Contract, bool) {
	for _, c := range ranked {
		if c.ID != selfPayContractID {
			return c, true
		}
	}
	if len(ranked) == 0 {
		return entities.Contract{}, false
	}
	return ranked[0], true
}

// CriticalContracts keeps, in input order, contracts with PrazoDias strictly
// above thresholdDays.
func CriticalContracts(contracts []entities.Contract, thresholdDays int) []entities.Contract {
	critical := make([]entities.Contract, 0)
	for _, c := range contracts {
		if c.PrazoDias > thresholdDays {
			critical = append(critical, c)
		}
	}
	return critical
}

// MaxTurnaround is the longest PrazoDias, 0 for no contracts.
func MaxTurnaround(contracts []entities.Contract) int {
	maxDays := 0
	for i, c := range contracts {
		if i == 0 || c.PrazoDias > maxDays {
			maxDays = c.PrazoDias
		}
	}
	return maxDays
}
