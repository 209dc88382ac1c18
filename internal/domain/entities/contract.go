package entities

import "strings"

// SelfPayContractID identifies the synthetic "Particular" contract.
const SelfPayContractID = "C-00"

// ContractStatus is the lifecycle status of a convênio agreement.
type ContractStatus string

const (
	ContractStatusAtivo     ContractStatus = "Ativo"
	ContractStatusEmAnalise ContractStatus = "Em análise"
	ContractStatusSuspenso  ContractStatus = "Suspenso"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusAtivo, ContractStatusEmAnalise, ContractStatusSuspenso:
		return true
	}
	return false
}

func ParseContractStatus(raw string) (ContractStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range []ContractStatus{ContractStatusAtivo, ContractStatusEmAnalise, ContractStatusSuspenso} {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// Contract is an insurance-plan agreement (convênio).
//
// Domain notes:
//   - RepassePercent (0..100) is the share of the billed value the contract pays back.
//   - PrazoDias is the reimbursement turnaround in days.
//   - The self-pay contract has RepassePercent = 100 and PrazoDias = 0.
type Contract struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Coverage       string         `json:"coverage"`
	RepassePercent float64        `json:"repasse_percent"`
	PrazoDias      int            `json:"prazo_dias"`
	Status         ContractStatus `json:"status"`
}

func (c Contract) IsSelfPay() bool {
	return c.ID == SelfPayContractID
}
