package entities

// MonthlyVisits is one point of the attendance trend chart.
type MonthlyVisits struct {
	Month  string `json:"month"`
	Visits int    `json:"visits"`
}
