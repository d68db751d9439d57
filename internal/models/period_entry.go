package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// PeriodEntry is one user-recorded period occurrence. Entries are persisted
// together as a single sorted collection, so the struct carries JSON tags
// matching the stored blob layout.
type PeriodEntry struct {
	ID            string    `json:"id"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	FlowIntensity string    `json:"flowIntensity"`
	Symptoms      []string  `json:"symptoms"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func IsKnownFlowIntensity(flow string) bool {
	switch flow {
	case FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}
