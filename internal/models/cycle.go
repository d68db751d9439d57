package models

import "time"

// CycleData is a derived view of one cycle span. It is constructed per query
// and never persisted.
type CycleData struct {
	ID            string    `json:"id"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Length        int       `json:"length"`
	AverageLength int       `json:"averageLength"`
	IsPredicted   bool      `json:"isPredicted"`
}
