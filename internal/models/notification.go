package models

import "time"

const (
	NotificationPeriodStart = "period_start"
	NotificationPeriodEnd   = "period_end"
	NotificationOvulation   = "ovulation"
	NotificationPMS         = "pms"
	NotificationCustom      = "custom"
)

// NotificationData is one scheduled partner reminder. The id is derived from
// the scheduled instant and type, so rescheduling the same reminder upserts
// instead of duplicating.
type NotificationData struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	ScheduledDate time.Time `json:"scheduledDate"`
	IsSent        bool      `json:"isSent"`
	CreatedAt     time.Time `json:"createdAt"`
}
