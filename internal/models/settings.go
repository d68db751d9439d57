package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

const (
	PronounsTheyThem = "they/them"
	PronounsSheHer   = "she/her"
	PronounsHeHim    = "he/him"
	PronounsCustom   = "custom"
)

// NotificationTypes holds the independent per-type reminder toggles.
type NotificationTypes struct {
	PeriodStart bool `json:"periodStart"`
	PeriodEnd   bool `json:"periodEnd"`
	Ovulation   bool `json:"ovulation"`
	PMS         bool `json:"pms"`
}

// CustomMessages holds optional per-type message overrides. An empty string
// means the built-in default copy is used.
type CustomMessages struct {
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	Ovulation   string `json:"ovulation"`
	PMS         string `json:"pms"`
}

type PartnerNotificationSettings struct {
	Enabled           bool              `json:"enabled"`
	ReminderDays      []int             `json:"reminderDays"`
	NotificationTypes NotificationTypes `json:"notificationTypes"`
	CustomMessages    CustomMessages    `json:"customMessages"`
	PartnerName       string            `json:"partnerName"`
	Pronouns          string            `json:"pronouns"`
	CustomPronouns    string            `json:"customPronouns,omitempty"`
}

// AppSettings is the singleton configuration record. LastPeriodStart is a
// cached convenience value only; the entry collection stays authoritative.
type AppSettings struct {
	CycleLength          int                         `json:"cycleLength"`
	PeriodLength         int                         `json:"periodLength"`
	LastPeriodStart      *time.Time                  `json:"lastPeriodStart,omitempty"`
	PartnerNotifications PartnerNotificationSettings `json:"partnerNotifications"`
	NotificationsEnabled bool                        `json:"notificationsEnabled"`
}

// DefaultAppSettings returns the settings created on first access.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		CycleLength:          DefaultCycleLength,
		PeriodLength:         DefaultPeriodLength,
		NotificationsEnabled: true,
		PartnerNotifications: PartnerNotificationSettings{
			Enabled:      false,
			ReminderDays: []int{3, 1},
			NotificationTypes: NotificationTypes{
				PeriodStart: true,
			},
			Pronouns: PronounsTheyThem,
		},
	}
}
