package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/flowbro-app/flowbro/internal/models"
	"github.com/flowbro-app/flowbro/internal/security"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationStore is the record-store surface the scheduler needs.
type NotificationStore interface {
	GetAppSettings() *models.AppSettings
	GetNotifications() []models.NotificationData
	SaveNotification(notification models.NotificationData) error
	DeleteNotification(id string) error
}

// CyclePredictor supplies the next-period prediction the reminder triggers
// hang off. Ovulation and PMS triggers are fixed offsets from it.
type CyclePredictor interface {
	NextPeriodDate() *time.Time
}

// Delivery is the notification-delivery collaborator. Handles returned by
// ScheduleAt are opaque to the scheduler.
type Delivery interface {
	RequestPermission() (bool, error)
	ScheduleAt(title string, body string, fireAt time.Time) (string, error)
	CancelAll() error
}

// NotificationService turns cycle predictions and partner preferences into
// scheduled reminders. Scheduling is a full replace: every pass wipes prior
// registrations and records before creating the new batch.
type NotificationService struct {
	records  NotificationStore
	delivery Delivery
	cycles   CyclePredictor
	now      func() time.Time
}

// NewNotificationService builds a scheduler. A nil clock means time.Now.
func NewNotificationService(records NotificationStore, delivery Delivery, cycles CyclePredictor, clock func() time.Time) *NotificationService {
	if clock == nil {
		clock = time.Now
	}
	return &NotificationService{
		records:  records,
		delivery: delivery,
		cycles:   cycles,
		now:      clock,
	}
}

func (service *NotificationService) RequestPermission() (bool, error) {
	return service.delivery.RequestPermission()
}

// SchedulePartnerNotifications rebuilds the full reminder set and returns how
// many notifications were stored. It is a no-op when partner notifications
// are disabled or no prediction exists. Only strictly-future trigger dates
// are scheduled. Delivery registration failures are logged per notification
// and never abort the pass; the record is still stored best-effort.
func (service *NotificationService) SchedulePartnerNotifications() int {
	settings := service.records.GetAppSettings()
	if settings == nil || !settings.PartnerNotifications.Enabled {
		return 0
	}
	partner := settings.PartnerNotifications

	next := service.cycles.NextPeriodDate()
	if next == nil {
		return 0
	}

	service.ClearAllNotifications()

	now := service.now()
	scheduled := 0

	if partner.NotificationTypes.PeriodStart {
		for _, daysBefore := range partner.ReminderDays {
			triggerDate := next.AddDate(0, 0, -daysBefore)
			if !triggerDate.After(now) {
				continue
			}

			message := partner.CustomMessages.PeriodStart
			if message == "" {
				message = defaultPeriodStartMessage(daysBefore)
			}
			if service.scheduleOne(models.NotificationPeriodStart, periodStartTitle(daysBefore), message, triggerDate) {
				scheduled++
			}
		}
	}

	if partner.NotificationTypes.Ovulation {
		triggerDate := next.AddDate(0, 0, -ovulationLeadDays)
		if triggerDate.After(now) {
			message := partner.CustomMessages.Ovulation
			if message == "" {
				message = "Your partner is in their ovulation period. Time to be extra supportive! 💕"
			}
			if service.scheduleOne(models.NotificationOvulation, "Ovulation Period", message, triggerDate) {
				scheduled++
			}
		}
	}

	if partner.NotificationTypes.PMS {
		triggerDate := next.AddDate(0, 0, -pmsLeadDays)
		if triggerDate.After(now) {
			message := partner.CustomMessages.PMS
			if message == "" {
				message = "PMS period is starting. Time for extra patience and understanding! 🌸"
			}
			if service.scheduleOne(models.NotificationPMS, "PMS Period Starting", message, triggerDate) {
				scheduled++
			}
		}
	}

	if partner.NotificationTypes.PeriodEnd {
		periodLength := settings.PeriodLength
		if periodLength <= 0 {
			periodLength = models.DefaultPeriodLength
		}
		triggerDate := next.AddDate(0, 0, periodLength)
		if triggerDate.After(now) {
			message := partner.CustomMessages.PeriodEnd
			if message == "" {
				message = defaultPeriodEndMessage(partner)
			}
			if service.scheduleOne(models.NotificationPeriodEnd, "Period Ending", message, triggerDate) {
				scheduled++
			}
		}
	}

	return scheduled
}

func (service *NotificationService) scheduleOne(notificationType string, title string, message string, fireAt time.Time) bool {
	notification := models.NotificationData{
		ID:            security.NotificationID(fireAt, notificationType),
		Type:          notificationType,
		Title:         title,
		Message:       message,
		ScheduledDate: fireAt,
		IsSent:        false,
		CreatedAt:     service.now(),
	}

	if _, err := service.delivery.ScheduleAt(title, message, fireAt); err != nil {
		slog.Error("delivery registration failed", "type", notificationType, "error", err)
	}

	if err := service.records.SaveNotification(notification); err != nil {
		slog.Error("store notification failed", "type", notificationType, "error", err)
		return false
	}
	return true
}

// ClearAllNotifications cancels every delivery registration and deletes all
// stored notification records.
func (service *NotificationService) ClearAllNotifications() {
	if err := service.delivery.CancelAll(); err != nil {
		slog.Error("cancel delivery registrations failed", "error", err)
	}

	for _, notification := range service.records.GetNotifications() {
		if err := service.records.DeleteNotification(notification.ID); err != nil {
			slog.Error("delete notification failed", "id", notification.ID, "error", err)
		}
	}
}

// UpcomingNotifications lists stored notifications scheduled strictly after
// now, ascending by schedule date.
func (service *NotificationService) UpcomingNotifications() []models.NotificationData {
	now := service.now()

	upcoming := make([]models.NotificationData, 0)
	for _, notification := range service.records.GetNotifications() {
		if notification.ScheduledDate.After(now) {
			upcoming = append(upcoming, notification)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledDate.Before(upcoming[j].ScheduledDate)
	})
	return upcoming
}

// MarkNotificationAsSent flips the pending→sent flag. Nothing calls this
// automatically on delivery; it is manual bookkeeping.
func (service *NotificationService) MarkNotificationAsSent(id string) error {
	for _, notification := range service.records.GetNotifications() {
		if notification.ID != id {
			continue
		}

		notification.IsSent = true
		if err := service.records.SaveNotification(notification); err != nil {
			return fmt.Errorf("save notification: %w", err)
		}
		return nil
	}
	return ErrNotificationNotFound
}

// TestNotification schedules a single ad-hoc notification five seconds out
// so the user can verify delivery works.
func (service *NotificationService) TestNotification() (models.NotificationData, error) {
	fireAt := service.now().Add(5 * time.Second)
	notification := models.NotificationData{
		ID:            security.NotificationID(fireAt, models.NotificationCustom),
		Type:          models.NotificationCustom,
		Title:         "Test Notification",
		Message:       "This is a test notification from FlowBro! 🔔",
		ScheduledDate: fireAt,
		IsSent:        false,
		CreatedAt:     service.now(),
	}

	if _, err := service.delivery.ScheduleAt(notification.Title, notification.Message, fireAt); err != nil {
		slog.Error("delivery registration failed", "type", notification.Type, "error", err)
	}

	if err := service.records.SaveNotification(notification); err != nil {
		return models.NotificationData{}, fmt.Errorf("save notification: %w", err)
	}
	return notification, nil
}

func periodStartTitle(daysBefore int) string {
	dayWord := "day"
	if daysBefore > 1 {
		dayWord = "days"
	}
	return fmt.Sprintf("Period Reminder - %d %s to go", daysBefore, dayWord)
}

func defaultPeriodStartMessage(daysBefore int) string {
	switch daysBefore {
	case 3:
		return "Period starts in 3 days! Time to stock up on comfort foods and plan some relaxing activities. 🍫"
	case 2:
		return "Period starts in 2 days! Consider getting some flowers or planning a cozy night in. 🌹"
	case 1:
		return "Period starts tomorrow! Time to be extra supportive and understanding. 💕"
	case 0:
		return "Period starts today! Be extra patient and caring. 💖"
	default:
		return "Period reminder - time to be supportive! 💕"
	}
}

func defaultPeriodEndMessage(partner models.PartnerNotificationSettings) string {
	pronouns := ResolvePronouns(partner)
	return fmt.Sprintf("%s period should be ending today. A little extra care still goes a long way! 💗", capitalizeFirst(pronouns.Possessive))
}

func capitalizeFirst(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
