package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/flowbro-app/flowbro/internal/models"
	"github.com/flowbro-app/flowbro/internal/security"
)

const (
	ovulationLeadDays = 14
	pmsLeadDays       = 5
)

var (
	ErrEntryNotFound        = errors.New("period entry not found")
	ErrEndBeforeStart       = errors.New("end date before start date")
	ErrUnknownFlowIntensity = errors.New("unknown flow intensity")
)

// EntryStore is the record-store surface the tracker needs. Reads are
// fail-soft and never error; writes replace the whole collection.
type EntryStore interface {
	GetPeriodEntries() []models.PeriodEntry
	SavePeriodEntry(entry models.PeriodEntry) error
	SavePeriodEntries(entries []models.PeriodEntry) error
	GetAppSettings() *models.AppSettings
	SaveAppSettings(settings models.AppSettings) error
}

// TrackingService derives cycle predictions from the stored entry collection
// and owns entry/settings mutations. Derivations are recomputed from the full
// entry list on every call; nothing is cached.
type TrackingService struct {
	records EntryStore
	now     func() time.Time
}

// NewTrackingService builds a tracker. A nil clock means time.Now.
func NewTrackingService(records EntryStore, clock func() time.Time) *TrackingService {
	if clock == nil {
		clock = time.Now
	}
	return &TrackingService{records: records, now: clock}
}

// Settings returns the stored settings, or the defaults when none exist yet.
func (service *TrackingService) Settings() models.AppSettings {
	settings := service.records.GetAppSettings()
	if settings == nil {
		return models.DefaultAppSettings()
	}
	return *settings
}

func (service *TrackingService) cycleLength() int {
	settings := service.records.GetAppSettings()
	if settings == nil || settings.CycleLength <= 0 {
		return models.DefaultCycleLength
	}
	return settings.CycleLength
}

func (service *TrackingService) latestEntry() (models.PeriodEntry, bool) {
	entries := sortedByStartDate(service.records.GetPeriodEntries())
	if len(entries) == 0 {
		return models.PeriodEntry{}, false
	}
	return entries[len(entries)-1], true
}

// NextPeriodDate predicts the next period start: latest entry start plus the
// configured cycle length. The anchor is the chronologically latest entry,
// not today, so out-of-order logging still predicts from the newest start.
func (service *TrackingService) NextPeriodDate() *time.Time {
	latest, ok := service.latestEntry()
	if !ok {
		return nil
	}

	next := dateOnly(latest.StartDate).AddDate(0, 0, service.cycleLength())
	return &next
}

func (service *TrackingService) OvulationDate() *time.Time {
	next := service.NextPeriodDate()
	if next == nil {
		return nil
	}

	ovulation := next.AddDate(0, 0, -ovulationLeadDays)
	return &ovulation
}

func (service *TrackingService) PMSStartDate() *time.Time {
	next := service.NextPeriodDate()
	if next == nil {
		return nil
	}

	pmsStart := next.AddDate(0, 0, -pmsLeadDays)
	return &pmsStart
}

// CalculateAverageCycleLength averages the start-to-start gaps between
// consecutive entries, rounded to the nearest day. Fewer than two entries
// yield the nominal 28.
func (service *TrackingService) CalculateAverageCycleLength(entries []models.PeriodEntry) int {
	if len(entries) < 2 {
		return models.DefaultCycleLength
	}

	sorted := sortedByStartDate(entries)
	totalDays := 0
	for index := 1; index < len(sorted); index++ {
		totalDays += daysBetween(sorted[index-1].StartDate, sorted[index].StartDate)
	}

	gapCount := len(sorted) - 1
	return int(math.Round(float64(totalDays) / float64(gapCount)))
}

func (service *TrackingService) CurrentCycle() *models.CycleData {
	entries := service.records.GetPeriodEntries()
	latest, ok := service.latestEntry()
	if !ok {
		return nil
	}

	cycleLength := service.cycleLength()
	start := dateOnly(latest.StartDate)
	cycle := models.CycleData{
		ID:            fmt.Sprintf("cycle_%d", start.Unix()),
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, cycleLength),
		Length:        cycleLength,
		AverageLength: service.CalculateAverageCycleLength(entries),
		IsPredicted:   true,
	}
	return &cycle
}

// CycleHistory reports one observed cycle per consecutive entry pair, with
// the actual start-to-start gap as its length.
func (service *TrackingService) CycleHistory() []models.CycleData {
	entries := service.records.GetPeriodEntries()
	if len(entries) < 2 {
		return make([]models.CycleData, 0)
	}

	sorted := sortedByStartDate(entries)
	averageLength := service.CalculateAverageCycleLength(entries)

	cycles := make([]models.CycleData, 0, len(sorted)-1)
	for index := 1; index < len(sorted); index++ {
		start := dateOnly(sorted[index-1].StartDate)
		end := dateOnly(sorted[index].StartDate)
		cycles = append(cycles, models.CycleData{
			ID:            fmt.Sprintf("cycle_%d", start.Unix()),
			StartDate:     start,
			EndDate:       end,
			Length:        daysBetween(start, end),
			AverageLength: averageLength,
			IsPredicted:   false,
		})
	}

	return cycles
}

// IsPeriodActive reports whether today falls strictly inside the latest
// entry's span. Both boundary days count as not active.
func (service *TrackingService) IsPeriodActive() bool {
	latest, ok := service.latestEntry()
	if !ok {
		return false
	}

	today := dateOnly(service.now())
	return today.After(dateOnly(latest.StartDate)) && today.Before(dateOnly(latest.EndDate))
}

func (service *TrackingService) DaysUntilNextPeriod() *int {
	next := service.NextPeriodDate()
	if next == nil {
		return nil
	}

	days := daysBetween(service.now(), *next)
	if days < 0 {
		days = 0
	}
	return &days
}

// DaysSinceLastPeriod may be negative when the latest stored start date is in
// the future.
func (service *TrackingService) DaysSinceLastPeriod() *int {
	latest, ok := service.latestEntry()
	if !ok {
		return nil
	}

	days := daysBetween(latest.StartDate, service.now())
	return &days
}

// CurrentCycleDay is the 1-based day index within the current cycle, or 0
// when today precedes the latest entry's start.
func (service *TrackingService) CurrentCycleDay() int {
	latest, ok := service.latestEntry()
	if !ok {
		return 0
	}

	today := dateOnly(service.now())
	start := dateOnly(latest.StartDate)
	if today.Before(start) {
		return 0
	}
	return daysBetween(start, today) + 1
}

// AddPeriodEntry validates and stores a new entry. The date-order invariant
// is enforced here only, not on stored data.
func (service *TrackingService) AddPeriodEntry(startDate time.Time, endDate time.Time, flowIntensity string, symptoms []string, notes string) (models.PeriodEntry, error) {
	if dateOnly(endDate).Before(dateOnly(startDate)) {
		return models.PeriodEntry{}, ErrEndBeforeStart
	}
	if !models.IsKnownFlowIntensity(flowIntensity) {
		return models.PeriodEntry{}, ErrUnknownFlowIntensity
	}

	id, err := security.NewEntryID(startDate)
	if err != nil {
		return models.PeriodEntry{}, err
	}

	if symptoms == nil {
		symptoms = make([]string, 0)
	}

	entry := models.PeriodEntry{
		ID:            id,
		StartDate:     startDate,
		EndDate:       endDate,
		FlowIntensity: flowIntensity,
		Symptoms:      symptoms,
		Notes:         notes,
		CreatedAt:     service.now(),
	}

	if err := service.records.SavePeriodEntry(entry); err != nil {
		return models.PeriodEntry{}, fmt.Errorf("save period entry: %w", err)
	}
	return entry, nil
}

// EntryUpdate carries a partial entry edit; nil fields keep prior values.
// The id and creation timestamp are immutable.
type EntryUpdate struct {
	StartDate     *time.Time
	EndDate       *time.Time
	FlowIntensity *string
	Symptoms      []string
	Notes         *string
}

func (service *TrackingService) UpdatePeriodEntry(id string, update EntryUpdate) (models.PeriodEntry, error) {
	entries := service.records.GetPeriodEntries()

	index := -1
	for candidate := range entries {
		if entries[candidate].ID == id {
			index = candidate
			break
		}
	}
	if index == -1 {
		return models.PeriodEntry{}, ErrEntryNotFound
	}

	entry := entries[index]
	if update.StartDate != nil {
		entry.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		entry.EndDate = *update.EndDate
	}
	if update.FlowIntensity != nil {
		entry.FlowIntensity = *update.FlowIntensity
	}
	if update.Symptoms != nil {
		entry.Symptoms = update.Symptoms
	}
	if update.Notes != nil {
		entry.Notes = *update.Notes
	}
	entries[index] = entry

	if err := service.records.SavePeriodEntries(entries); err != nil {
		return models.PeriodEntry{}, fmt.Errorf("save period entries: %w", err)
	}
	return entry, nil
}

// DeletePeriodEntry fails with ErrEntryNotFound for unknown ids, unlike the
// record store's silent delete.
func (service *TrackingService) DeletePeriodEntry(id string) error {
	entries := service.records.GetPeriodEntries()

	filtered := make([]models.PeriodEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			filtered = append(filtered, entry)
		}
	}
	if len(filtered) == len(entries) {
		return ErrEntryNotFound
	}

	if err := service.records.SavePeriodEntries(filtered); err != nil {
		return fmt.Errorf("save period entries: %w", err)
	}
	return nil
}

// SettingsUpdate carries a partial settings edit; nil fields keep prior
// values. LastPeriodStartSet distinguishes "clear" from "leave alone".
type SettingsUpdate struct {
	CycleLength          *int
	PeriodLength         *int
	LastPeriodStartSet   bool
	LastPeriodStart      *time.Time
	NotificationsEnabled *bool
	PartnerNotifications *models.PartnerNotificationSettings
}

// UpdateSettings shallow-merges the update over the current settings (or the
// defaults when none are stored) and overwrites the record wholesale.
func (service *TrackingService) UpdateSettings(update SettingsUpdate) (models.AppSettings, error) {
	settings := service.Settings()

	if update.CycleLength != nil {
		settings.CycleLength = *update.CycleLength
	}
	if update.PeriodLength != nil {
		settings.PeriodLength = *update.PeriodLength
	}
	if update.LastPeriodStartSet {
		settings.LastPeriodStart = update.LastPeriodStart
	}
	if update.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *update.NotificationsEnabled
	}
	if update.PartnerNotifications != nil {
		partner := *update.PartnerNotifications
		sort.Sort(sort.Reverse(sort.IntSlice(partner.ReminderDays)))
		settings.PartnerNotifications = partner
	}

	if err := service.records.SaveAppSettings(settings); err != nil {
		return models.AppSettings{}, fmt.Errorf("save app settings: %w", err)
	}
	return settings, nil
}

func sortedByStartDate(entries []models.PeriodEntry) []models.PeriodEntry {
	sorted := make([]models.PeriodEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return sorted
}
