package store

import (
	"errors"
	"testing"
	"time"

	"github.com/flowbro-app/flowbro/internal/models"
)

type memoryKV struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string]string)}
}

func (kv *memoryKV) Get(key string) (string, bool, error) {
	if kv.getErr != nil {
		return "", false, kv.getErr
	}
	value, found := kv.values[key]
	return value, found, nil
}

func (kv *memoryKV) Set(key string, value string) error {
	if kv.setErr != nil {
		return kv.setErr
	}
	kv.values[key] = value
	return nil
}

func (kv *memoryKV) Remove(key string) error {
	delete(kv.values, key)
	return nil
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func TestPeriodEntryRoundTrip(t *testing.T) {
	t.Parallel()

	kv := newMemoryKV()
	records := NewRecordStore(kv)

	entry := models.PeriodEntry{
		ID:            "period_1",
		StartDate:     mustDay(t, "2026-02-20"),
		EndDate:       mustDay(t, "2026-02-24"),
		FlowIntensity: models.FlowHeavy,
		Symptoms:      []string{"cramps", "headache"},
		Notes:         "rough week",
		CreatedAt:     time.Date(2026, time.February, 20, 8, 30, 0, 0, time.UTC),
	}
	if err := records.SavePeriodEntry(entry); err != nil {
		t.Fatalf("SavePeriodEntry returned error: %v", err)
	}

	loaded := records.GetPeriodEntries()
	if len(loaded) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(loaded))
	}

	got := loaded[0]
	if got.ID != entry.ID || got.FlowIntensity != entry.FlowIntensity || got.Notes != entry.Notes {
		t.Fatalf("expected %+v, got %+v", entry, got)
	}
	if !got.StartDate.Equal(entry.StartDate) || !got.EndDate.Equal(entry.EndDate) || !got.CreatedAt.Equal(entry.CreatedAt) {
		t.Fatal("expected date fields rehydrated to equivalent instants")
	}
	if len(got.Symptoms) != 2 || got.Symptoms[0] != "cramps" || got.Symptoms[1] != "headache" {
		t.Fatalf("expected symptoms preserved in order, got %v", got.Symptoms)
	}
}

func TestSavePeriodEntry_UpsertAndSort(t *testing.T) {
	t.Parallel()

	records := NewRecordStore(newMemoryKV())

	later := models.PeriodEntry{ID: "b", StartDate: mustDay(t, "2026-02-20"), EndDate: mustDay(t, "2026-02-24")}
	earlier := models.PeriodEntry{ID: "a", StartDate: mustDay(t, "2026-01-20"), EndDate: mustDay(t, "2026-01-24")}

	if err := records.SavePeriodEntry(later); err != nil {
		t.Fatalf("SavePeriodEntry returned error: %v", err)
	}
	if err := records.SavePeriodEntry(earlier); err != nil {
		t.Fatalf("SavePeriodEntry returned error: %v", err)
	}

	loaded := records.GetPeriodEntries()
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].ID != "a" || loaded[1].ID != "b" {
		t.Fatalf("expected ascending start-date order a,b - got %s,%s", loaded[0].ID, loaded[1].ID)
	}

	// Same id replaces in place.
	later.Notes = "edited"
	if err := records.SavePeriodEntry(later); err != nil {
		t.Fatalf("SavePeriodEntry returned error: %v", err)
	}
	loaded = records.GetPeriodEntries()
	if len(loaded) != 2 {
		t.Fatalf("expected upsert, got %d entries", len(loaded))
	}
	if loaded[1].Notes != "edited" {
		t.Fatalf("expected edited notes, got %q", loaded[1].Notes)
	}
}

func TestDeletePeriodEntry_SilentWhenMissing(t *testing.T) {
	t.Parallel()

	records := NewRecordStore(newMemoryKV())
	entry := models.PeriodEntry{ID: "a", StartDate: mustDay(t, "2026-01-20"), EndDate: mustDay(t, "2026-01-24")}
	if err := records.SavePeriodEntry(entry); err != nil {
		t.Fatalf("SavePeriodEntry returned error: %v", err)
	}

	if err := records.DeletePeriodEntry("missing"); err != nil {
		t.Fatalf("expected silent no-op for unknown id, got %v", err)
	}
	if got := records.GetPeriodEntries(); len(got) != 1 {
		t.Fatalf("expected collection unchanged, got %d entries", len(got))
	}

	if err := records.DeletePeriodEntry("a"); err != nil {
		t.Fatalf("DeletePeriodEntry returned error: %v", err)
	}
	if got := records.GetPeriodEntries(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d entries", len(got))
	}
}

func TestGetPeriodEntries_FailSoft(t *testing.T) {
	t.Parallel()

	// Storage failure degrades to empty.
	kv := newMemoryKV()
	kv.getErr = errors.New("disk gone")
	if got := NewRecordStore(kv).GetPeriodEntries(); len(got) != 0 {
		t.Fatalf("expected empty on storage failure, got %d entries", len(got))
	}

	// Corrupt blob degrades to empty.
	kv = newMemoryKV()
	kv.values["period_entries"] = "{not json"
	if got := NewRecordStore(kv).GetPeriodEntries(); len(got) != 0 {
		t.Fatalf("expected empty on decode failure, got %d entries", len(got))
	}
}

func TestAppSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	records := NewRecordStore(newMemoryKV())
	if records.GetAppSettings() != nil {
		t.Fatal("expected absent settings before first save")
	}

	lastStart := mustDay(t, "2026-02-20")
	settings := models.DefaultAppSettings()
	settings.CycleLength = 30
	settings.LastPeriodStart = &lastStart
	settings.PartnerNotifications.PartnerName = "Sam"

	if err := records.SaveAppSettings(settings); err != nil {
		t.Fatalf("SaveAppSettings returned error: %v", err)
	}

	loaded := records.GetAppSettings()
	if loaded == nil {
		t.Fatal("expected settings after save")
	}
	if loaded.CycleLength != 30 || loaded.PartnerNotifications.PartnerName != "Sam" {
		t.Fatalf("unexpected settings %+v", loaded)
	}
	if loaded.LastPeriodStart == nil || !loaded.LastPeriodStart.Equal(lastStart) {
		t.Fatal("expected lastPeriodStart rehydrated")
	}
}

func TestNotificationRoundTrip(t *testing.T) {
	t.Parallel()

	records := NewRecordStore(newMemoryKV())

	notification := models.NotificationData{
		ID:            "notification_1_period_start",
		Type:          models.NotificationPeriodStart,
		Title:         "Period Reminder - 1 day to go",
		Message:       "soon",
		ScheduledDate: time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := records.SaveNotification(notification); err != nil {
		t.Fatalf("SaveNotification returned error: %v", err)
	}

	// Upsert by id.
	notification.IsSent = true
	if err := records.SaveNotification(notification); err != nil {
		t.Fatalf("SaveNotification returned error: %v", err)
	}

	loaded := records.GetNotifications()
	if len(loaded) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(loaded))
	}
	if !loaded[0].IsSent {
		t.Fatal("expected upserted isSent flag")
	}
	if !loaded[0].ScheduledDate.Equal(notification.ScheduledDate) {
		t.Fatal("expected scheduledDate rehydrated")
	}

	if err := records.DeleteNotification(notification.ID); err != nil {
		t.Fatalf("DeleteNotification returned error: %v", err)
	}
	if got := records.GetNotifications(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}
}
