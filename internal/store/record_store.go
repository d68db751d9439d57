package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/flowbro-app/flowbro/internal/models"
)

const (
	keyPeriodEntries = "period_entries"
	keyAppSettings   = "app_settings"
	keyNotifications = "notifications"
)

// KeyValue is the on-device storage contract the record store runs on.
type KeyValue interface {
	Get(key string) (value string, found bool, err error)
	Set(key string, value string) error
	Remove(key string) error
}

// RecordStore maps the three fixed collections (period entries, settings,
// notifications) onto key-value blobs. Reads are fail-soft: any storage or
// decode failure is logged and degrades to an empty/absent result, so callers
// cannot distinguish "no data" from "broken data" at this layer. Every write
// replaces the whole collection.
type RecordStore struct {
	kv KeyValue
}

func NewRecordStore(kv KeyValue) *RecordStore {
	return &RecordStore{kv: kv}
}

func (store *RecordStore) GetPeriodEntries() []models.PeriodEntry {
	entries := make([]models.PeriodEntry, 0)
	if !store.readCollection(keyPeriodEntries, &entries) {
		return make([]models.PeriodEntry, 0)
	}
	return entries
}

func (store *RecordStore) SavePeriodEntry(entry models.PeriodEntry) error {
	entries := store.GetPeriodEntries()

	replaced := false
	for index := range entries {
		if entries[index].ID == entry.ID {
			entries[index] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	return store.SavePeriodEntries(entries)
}

func (store *RecordStore) SavePeriodEntries(entries []models.PeriodEntry) error {
	sorted := make([]models.PeriodEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	return store.writeCollection(keyPeriodEntries, sorted)
}

// DeletePeriodEntry removes the entry with the given id. An unknown id is a
// silent no-op here; the service layer owns not-found reporting.
func (store *RecordStore) DeletePeriodEntry(id string) error {
	entries := store.GetPeriodEntries()
	filtered := make([]models.PeriodEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			filtered = append(filtered, entry)
		}
	}
	return store.writeCollection(keyPeriodEntries, filtered)
}

func (store *RecordStore) GetAppSettings() *models.AppSettings {
	raw, found, err := store.kv.Get(keyAppSettings)
	if err != nil {
		slog.Error("load app settings failed", "error", err)
		return nil
	}
	if !found {
		return nil
	}

	settings := models.AppSettings{}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		slog.Error("decode app settings failed", "error", err)
		return nil
	}
	return &settings
}

func (store *RecordStore) SaveAppSettings(settings models.AppSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode app settings: %w", err)
	}
	return store.kv.Set(keyAppSettings, string(raw))
}

func (store *RecordStore) GetNotifications() []models.NotificationData {
	notifications := make([]models.NotificationData, 0)
	if !store.readCollection(keyNotifications, &notifications) {
		return make([]models.NotificationData, 0)
	}
	return notifications
}

func (store *RecordStore) SaveNotification(notification models.NotificationData) error {
	notifications := store.GetNotifications()

	replaced := false
	for index := range notifications {
		if notifications[index].ID == notification.ID {
			notifications[index] = notification
			replaced = true
			break
		}
	}
	if !replaced {
		notifications = append(notifications, notification)
	}

	return store.writeCollection(keyNotifications, notifications)
}

func (store *RecordStore) DeleteNotification(id string) error {
	notifications := store.GetNotifications()
	filtered := make([]models.NotificationData, 0, len(notifications))
	for _, notification := range notifications {
		if notification.ID != id {
			filtered = append(filtered, notification)
		}
	}
	return store.writeCollection(keyNotifications, filtered)
}

func (store *RecordStore) readCollection(key string, target any) bool {
	raw, found, err := store.kv.Get(key)
	if err != nil {
		slog.Error("load collection failed", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		slog.Error("decode collection failed", "key", key, "error", err)
		return false
	}
	return true
}

func (store *RecordStore) writeCollection(key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	if err := store.kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("store collection %s: %w", key, err)
	}
	return nil
}
