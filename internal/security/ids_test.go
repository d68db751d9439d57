package security

import (
	"strings"
	"testing"
	"time"
)

func TestNewEntryID_UniquePerCall(t *testing.T) {
	t.Parallel()

	startDate := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	first, err := NewEntryID(startDate)
	if err != nil {
		t.Fatalf("NewEntryID returned error: %v", err)
	}
	second, err := NewEntryID(startDate)
	if err != nil {
		t.Fatalf("NewEntryID returned error: %v", err)
	}

	if !strings.HasPrefix(first, "period_") {
		t.Fatalf("expected period_ prefix, got %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct ids for the same start instant, got %q twice", first)
	}
}

func TestNotificationID_Deterministic(t *testing.T) {
	t.Parallel()

	scheduled := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	first := NotificationID(scheduled, "period_start")
	second := NotificationID(scheduled, "period_start")
	if first != second {
		t.Fatalf("expected deterministic id, got %q and %q", first, second)
	}

	other := NotificationID(scheduled, "ovulation")
	if first == other {
		t.Fatalf("expected distinct ids per type, got %q twice", first)
	}
}
