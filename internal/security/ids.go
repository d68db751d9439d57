package security

import (
	"fmt"
	"time"
)

const idSuffixAlphabet = "abcdefghijkmnopqrstuvwxyz23456789"

const idSuffixLength = 6

// NewEntryID builds a period-entry id from the start instant plus random
// suffix. The suffix keeps ids unique when two entries share the same start
// instant; callers rely only on uniqueness and stability.
func NewEntryID(startDate time.Time) (string, error) {
	suffix, err := RandomString(idSuffixLength, idSuffixAlphabet)
	if err != nil {
		return "", fmt.Errorf("generate entry id suffix: %w", err)
	}
	return fmt.Sprintf("period_%d_%s", startDate.UnixMilli(), suffix), nil
}

// NotificationID is deterministic over (scheduled instant, type), so
// rescheduling the same reminder stays an upsert at the storage layer.
func NotificationID(scheduledDate time.Time, notificationType string) string {
	return fmt.Sprintf("notification_%d_%s", scheduledDate.UnixMilli(), notificationType)
}
