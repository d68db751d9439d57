package services

import (
	"math"
	"time"
)

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from one date to a later one;
// negative when to precedes from. Rounding absorbs DST-shortened days.
func daysBetween(from time.Time, to time.Time) int {
	return int(math.Round(dateOnly(to).Sub(dateOnly(from)).Hours() / 24))
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
