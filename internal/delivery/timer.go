package delivery

import (
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// TimerScheduler is an in-process delivery collaborator: each registration
// arms a timer that hands the notification to the configured sender at its
// fire time. Handles are opaque strings.
type TimerScheduler struct {
	sender Sender

	mu         sync.Mutex
	timers     map[string]*time.Timer
	nextHandle uint64
}

func NewTimerScheduler(sender Sender) *TimerScheduler {
	return &TimerScheduler{
		sender: sender,
		timers: make(map[string]*time.Timer),
	}
}

// RequestPermission always grants; an in-process scheduler has nothing to ask.
func (scheduler *TimerScheduler) RequestPermission() (bool, error) {
	return true, nil
}

func (scheduler *TimerScheduler) ScheduleAt(title string, body string, fireAt time.Time) (string, error) {
	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.nextHandle++
	handle := strconv.FormatUint(scheduler.nextHandle, 10)

	scheduler.timers[handle] = time.AfterFunc(delay, func() {
		scheduler.mu.Lock()
		delete(scheduler.timers, handle)
		scheduler.mu.Unlock()

		if err := scheduler.sender.Send(title, body); err != nil {
			slog.Error("send notification failed", "title", title, "error", err)
		}
	})

	return handle, nil
}

func (scheduler *TimerScheduler) CancelAll() error {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	for handle, timer := range scheduler.timers {
		timer.Stop()
		delete(scheduler.timers, handle)
	}
	return nil
}

// Pending reports how many registrations are still armed.
func (scheduler *TimerScheduler) Pending() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.timers)
}
