package delivery

import "log/slog"

// Sender receives a notification when its timer fires.
type Sender interface {
	Send(title string, body string) error
}

// LogSender writes fired notifications to the application log. It is the
// fallback channel when no external sender is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (sender *LogSender) Send(title string, body string) error {
	slog.Info("notification", "title", title, "body", body)
	return nil
}
