package delivery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TelegramSender posts fired notifications to a Telegram chat via the Bot
// API.
type TelegramSender struct {
	botToken string
	chatID   string
	client   *http.Client
}

func NewTelegramSender(botToken string, chatID string) *TelegramSender {
	return &TelegramSender{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (sender *TelegramSender) Send(title string, body string) error {
	message := title
	if body != "" {
		message = title + "\n\n" + body
	}

	values := url.Values{}
	values.Set("chat_id", sender.chatID)
	values.Set("text", message)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", sender.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sender.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(responseBody))
	}

	return nil
}
