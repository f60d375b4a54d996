// Package notify delivers check-in reports to a Telegram chat.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/nodeseek-signbot/internal/config"
)

// Notifier sends one report message. Delivery is best-effort and never retried.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// New returns a Telegram-backed Notifier for the target. When the token or the
// recipient id is missing it returns a Notifier that does nothing and never fails.
// Extra bot options (server URL, HTTP client) are passed through to go-telegram/bot.
func New(target config.TelegramConfig, logger *slog.Logger, opts ...tgbot.Option) (Notifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "notifier")

	if !target.Enabled() {
		log.Warn("Telegram token or user id not set, notifications disabled")
		return nop{}, nil
	}

	// Never call getMe: construction must not touch the network.
	opts = append([]tgbot.Option{tgbot.WithSkipGetMe()}, opts...)
	b, err := tgbot.New(target.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &telegram{bot: b, chatID: target.UserID, logger: log}, nil
}

type nop struct{}

func (nop) Notify(context.Context, string) error { return nil }

type telegram struct {
	bot    *tgbot.Bot
	chatID string
	logger *slog.Logger
}

// Notify sends text with legacy Markdown parse mode to the configured chat.
// Only transport failures are returned; a message the Bot API rejects is logged and dropped.
func (t *telegram) Notify(ctx context.Context, text string) error {
	_, err := t.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("failed to send telegram message: %w", err)
		}
		t.logger.WarnContext(ctx, "Telegram rejected notification", "error", err)
		return nil
	}

	t.logger.DebugContext(ctx, "Notification sent", "chars", len([]rune(text)))
	return nil
}
