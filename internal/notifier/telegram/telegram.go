package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Messenger is the slice of the telebot API the notifier needs. *tele.Bot
// satisfies it; tests inject a recording fake.
type Messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Config holds Telegram notifier configuration.
type Config struct {
	Token  string
	ChatID int64
}

// Notifier delivers text messages to a single pre-configured chat. Delivery
// failures are logged and swallowed: a missed notification must never take
// the poll loop down.
type Notifier struct {
	bot    Messenger
	chatID int64
	logger *slog.Logger
}

// New builds a Notifier backed by a real Telegram bot. A bad token fails
// here, at startup, not in the loop.
func New(cfg Config, logger *slog.Logger) (*Notifier, error) {
	bot, err := tele.NewBot(tele.Settings{Token: cfg.Token})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return NewWithMessenger(bot, cfg.ChatID, logger), nil
}

// NewWithMessenger wires an explicit Messenger, used by tests.
func NewWithMessenger(m Messenger, chatID int64, logger *slog.Logger) *Notifier {
	return &Notifier{
		bot:    m,
		chatID: chatID,
		logger: logger.With("channel", "telegram"),
	}
}

// Notify sends exactly one message. It never fails outward.
func (n *Notifier) Notify(ctx context.Context, text string) {
	if _, err := n.bot.Send(tele.ChatID(n.chatID), text); err != nil {
		n.logger.Warn("notification send failed",
			"chat_id", n.chatID,
			"error", err,
		)
		return
	}
	n.logger.Debug("notification sent", "chat_id", n.chatID)
}
