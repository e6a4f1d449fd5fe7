// Package notifier delivers target-price alerts. The monitor fires one
// whenever a fresh scrape lands exactly on the configured target price.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/telebot.v4"

	"github.com/tkarimov/pricewatch/internal/models"
)

// Notifier receives target-price hits.
type Notifier interface {
	NotifyTargetPrice(ctx context.Context, product models.ScrapedProduct, target int64) error
}

// API is the subset of the telebot client the notifier uses.
type API interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// Telegram sends alerts to a fixed chat.
type Telegram struct {
	bot  API
	log  *slog.Logger
	chat telebot.Recipient
}

// NewTelegram authorizes the bot token and returns a notifier bound to
// the given chat.
func NewTelegram(log *slog.Logger, token string, chatID int64) (*Telegram, error) {
	bot, err := telebot.NewBot(telebot.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", bot.Me.Username)

	return &Telegram{bot: bot, log: log, chat: telebot.ChatID(chatID)}, nil
}

// NotifyTargetPrice sends the alert message for one product.
func (t *Telegram) NotifyTargetPrice(ctx context.Context, product models.ScrapedProduct, target int64) error {
	message := fmt.Sprintf("🚨 %s reached the target price: %s", product.Name, product.Outcome.PriceText)

	if _, err := t.bot.Send(t.chat, message); err != nil {
		return fmt.Errorf("failed to send target price alert: %w", err)
	}

	t.log.InfoContext(ctx, "Delivered target price alert", "name", product.Name, "target", target)

	return nil
}

// Noop logs alerts without delivering them anywhere; used when no
// Telegram token is configured.
type Noop struct {
	log *slog.Logger
}

// NewNoop creates the logging-only notifier.
func NewNoop(log *slog.Logger) *Noop {
	return &Noop{log: log}
}

// NotifyTargetPrice records the hit in the log.
func (n *Noop) NotifyTargetPrice(ctx context.Context, product models.ScrapedProduct, target int64) error {
	n.log.InfoContext(ctx, "Target price reached", "name", product.Name, "target", target,
		"price_text", product.Outcome.PriceText)
	return nil
}
