package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/viprogramm/audio11eleven/logger"
)

// WebhookPath is the route Telegram delivers updates to.
const WebhookPath = "/telegram-webhook"

// API is the subset of the Bot API the handlers need. It is an interface
// so handlers can be tested without a live bot.
type API interface {
	// FileURL resolves a file_id into a direct download URL.
	FileURL(ctx context.Context, fileID string) (string, error)
	// Reply sends a plain text message to a chat.
	Reply(ctx context.Context, chatID int64, text string) error
}

// Bot wraps the Bot API client.
type Bot struct {
	api *tgbotapi.BotAPI
	log *logger.Logger
}

// NewBot authenticates against the Bot API with the given token.
func NewBot(token string, log *logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log = log.WithComponent("telegram")
	log.Info("bot authenticated", map[string]interface{}{
		logger.FieldUsername: api.Self.UserName,
	})

	return &Bot{api: api, log: log}, nil
}

// FileURL resolves a file_id into a direct download URL.
func (b *Bot) FileURL(_ context.Context, fileID string) (string, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", err
	}
	return file.Link(b.api.Token), nil
}

// Reply sends a plain text message to a chat.
func (b *Bot) Reply(_ context.Context, chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// RegisterWebhook points Telegram at <baseURL>/telegram-webhook. Callers
// treat a failure as non-fatal: the HTTP side of the service keeps working
// without bot updates.
func (b *Bot) RegisterWebhook(baseURL string) error {
	url := strings.TrimRight(baseURL, "/") + WebhookPath

	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	if _, err := b.api.Request(wh); err != nil {
		return err
	}

	b.log.Info("webhook registered", map[string]interface{}{
		logger.FieldURL: url,
	})
	return nil
}
