package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	api *tgbotapi.BotAPI
}

// NewBot creates a Telegram Bot client and verifies the token with getMe.
func NewBot(token string) (*Bot, error) {
	return NewBotWithEndpoint(token, DefaultEndpoint, &http.Client{})
}

// NewBotWithEndpoint creates a client against a custom API endpoint,
// e.g. a local Bot API server or a test server.
func NewBotWithEndpoint(token, endpoint string, client *http.Client) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Bot{api: api}, nil
}

// Username returns the bot's @username without the @.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in SecretHeader.
func (b *Bot) SetWebhook(webhookURL, secret string) error {
	params := tgbotapi.Params{"url": webhookURL}
	params.AddNonEmpty("secret_token", secret)

	if _, err := b.api.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("telegram setWebhook failed: %w", err)
	}
	return nil
}

// DeleteWebhook removes the webhook so getUpdates polling works.
func (b *Bot) DeleteWebhook() error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("telegram deleteWebhook failed: %w", err)
	}
	return nil
}

// SendMessageWithMarkup sends an HTML message with an inline or reply keyboard.
func (b *Bot) SendMessageWithMarkup(chatID int64, text string, markup any) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = markup
	return b.request("sendMessage", msg)
}

// EditMessageText replaces an HTML message's text and inline keyboard.
func (b *Bot) EditMessageText(chatID int64, messageID int, text string, markup *InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = ModeHTML
	edit.DisableWebPagePreview = true
	edit.ReplyMarkup = markup
	return b.request("editMessageText", edit)
}

// EditReplyMarkup replaces only the inline keyboard of a message.
func (b *Bot) EditReplyMarkup(chatID int64, messageID int, markup InlineKeyboardMarkup) error {
	return b.request("editMessageReplyMarkup", tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup))
}

// AnswerCallback stops the client's loading spinner, optionally with a toast.
func (b *Bot) AnswerCallback(callbackID, text string, alert bool) error {
	cb := tgbotapi.NewCallback(callbackID, text)
	cb.ShowAlert = alert
	return b.request("answerCallbackQuery", cb)
}

// Poll long-polls getUpdates and calls fn for each update, in order, until
// ctx is cancelled.
func (b *Bot) Poll(ctx context.Context, timeoutSec int, fn func(Update)) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(cfg)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			fn(u)
		}
	}
}

func (b *Bot) request(method string, c tgbotapi.Chattable) error {
	if _, err := b.api.Request(c); err != nil {
		return fmt.Errorf("telegram %s failed: %w", method, err)
	}
	return nil
}

// IsNotModified reports Telegram's rejection of an edit that changes nothing.
func IsNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
