package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Aliases so callers depend on this package only.
type (
	Update               = tgbotapi.Update
	Message              = tgbotapi.Message
	MessageEntity        = tgbotapi.MessageEntity
	User                 = tgbotapi.User
	Chat                 = tgbotapi.Chat
	CallbackQuery        = tgbotapi.CallbackQuery
	InlineKeyboardMarkup = tgbotapi.InlineKeyboardMarkup
	InlineKeyboardButton = tgbotapi.InlineKeyboardButton
	ReplyKeyboardMarkup  = tgbotapi.ReplyKeyboardMarkup
)

// ModeHTML is the parse mode of every message the bot sends or edits.
const ModeHTML = tgbotapi.ModeHTML

// DefaultEndpoint is the Bot API URL template: token, then method.
const DefaultEndpoint = tgbotapi.APIEndpoint

// SecretHeader carries the webhook secret on every update Telegram posts.
const SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// Button builds an inline button carrying callback data.
func Button(text, data string) InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

// Row groups inline buttons into one keyboard row.
func Row(buttons ...InlineKeyboardButton) []InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}

// Keyboard builds an inline keyboard from rows.
func Keyboard(rows ...[]InlineKeyboardButton) InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ReplyKeyboard builds a resized persistent keyboard, one row per slice.
func ReplyKeyboard(rows ...[]string) ReplyKeyboardMarkup {
	kb := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, text := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(text))
		}
		kb = append(kb, tgbotapi.NewKeyboardButtonRow(buttons...))
	}
	return tgbotapi.NewReplyKeyboard(kb...)
}
