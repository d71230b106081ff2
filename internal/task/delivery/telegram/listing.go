package telegram

import (
	"context"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/callback"
	pkgTelegram "dotask-bot/pkg/telegram"
)

// showListing renders the listing at c. A non-zero messageID is edited in
// place; any edit failure falls back to a new message.
func (h *handler) showListing(ctx context.Context, sc model.Scope, chatID int64, messageID int, c callback.Cursor) {
	lx := h.lexiconFor(sc)
	out, err := h.uc.List(ctx, sc, task.ListInput{
		Status:   c.Status,
		Page:     c.Page,
		Priority: c.Priority,
		Date:     c.Date,
	})
	if err != nil {
		h.replyListError(ctx, lx, chatID, c, err)
		return
	}

	c = c.WithPage(out.Page)
	text := renderListing(lx, out, c, h.now(), h.loc)
	kb := listingKeyboard(lx, out.Tasks, c, out.TotalPages)
	h.apply(ctx, chatID, messageID, text, kb)
}

// showListingWithRow renders c with taskID's action row swapped for row.
// It is used when the originating keyboard is not available.
func (h *handler) showListingWithRow(ctx context.Context, sc model.Scope, chatID int64, messageID int, c callback.Cursor, taskID int64, row []pkgTelegram.InlineKeyboardButton) {
	lx := h.lexiconFor(sc)
	out, err := h.uc.List(ctx, sc, task.ListInput{
		Status:   c.Status,
		Page:     c.Page,
		Priority: c.Priority,
		Date:     c.Date,
	})
	if err != nil {
		h.replyListError(ctx, lx, chatID, c, err)
		return
	}

	c = c.WithPage(out.Page)
	kb, _ := replaceTaskRow(listingKeyboard(lx, out.Tasks, c, out.TotalPages), taskID, row)
	h.apply(ctx, chatID, messageID, renderListing(lx, out, c, h.now(), h.loc), kb)
}

func (h *handler) apply(ctx context.Context, chatID int64, messageID int, text string, kb pkgTelegram.InlineKeyboardMarkup) {
	if messageID != 0 {
		err := h.bot.EditMessageText(chatID, messageID, text, &kb)
		if err == nil {
			return
		}
		if pkgTelegram.IsNotModified(err) {
			h.l.Debugf(ctx, "telegram handler: listing unchanged chat_id=%d message_id=%d", chatID, messageID)
		} else {
			h.l.Warnf(ctx, "telegram handler: edit listing chat_id=%d message_id=%d: %v", chatID, messageID, err)
		}
	}

	if err := h.bot.SendMessageWithMarkup(chatID, text, kb); err != nil {
		h.l.Errorf(ctx, "telegram handler: send listing chat_id=%d: %v", chatID, err)
	}
}

func (h *handler) replyListError(ctx context.Context, lx *lexicon, chatID int64, c callback.Cursor, err error) {
	text, retry := listErrorMessage(lx, err)
	if !retry {
		h.send(ctx, chatID, text, mainMenuKeyboard(lx))
		return
	}
	h.send(ctx, chatID, text, retryKeyboard(lx, c))
	h.send(ctx, chatID, lx.useMenu, mainMenuKeyboard(lx))
}
