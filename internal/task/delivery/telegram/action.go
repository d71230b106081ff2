package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"

	"dotask-bot/internal/model"
	"dotask-bot/internal/session"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/callback"
	pkgTelegram "dotask-bot/pkg/telegram"
)

// handleCallback dispatches an inline button press. Every path answers the
// callback exactly once.
func (h *handler) handleCallback(ctx context.Context, cq *pkgTelegram.CallbackQuery) {
	sc := scopeFromUser(cq.From)
	lx := h.lexiconFor(sc)

	tok, err := callback.Decode(cq.Data)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: bad callback data %q: %v", cq.Data, err)
		h.answer(ctx, cq.ID, lx.toastInvalid, false)
		return
	}

	chatID := callbackChatID(cq)
	key := session.Key{ChatID: chatID, UserID: cq.From.ID}

	switch tok.Verb {
	case callback.VerbNoop:
		h.answer(ctx, cq.ID, "", false)
	case callback.VerbList:
		h.answer(ctx, cq.ID, "", false)
		h.showListing(ctx, sc, chatID, callbackMessageID(cq), tok.Cursor)
	case callback.VerbAction:
		h.handleTaskAction(ctx, cq, sc, lx, key, tok)
	case callback.VerbSnooze:
		err := h.uc.Snooze(ctx, sc, tok.TaskID, tok.Minutes)
		h.finishMutation(ctx, cq, sc, lx, tok.Cursor, err, lx.toastSnoozed)
	case callback.VerbPriority:
		err := h.uc.UpdatePriority(ctx, sc, tok.TaskID, tok.Priority)
		h.finishMutation(ctx, cq, sc, lx, tok.Cursor, err, lx.toastPriority)
	case callback.VerbNewPriority:
		h.handleNewPriority(ctx, cq, sc, lx, key, tok.Priority)
	default:
		h.answer(ctx, cq.ID, lx.toastInvalid, false)
	}
}

func (h *handler) handleTaskAction(ctx context.Context, cq *pkgTelegram.CallbackQuery, sc model.Scope, lx *lexicon, key session.Key, tok callback.Token) {
	switch tok.Action {
	case callback.ActionDone:
		err := h.uc.SetDone(ctx, sc, tok.TaskID, true)
		h.finishMutation(ctx, cq, sc, lx, tok.Cursor, err, lx.toastDone)
	case callback.ActionUndo:
		err := h.uc.SetDone(ctx, sc, tok.TaskID, false)
		h.finishMutation(ctx, cq, sc, lx, tok.Cursor, err, lx.toastUndone)
	case callback.ActionDelete:
		err := h.uc.Delete(ctx, sc, tok.TaskID)
		h.finishMutation(ctx, cq, sc, lx, tok.Cursor, err, lx.toastDeleted)
	case callback.ActionEdit:
		h.beginEdit(ctx, cq, sc, lx, key, tok)
	case callback.ActionSnooze:
		h.answer(ctx, cq.ID, "", false)
		h.showRowMenu(ctx, cq, sc, tok, snoozeRow(lx, tok.TaskID, tok.Cursor))
	case callback.ActionPriority:
		h.answer(ctx, cq.ID, "", false)
		h.showRowMenu(ctx, cq, sc, tok, priorityRow(lx, tok.TaskID, tok.Cursor))
	default:
		h.answer(ctx, cq.ID, lx.toastInvalid, false)
	}
}

// finishMutation answers with ok or the mapped failure, then re-renders the
// cursor whatever the outcome, so a stale row never lingers.
func (h *handler) finishMutation(ctx context.Context, cq *pkgTelegram.CallbackQuery, sc model.Scope, lx *lexicon, c callback.Cursor, err error, ok string) {
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: callback %q telegram_id=%d: %v", cq.Data, sc.TelegramID, err)
		h.answer(ctx, cq.ID, actionToast(lx, err), false)
	} else {
		h.answer(ctx, cq.ID, ok, false)
	}
	h.showListing(ctx, sc, callbackChatID(cq), callbackMessageID(cq), c)
}

// showRowMenu swaps the task's action row for a menu row in the existing
// keyboard. Without a usable keyboard the listing is rebuilt around the menu.
func (h *handler) showRowMenu(ctx context.Context, cq *pkgTelegram.CallbackQuery, sc model.Scope, tok callback.Token, row []pkgTelegram.InlineKeyboardButton) {
	chatID, messageID := callbackChatID(cq), callbackMessageID(cq)

	if cq.Message != nil && cq.Message.ReplyMarkup != nil {
		if kb, ok := replaceTaskRow(*cq.Message.ReplyMarkup, tok.TaskID, row); ok {
			err := h.bot.EditReplyMarkup(chatID, messageID, kb)
			if err == nil {
				return
			}
			h.l.Warnf(ctx, "telegram handler: edit keyboard chat_id=%d message_id=%d: %v", chatID, messageID, err)
		}
	}
	h.showListingWithRow(ctx, sc, chatID, messageID, tok.Cursor, tok.TaskID, row)
}

// beginEdit shows the task's current text and waits for the replacement in
// the next message from this user. A task that is gone is dropped from the
// listing instead.
func (h *handler) beginEdit(ctx context.Context, cq *pkgTelegram.CallbackQuery, sc model.Scope, lx *lexicon, key session.Key, tok callback.Token) {
	t, err := h.uc.GetTask(ctx, sc, tok.TaskID)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: edit task_id=%d telegram_id=%d: %v", tok.TaskID, sc.TelegramID, err)
		h.answer(ctx, cq.ID, actionToast(lx, err), false)
		if errors.Is(err, task.ErrTaskNotFound) {
			h.showListing(ctx, sc, key.ChatID, callbackMessageID(cq), tok.Cursor)
		}
		return
	}

	sess := session.Session{
		State:  session.StateEditContent,
		TaskID: t.ID,
		Cursor: callback.Encode(callback.List(tok.Cursor)),
	}
	if err := h.sessions.Set(ctx, key, sess); err != nil {
		h.l.Errorf(ctx, "telegram handler: session set %s: %v", key, err)
		h.answer(ctx, cq.ID, lx.toastError, false)
		return
	}

	h.answer(ctx, cq.ID, "", false)
	h.send(ctx, key.ChatID, fmt.Sprintf(lx.askNewContentFmt, html.EscapeString(t.Content)), nil)
}

// cursorFromSession restores the listing an edit started from.
func cursorFromSession(s session.Session) callback.Cursor {
	tok, err := callback.Decode(s.Cursor)
	if err != nil || tok.Verb != callback.VerbList {
		return callback.DefaultCursor()
	}
	return tok.Cursor
}

func callbackChatID(cq *pkgTelegram.CallbackQuery) int64 {
	if cq.Message != nil && cq.Message.Chat != nil {
		return cq.Message.Chat.ID
	}
	return cq.From.ID
}

// callbackMessageID is zero for inline-mode messages, which cannot be edited here.
func callbackMessageID(cq *pkgTelegram.CallbackQuery) int {
	if cq.Message != nil {
		return cq.Message.MessageID
	}
	return 0
}
