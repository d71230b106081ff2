package telegram

import (
	"context"
	"errors"

	"dotask-bot/internal/model"
	"dotask-bot/internal/session"
	"dotask-bot/internal/task"
	pkgTelegram "dotask-bot/pkg/telegram"
)

// startAdd begins the add flow: content, then due date, then priority.
func (h *handler) startAdd(ctx context.Context, lx *lexicon, key session.Key) {
	if !h.saveSession(ctx, lx, key, session.Session{State: session.StateAddContent}) {
		return
	}
	h.send(ctx, key.ChatID, lx.askContent, nil)
}

func (h *handler) addContent(ctx context.Context, lx *lexicon, key session.Key, sess session.Session, text string) {
	content, ok := model.NormalizeContent(text)
	if !ok {
		h.send(ctx, key.ChatID, lx.contentTooShort, nil)
		return
	}

	sess.State = session.StateAddDue
	sess.Content = content
	if !h.saveSession(ctx, lx, key, sess) {
		return
	}
	h.send(ctx, key.ChatID, lx.askDue, nil)
}

func (h *handler) addDue(ctx context.Context, lx *lexicon, key session.Key, sess session.Session, text string) {
	due, err := h.uc.ParseDueDate(ctx, text)
	if err != nil {
		h.send(ctx, key.ChatID, replyError(lx, err), nil)
		return
	}

	sess.State = session.StateAddPriority
	sess.DueDate = due
	if !h.saveSession(ctx, lx, key, sess) {
		return
	}
	h.send(ctx, key.ChatID, lx.askPriority, newPriorityKeyboard(lx))
}

// addPriorityText accepts a typed priority name, in any supported
// language, instead of a button press.
func (h *handler) addPriorityText(ctx context.Context, sc model.Scope, lx *lexicon, key session.Key, sess session.Session, text string) {
	if p, ok := priorityFromText(text); ok {
		h.finishAdd(ctx, sc, lx, key, sess, p, 0)
		return
	}
	h.send(ctx, key.ChatID, lx.pickPriority, newPriorityKeyboard(lx))
}

func priorityFromText(text string) (model.Priority, bool) {
	want := normalizeText(text)
	for _, p := range priorityOrder {
		if want == normalizeText(string(p)) || want == normalizeText(p.Code()) {
			return p, true
		}
		for _, lx := range lexicons {
			if want == normalizeText(lx.priorityLabel(p)) {
				return p, true
			}
		}
	}
	return "", false
}

// finishAdd creates the task. A non-zero messageID is the priority prompt,
// which is replaced by the confirmation.
func (h *handler) finishAdd(ctx context.Context, sc model.Scope, lx *lexicon, key session.Key, sess session.Session, p model.Priority, messageID int) {
	created, err := h.uc.Create(ctx, sc, task.CreateInput{
		Content:  sess.Content,
		DueDate:  sess.DueDate,
		Priority: p,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: create task telegram_id=%d: %v", sc.TelegramID, err)
		if errors.Is(err, task.ErrContentTooShort) {
			// Session content was validated on entry, so restart the flow.
			h.startAdd(ctx, lx, key)
			return
		}
		h.send(ctx, key.ChatID, replyError(lx, err), mainMenuKeyboard(lx))
		return
	}

	h.clearSession(ctx, key)
	text := lx.taskAdded + "\n\n" + renderTaskLine(lx, created, h.now(), h.loc)
	if messageID != 0 {
		if err := h.bot.EditMessageText(key.ChatID, messageID, text, nil); err == nil {
			h.send(ctx, key.ChatID, lx.useMenu, mainMenuKeyboard(lx))
			return
		}
	}
	h.send(ctx, key.ChatID, text, mainMenuKeyboard(lx))
}

func (h *handler) handleNewPriority(ctx context.Context, cq *pkgTelegram.CallbackQuery, sc model.Scope, lx *lexicon, key session.Key, p model.Priority) {
	sess, ok, err := h.sessions.Get(ctx, key)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: session get %s: %v", key, err)
		h.answer(ctx, cq.ID, lx.toastError, false)
		return
	}
	if !ok || sess.State != session.StateAddPriority {
		h.answer(ctx, cq.ID, lx.toastExpired, false)
		return
	}

	h.answer(ctx, cq.ID, "", false)
	h.finishAdd(ctx, sc, lx, key, sess, p, callbackMessageID(cq))
}

func (h *handler) editContent(ctx context.Context, sc model.Scope, lx *lexicon, key session.Key, sess session.Session, text string) {
	err := h.uc.UpdateContent(ctx, sc, sess.TaskID, text)
	if errors.Is(err, task.ErrContentTooShort) {
		h.send(ctx, key.ChatID, lx.contentTooShort, nil)
		return
	}

	h.clearSession(ctx, key)
	if err != nil {
		h.send(ctx, key.ChatID, replyError(lx, err), mainMenuKeyboard(lx))
		return
	}

	h.send(ctx, key.ChatID, lx.taskUpdated, mainMenuKeyboard(lx))
	h.showListing(ctx, sc, key.ChatID, 0, cursorFromSession(sess))
}
