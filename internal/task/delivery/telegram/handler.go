package telegram

import (
	"context"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dotask-bot/internal/model"
	pkgLog "dotask-bot/pkg/log"
	pkgResponse "dotask-bot/pkg/response"
	pkgTelegram "dotask-bot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the update in a
// background goroutine so Telegram never retries a slow update.
//
// @Summary Telegram webhook
// @Description Receives Telegram updates. Requires the X-Telegram-Bot-Api-Secret-Token header when a secret is configured.
// @Tags telegram
// @Accept json
// @Produce json
// @Param update body object true "Telegram Update"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil && update.CallbackQuery == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		// Detach from the HTTP request context, which is cancelled after the response.
		h.HandleUpdate(context.Background(), update)
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// HandleUpdate routes one update. Updates from the same chat never run
// concurrently; webhook updates of one chat may still be handled out of
// order, since their goroutines race for the chat lock. Polling calls it
// sequentially and keeps Telegram's order.
func (h *handler) HandleUpdate(ctx context.Context, update pkgTelegram.Update) {
	ctx = pkgLog.WithTraceID(ctx, uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "telegram handler: panic on update %d: %v", update.UpdateID, r)
		}
	}()

	chatID, from := updateOrigin(update)
	if from == nil {
		return
	}

	mu := h.chatLock(chatID)
	mu.Lock()
	defer mu.Unlock()

	if !h.limiter.Allow(strconv.FormatInt(from.ID, 10)) {
		h.l.Warnf(ctx, "telegram handler: rate limited telegram_id=%d", from.ID)
		lx := h.lexiconFor(scopeFromUser(from))
		if cq := update.CallbackQuery; cq != nil {
			h.answer(ctx, cq.ID, lx.slowDown, false)
		} else {
			h.send(ctx, chatID, lx.slowDown, nil)
		}
		return
	}

	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	}
}

func (h *handler) chatLock(chatID int64) *sync.Mutex {
	idx := chatID % chatLockStripes
	if idx < 0 {
		idx = -idx
	}
	return &h.chatLocks[idx]
}

// updateOrigin returns the chat the update belongs to and its sender.
func updateOrigin(u pkgTelegram.Update) (int64, *pkgTelegram.User) {
	switch {
	case u.CallbackQuery != nil:
		cq := u.CallbackQuery
		if cq.Message != nil && cq.Message.Chat != nil {
			return cq.Message.Chat.ID, cq.From
		}
		if cq.From != nil {
			return cq.From.ID, cq.From
		}
	case u.Message != nil && u.Message.Chat != nil:
		return u.Message.Chat.ID, u.Message.From
	}
	return 0, nil
}

func scopeFromUser(u *pkgTelegram.User) model.Scope {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return model.Scope{
		TelegramID: u.ID,
		FullName:   name,
		Username:   u.UserName,
		Language:   u.LanguageCode,
	}
}
