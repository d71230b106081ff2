package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"dotask-bot/internal/session"
	"dotask-bot/internal/task"
	pkgLog "dotask-bot/pkg/log"
	"dotask-bot/pkg/ratelimit"
	pkgTelegram "dotask-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	// HandleWebhook is the gin entry point for webhook mode.
	HandleWebhook(c *gin.Context)
	// HandleUpdate processes one update synchronously. Polling mode calls it directly.
	HandleUpdate(ctx context.Context, update pkgTelegram.Update)
}

type handler struct {
	l        pkgLog.Logger
	uc       task.UseCase
	bot      *pkgTelegram.Bot
	sessions session.Store
	limiter  *ratelimit.Limiter
	loc      *time.Location
	now      func() time.Time

	// defaultLanguage is used when the sender's language is not supported.
	defaultLanguage string

	chatLocks [chatLockStripes]sync.Mutex
	wg        sync.WaitGroup
}

// New creates a new Telegram delivery handler. Due dates are shown in loc;
// texts follow the sender's Telegram language, then defaultLanguage.
func New(
	l pkgLog.Logger,
	uc task.UseCase,
	bot *pkgTelegram.Bot,
	sessions session.Store,
	limiter *ratelimit.Limiter,
	loc *time.Location,
	defaultLanguage string,
) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		sessions: sessions,
		limiter:  limiter,
		loc:      loc,
		now:      time.Now,

		defaultLanguage: defaultLanguage,
	}
}

// Wait blocks until updates accepted by HandleWebhook are processed.
func (h *handler) Wait() {
	h.wg.Wait()
}
