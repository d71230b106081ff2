package telegram

import (
	"context"
	"fmt"
	"html"
	"strings"

	"dotask-bot/internal/model"
	"dotask-bot/internal/session"
	"dotask-bot/internal/task/callback"
	pkgTelegram "dotask-bot/pkg/telegram"
)

// handleMessage routes a text message: commands first, then main menu
// buttons, then the step of an active session. While a session waits for
// text only the exact keyboard labels count as menu presses.
func (h *handler) handleMessage(ctx context.Context, msg *pkgTelegram.Message) {
	if msg.From == nil || msg.Text == "" {
		return
	}

	sc := scopeFromUser(msg.From)
	lx := h.lexiconFor(sc)
	chatID := msg.Chat.ID
	key := session.Key{ChatID: chatID, UserID: msg.From.ID}

	if msg.IsCommand() {
		h.handleCommand(ctx, sc, lx, key, msg)
		return
	}

	sess, ok, err := h.sessions.Get(ctx, key)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: session get %s: %v", key, err)
	}
	active := err == nil && ok && sess.Active()

	action := matchMenu(msg.Text)
	if active {
		action = matchMenuLabel(msg.Text)
	}

	switch action {
	case menuActionAdd:
		h.startAdd(ctx, lx, key)
		return
	case menuActionList:
		h.clearSession(ctx, key)
		h.showListing(ctx, sc, chatID, 0, callback.DefaultCursor())
		return
	case menuActionHelp:
		h.send(ctx, chatID, lx.help, mainMenuKeyboard(lx))
		return
	case menuActionCancel:
		h.cancel(ctx, lx, key)
		return
	}

	if err != nil {
		h.send(ctx, chatID, lx.genericError, mainMenuKeyboard(lx))
		return
	}
	if !active {
		h.send(ctx, chatID, lx.useMenu, mainMenuKeyboard(lx))
		return
	}

	switch sess.State {
	case session.StateAddContent:
		h.addContent(ctx, lx, key, sess, msg.Text)
	case session.StateAddDue:
		h.addDue(ctx, lx, key, sess, msg.Text)
	case session.StateAddPriority:
		h.addPriorityText(ctx, sc, lx, key, sess, msg.Text)
	case session.StateEditContent:
		h.editContent(ctx, sc, lx, key, sess, msg.Text)
	default:
		h.l.Warnf(ctx, "telegram handler: unknown session state %q for %s", sess.State, key)
		h.clearSession(ctx, key)
		h.send(ctx, chatID, lx.useMenu, mainMenuKeyboard(lx))
	}
}

func (h *handler) handleCommand(ctx context.Context, sc model.Scope, lx *lexicon, key session.Key, msg *pkgTelegram.Message) {
	switch msg.Command() {
	case "start":
		h.clearSession(ctx, key)
		h.handleStart(ctx, sc, lx, key, msg.From, strings.TrimSpace(msg.CommandArguments()))
	case "help":
		h.send(ctx, key.ChatID, lx.help, mainMenuKeyboard(lx))
	case "list":
		h.clearSession(ctx, key)
		h.showListing(ctx, sc, key.ChatID, 0, callback.DefaultCursor())
	case "add":
		h.startAdd(ctx, lx, key)
	case "cancel":
		h.cancel(ctx, lx, key)
	default:
		h.send(ctx, key.ChatID, lx.help, mainMenuKeyboard(lx))
	}
}

// handleStart greets the user with their open and done counts.
func (h *handler) handleStart(ctx context.Context, sc model.Scope, lx *lexicon, key session.Key, from *pkgTelegram.User, payload string) {
	stats, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: /start stats telegram_id=%d: %v", sc.TelegramID, err)
		h.send(ctx, key.ChatID, replyError(lx, err), mainMenuKeyboard(lx))
		return
	}

	var b strings.Builder
	if from.FirstName != "" {
		fmt.Fprintf(&b, lx.welcomeNamedFmt, html.EscapeString(from.FirstName))
	} else {
		b.WriteString(lx.welcome)
	}
	b.WriteString("\n" + lx.intro + "\n\n")
	fmt.Fprintf(&b, lx.statsFmt, stats.Open, stats.Done)
	if payload != "" {
		b.WriteString("\n\n")
		fmt.Fprintf(&b, lx.payloadHintFmt, lx.menuAddTask)
	}
	b.WriteString("\n\n" + lx.pickOption)

	h.send(ctx, key.ChatID, b.String(), mainMenuKeyboard(lx))
}

func (h *handler) cancel(ctx context.Context, lx *lexicon, key session.Key) {
	sess, ok, err := h.sessions.Get(ctx, key)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: session get %s: %v", key, err)
	}
	h.clearSession(ctx, key)

	if ok && sess.Active() {
		h.send(ctx, key.ChatID, lx.cancelled, mainMenuKeyboard(lx))
		return
	}
	h.send(ctx, key.ChatID, lx.nothingToCancel, mainMenuKeyboard(lx))
}

func (h *handler) clearSession(ctx context.Context, key session.Key) {
	if err := h.sessions.Clear(ctx, key); err != nil {
		h.l.Errorf(ctx, "telegram handler: session clear %s: %v", key, err)
	}
}

// saveSession stores s and tells the user when that fails.
func (h *handler) saveSession(ctx context.Context, lx *lexicon, key session.Key, s session.Session) bool {
	if err := h.sessions.Set(ctx, key, s); err != nil {
		h.l.Errorf(ctx, "telegram handler: session set %s: %v", key, err)
		h.send(ctx, key.ChatID, lx.genericError, mainMenuKeyboard(lx))
		return false
	}
	return true
}

// send delivers an HTML message with an optional keyboard.
func (h *handler) send(ctx context.Context, chatID int64, text string, markup any) {
	if err := h.bot.SendMessageWithMarkup(chatID, text, markup); err != nil {
		h.l.Errorf(ctx, "telegram handler: send chat_id=%d: %v", chatID, err)
	}
}

func (h *handler) answer(ctx context.Context, callbackID, text string, alert bool) {
	if err := h.bot.AnswerCallback(callbackID, text, alert); err != nil {
		h.l.Warnf(ctx, "telegram handler: answer callback %s: %v", callbackID, err)
	}
}
