package telegram

import (
	"fmt"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task/callback"
	pkgTelegram "dotask-bot/pkg/telegram"
)

func button(text string, t callback.Token) pkgTelegram.InlineKeyboardButton {
	return pkgTelegram.Button(text, callback.Encode(t))
}

// listingKeyboard lays out one action row per task, then navigation,
// filters and refresh. c must already carry the clamped page.
func listingKeyboard(lx *lexicon, tasks []model.Task, c callback.Cursor, totalPages int) pkgTelegram.InlineKeyboardMarkup {
	rows := make([][]pkgTelegram.InlineKeyboardButton, 0, len(tasks)+3)
	for _, t := range tasks {
		rows = append(rows, taskActionRow(t.ID, c))
	}

	prev := clampPage(c.Page-1, totalPages)
	next := clampPage(c.Page+1, totalPages)
	rows = append(rows,
		pkgTelegram.Row(
			button(lx.prev, callback.List(c.WithPage(prev))),
			button(fmt.Sprintf(lx.pageFmt, c.Page, totalPages), callback.Noop()),
			button(lx.next, callback.List(c.WithPage(next))),
		),
		pkgTelegram.Row(
			button(statusToggleLabel(lx, c.Status), callback.List(c.ToggleStatus())),
			button("🎚 "+lx.priorityFilters[c.Priority.Next()], callback.List(c.NextPriority())),
			button(lx.dateFilterButtons[c.Date.Next()], callback.List(c.NextDate())),
		),
		pkgTelegram.Row(
			button(lx.refresh, callback.List(c)),
		),
	)
	return pkgTelegram.Keyboard(rows...)
}

func taskActionRow(taskID int64, c callback.Cursor) []pkgTelegram.InlineKeyboardButton {
	first := button("✅", callback.TaskAction(callback.ActionDone, taskID, c))
	if c.Status.Done() {
		first = button("↩️", callback.TaskAction(callback.ActionUndo, taskID, c))
	}
	return pkgTelegram.Row(
		first,
		button("✏️", callback.TaskAction(callback.ActionEdit, taskID, c)),
		button("🗑", callback.TaskAction(callback.ActionDelete, taskID, c)),
		button("⏰", callback.TaskAction(callback.ActionSnooze, taskID, c)),
		button("🎚", callback.TaskAction(callback.ActionPriority, taskID, c)),
	)
}

// statusToggleLabel names the status the button switches to.
func statusToggleLabel(lx *lexicon, s model.Status) string {
	if s.Done() {
		return lx.showOpen
	}
	return lx.showDone
}

func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func snoozeRow(lx *lexicon, taskID int64, c callback.Cursor) []pkgTelegram.InlineKeyboardButton {
	row := make([]pkgTelegram.InlineKeyboardButton, 0, len(snoozePresets)+1)
	for _, minutes := range snoozePresets {
		row = append(row, button(lx.snoozeLabels[minutes], callback.SnoozeApply(taskID, minutes, c)))
	}
	return append(row, button("✖️", callback.List(c)))
}

func priorityRow(lx *lexicon, taskID int64, c callback.Cursor) []pkgTelegram.InlineKeyboardButton {
	row := make([]pkgTelegram.InlineKeyboardButton, 0, len(priorityOrder)+1)
	for _, p := range priorityOrder {
		row = append(row, button(priorityGlyphs[p]+" "+lx.priorityLabel(p), callback.PriorityApply(taskID, p, c)))
	}
	return append(row, button("✖️", callback.List(c)))
}

// replaceTaskRow swaps the action row of taskID for row. It reports false
// when kb has no such row.
func replaceTaskRow(kb pkgTelegram.InlineKeyboardMarkup, taskID int64, row []pkgTelegram.InlineKeyboardButton) (pkgTelegram.InlineKeyboardMarkup, bool) {
	for i, r := range kb.InlineKeyboard {
		if len(r) == 0 || r[0].CallbackData == nil {
			continue
		}
		tok, err := callback.Decode(*r[0].CallbackData)
		if err != nil || tok.Verb != callback.VerbAction || tok.TaskID != taskID {
			continue
		}

		rows := make([][]pkgTelegram.InlineKeyboardButton, len(kb.InlineKeyboard))
		copy(rows, kb.InlineKeyboard)
		rows[i] = row
		return pkgTelegram.Keyboard(rows...), true
	}
	return kb, false
}

// newPriorityKeyboard is the last step of the add flow.
func newPriorityKeyboard(lx *lexicon) pkgTelegram.InlineKeyboardMarkup {
	row := make([]pkgTelegram.InlineKeyboardButton, 0, len(priorityOrder))
	for _, p := range priorityOrder {
		row = append(row, button(priorityGlyphs[p]+" "+lx.priorityLabel(p), callback.NewPriority(p)))
	}
	return pkgTelegram.Keyboard(row)
}

func retryKeyboard(lx *lexicon, c callback.Cursor) pkgTelegram.InlineKeyboardMarkup {
	return pkgTelegram.Keyboard(pkgTelegram.Row(button(lx.retry, callback.List(c))))
}

func mainMenuKeyboard(lx *lexicon) pkgTelegram.ReplyKeyboardMarkup {
	return pkgTelegram.ReplyKeyboard(
		[]string{lx.menuAddTask, lx.menuTasks},
		[]string{lx.menuHelp},
	)
}
