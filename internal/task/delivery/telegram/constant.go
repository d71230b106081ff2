package telegram

import "dotask-bot/internal/model"

const (
	// contentPreviewRunes caps task text shown in a listing block.
	contentPreviewRunes = 120
	chatLockStripes     = 64
)

type menuAction int

const (
	menuNone menuAction = iota
	menuActionAdd
	menuActionList
	menuActionHelp
	menuActionCancel
)

// snoozePresets are offered in minutes, shortest first.
var snoozePresets = []int{
	15,
	60,
	24 * 60,
	3 * 24 * 60,
	7 * 24 * 60,
}

var priorityOrder = []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

var priorityGlyphs = map[model.Priority]string{
	model.PriorityHigh:   "🔴",
	model.PriorityMedium: "🟡",
	model.PriorityLow:    "🟢",
}
