package telegram

import "dotask-bot/internal/model"

var english = lexicon{
	menuAddTask: "➕ Add task",
	menuTasks:   "📋 Tasks",
	menuHelp:    "❓ Help",
	aliases: map[menuAction][]string{
		menuActionAdd:    {"add task", "add", "new task"},
		menuActionList:   {"tasks", "list", "my tasks", "📋 task list"},
		menuActionHelp:   {"help", "ℹ️ help"},
		menuActionCancel: {"cancel", "❌ cancel"},
	},

	priorities: map[model.Priority]string{
		model.PriorityHigh:   "High",
		model.PriorityMedium: "Medium",
		model.PriorityLow:    "Low",
	},
	priorityFilters: map[model.PriorityFilter]string{
		model.PriorityFilterAll:    "All",
		model.PriorityFilterHigh:   "High",
		model.PriorityFilterMedium: "Medium",
		model.PriorityFilterLow:    "Low",
	},
	dateFilters: map[model.DateFilter]string{
		model.DateFilterAll:      "All",
		model.DateFilterToday:    "Today",
		model.DateFilterThisWeek: "This week",
		model.DateFilterOverdue:  "Overdue",
		model.DateFilterNoDate:   "No date",
	},
	dateFilterButtons: map[model.DateFilter]string{
		model.DateFilterAll:      "📅 All dates",
		model.DateFilterToday:    "📆 Today",
		model.DateFilterThisWeek: "🗓 This week",
		model.DateFilterOverdue:  "⏰ Overdue",
		model.DateFilterNoDate:   "🚫 No date",
	},
	snoozeLabels: map[int]string{
		15:          "15m",
		60:          "1h",
		24 * 60:     "1d",
		3 * 24 * 60: "3d",
		7 * 24 * 60: "1w",
	},

	welcomeNamedFmt: "<b>🎉 Welcome, %s!</b>",
	welcome:         "<b>🎉 Welcome!</b>",
	intro:           "I keep your tasks in one place.",
	statsFmt:        "📊 Your tasks:\n• Open: <b>%d</b>\n• Done: <b>%d</b>",
	payloadHintFmt:  "🧲 Opened from a link. Tap <b>%s</b> to save it as a task.",
	pickOption:      "👇 Pick an option below.",

	titleOpen:       "📋 <b>Open tasks</b>",
	titleDone:       "✅ <b>Completed tasks</b>",
	totalFmt:        "%s (total: %d)",
	filtersFmt:      "🔎 Priority: %s | Date: %s",
	pageFmt:         "Page %d/%d",
	emptyList:       "<i>No tasks here.</i>",
	statePending:    "⏳ pending",
	stateDone:       "✅ done",
	noDate:          "no date",
	todayFmt:        "today %s",
	daysOverdueFmt:  "%d days overdue",
	hoursOverdueFmt: "%d hours overdue",
	inDaysFmt:       "in %d days",
	inHoursFmt:      "in %d hours",

	prev:     "◀️ Prev",
	next:     "Next ▶️",
	showOpen: "📋 Open",
	showDone: "✅ Completed",
	refresh:  "🔄 Refresh",
	retry:    "🔄 Retry",

	help: "<b>How to use</b>\n\n" +
		"• <b>➕ Add task</b> or /add: create a task step by step\n" +
		"• <b>📋 Tasks</b> or /list: browse, filter and manage your tasks\n" +
		"• /cancel: stop the current step\n\n" +
		"In the list, use ✅ to complete, ✏️ to edit, 🗑 to delete, ⏰ to snooze and 🎚 to change priority.",
	askContent:      "📝 Send the task text (3 to 255 characters), or /cancel.",
	contentTooShort: "⚠️ The text is too short. Send at least 3 characters, or /cancel.",
	askDue: "📅 When is it due?\n\n" +
		"Send <code>today</code>, <code>tomorrow</code>, <code>in 3 days</code>, <code>next friday</code>, " +
		"<code>2025-01-31</code> or <code>2025-01-31 18:00</code>.\n" +
		"Send <code>-</code> or <code>none</code> for no due date.",
	invalidDue:       "⚠️ I could not read that date. Try <code>tomorrow</code> or <code>2025-01-31 18:00</code>, or <code>-</code> for none.",
	askPriority:      "🎚 Pick a priority:",
	pickPriority:     "🎚 Please pick a priority with the buttons above.",
	askNewContentFmt: "✏️ Current text:\n<i>%s</i>\n\nSend the new text for this task, or /cancel.",
	cancelled:        "❌ Cancelled.",
	nothingToCancel:  "Nothing to cancel.",
	useMenu:          "👇 Use the menu below, or /help.",
	accountUnknown:   "⚠️ Account not recognized. Send /start and try again.",
	genericError:     "⚠️ Something went wrong. Please try again.",
	listError:        "⚠️ Could not load your tasks. Please try again.",
	taskAdded:        "✅ <b>Task added</b>",
	taskUpdated:      "✏️ Task updated.",
	taskNotFound:     "⚠️ Task not found.",
	slowDown:         "⏳ Too many requests. Slow down a little.",

	toastInvalid:  "Invalid data.",
	toastNotFound: "Task not found.",
	toastDone:     "✅ Done",
	toastUndone:   "↩️ Back to open",
	toastDeleted:  "🗑 Deleted",
	toastSnoozed:  "⏰ Snoozed",
	toastPriority: "🎚 Priority updated",
	toastExpired:  "This form has expired.",
	toastError:    "Something went wrong.",
	toastAccount:  "Account not recognized.",
}
