package telegram

import (
	"errors"

	"dotask-bot/internal/task"
)

// listErrorMessage maps a listing failure to user text and whether a retry
// button makes sense.
func listErrorMessage(lx *lexicon, err error) (string, bool) {
	if errors.Is(err, task.ErrUserNotFound) {
		return lx.accountUnknown, false
	}
	return lx.listError, true
}

// actionToast maps a mutation failure to a callback toast.
func actionToast(lx *lexicon, err error) string {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return lx.toastNotFound
	case errors.Is(err, task.ErrUserNotFound):
		return lx.toastAccount
	case errors.Is(err, task.ErrInvalidSnooze),
		errors.Is(err, task.ErrInvalidPriority):
		return lx.toastInvalid
	}
	return lx.toastError
}

// replyError maps a failure in a text flow to a chat message.
func replyError(lx *lexicon, err error) string {
	switch {
	case errors.Is(err, task.ErrUserNotFound):
		return lx.accountUnknown
	case errors.Is(err, task.ErrContentTooShort):
		return lx.contentTooShort
	case errors.Is(err, task.ErrInvalidDueDate):
		return lx.invalidDue
	case errors.Is(err, task.ErrTaskNotFound):
		return lx.taskNotFound
	}
	return lx.genericError
}
