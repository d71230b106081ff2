package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrContentTooShort = errors.New("task content is too short")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidSnooze   = errors.New("invalid snooze duration")
	ErrTaskNotFound    = errors.New("task not found")
	ErrUserNotFound    = errors.New("user not recognized")
)
