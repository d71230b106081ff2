package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Priority is the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Content bounds, counted in runes after trimming.
const (
	ContentMinLength = 3
	ContentMaxLength = 255
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Code returns the one-letter form used in callback tokens.
func (p Priority) Code() string {
	switch p {
	case PriorityHigh:
		return "H"
	case PriorityMedium:
		return "M"
	case PriorityLow:
		return "L"
	}
	return ""
}

// PriorityFromCode is the inverse of Priority.Code.
func PriorityFromCode(code string) (Priority, bool) {
	switch code {
	case "H":
		return PriorityHigh, true
	case "M":
		return PriorityMedium, true
	case "L":
		return PriorityLow, true
	}
	return "", false
}

// Task is a single to-do item owned by one user.
// DoneAt is set if and only if IsDone is true.
type Task struct {
	ID        int64
	UserID    int64
	Content   string
	DueDate   *time.Time
	Priority  Priority
	IsDone    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DoneAt    *time.Time
}

// NormalizeContent trims raw and caps it at ContentMaxLength runes.
// ok is false when fewer than ContentMinLength runes remain.
func NormalizeContent(raw string) (content string, ok bool) {
	content = strings.TrimSpace(raw)
	if utf8.RuneCountInString(content) < ContentMinLength {
		return "", false
	}
	if utf8.RuneCountInString(content) > ContentMaxLength {
		content = string([]rune(content)[:ContentMaxLength])
	}
	return content, true
}
