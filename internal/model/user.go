package model

import "time"

// User is a chat user known to the bot, keyed by TelegramID.
type User struct {
	ID         int64
	TelegramID int64
	FullName   string
	Username   string
	Language   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Scope identifies the caller of a use case, as seen in the inbound update.
type Scope struct {
	TelegramID int64
	FullName   string
	Username   string
	Language   string
}
