package session

import (
	"fmt"
	"time"
)

// State is the step of a multi-message flow the user is in.
type State string

const (
	StateIdle        State = ""
	StateAddContent  State = "add:content"
	StateAddDue      State = "add:due"
	StateAddPriority State = "add:priority"
	StateEditContent State = "edit:content"
)

// Session carries the partial input of an in-progress flow.
type Session struct {
	State   State      `json:"state"`
	TaskID  int64      `json:"task_id,omitempty"`
	Cursor  string     `json:"cursor,omitempty"`
	Content string     `json:"content,omitempty"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// Active reports whether the session is waiting for user input.
func (s Session) Active() bool {
	return s.State != StateIdle
}

// Key identifies a session. Group chats keep one session per member.
type Key struct {
	ChatID int64
	UserID int64
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.ChatID, k.UserID)
}
