package callback

import "dotask-bot/internal/model"

// Verb is the leading word of a token.
type Verb string

const (
	VerbList        Verb = "list"
	VerbAction      Verb = "act"
	VerbSnooze      Verb = "snz"
	VerbPriority    Verb = "pri"
	VerbNewPriority Verb = "newp"
	VerbNoop        Verb = "noop"
)

// Action is a per-task button kind.
type Action string

const (
	ActionDone     Action = "done"
	ActionUndo     Action = "undo"
	ActionDelete   Action = "del"
	ActionEdit     Action = "edit"
	ActionSnooze   Action = "snz"
	ActionPriority Action = "pri"
)

func (a Action) Valid() bool {
	switch a {
	case ActionDone, ActionUndo, ActionDelete, ActionEdit, ActionSnooze, ActionPriority:
		return true
	}
	return false
}

// Cursor is the listing state carried by list and action tokens.
type Cursor struct {
	Status   model.Status
	Page     int
	Priority model.PriorityFilter
	Date     model.DateFilter
}

// DefaultCursor is open tasks, page 1, no filters.
func DefaultCursor() Cursor {
	return Cursor{
		Status:   model.StatusOpen,
		Page:     1,
		Priority: model.PriorityFilterAll,
		Date:     model.DateFilterAll,
	}
}

// WithPage returns c pointing at page.
func (c Cursor) WithPage(page int) Cursor {
	if page < 1 {
		page = 1
	}
	c.Page = page
	return c
}

// ToggleStatus flips open/done and resets to page 1.
func (c Cursor) ToggleStatus() Cursor {
	c.Status = c.Status.Toggle()
	c.Page = 1
	return c
}

// NextPriority cycles the priority filter and resets to page 1.
func (c Cursor) NextPriority() Cursor {
	c.Priority = c.Priority.Next()
	c.Page = 1
	return c
}

// NextDate cycles the date filter and resets to page 1.
func (c Cursor) NextDate() Cursor {
	c.Date = c.Date.Next()
	c.Page = 1
	return c
}

// Token is the decoded form of a button payload.
// Fields that do not belong to Verb are left zero.
type Token struct {
	Verb     Verb
	Action   Action
	TaskID   int64
	Minutes  int
	Priority model.Priority
	Cursor   Cursor
}

// List is a token that renders the listing at c.
func List(c Cursor) Token {
	return Token{Verb: VerbList, Cursor: c}
}

// TaskAction is a token that applies a to taskID from the listing at c.
func TaskAction(a Action, taskID int64, c Cursor) Token {
	return Token{Verb: VerbAction, Action: a, TaskID: taskID, Cursor: c}
}

// SnoozeApply pushes taskID's due date by minutes, then renders c.
func SnoozeApply(taskID int64, minutes int, c Cursor) Token {
	return Token{Verb: VerbSnooze, TaskID: taskID, Minutes: minutes, Cursor: c}
}

// PriorityApply sets taskID's priority, then renders c.
func PriorityApply(taskID int64, p model.Priority, c Cursor) Token {
	return Token{Verb: VerbPriority, TaskID: taskID, Priority: p, Cursor: c}
}

// NewPriority picks the priority of a task being added.
func NewPriority(p model.Priority) Token {
	return Token{Verb: VerbNewPriority, Priority: p}
}

// Noop is acknowledged without any state change.
func Noop() Token {
	return Token{Verb: VerbNoop}
}
