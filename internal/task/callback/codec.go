package callback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
)

// MaxLength is the Bot API ceiling for callback_data, in bytes.
const MaxLength = 64

const maxPage = 1<<31 - 1

// ErrInvalidToken is returned by Decode for anything outside the grammar.
var ErrInvalidToken = errors.New("invalid callback token")

// Encode serializes t. It panics when the result exceeds MaxLength,
// which can only happen through a programming error.
func Encode(t Token) string {
	var head string
	withCursor := true

	switch t.Verb {
	case VerbList:
		head = string(VerbList)
	case VerbAction:
		head = fmt.Sprintf("%s:%s:%d", VerbAction, t.Action, t.TaskID)
	case VerbSnooze:
		head = fmt.Sprintf("%s:%d:%d", VerbSnooze, t.TaskID, t.Minutes)
	case VerbPriority:
		head = fmt.Sprintf("%s:%d:%s", VerbPriority, t.TaskID, t.Priority.Code())
	case VerbNewPriority:
		head = fmt.Sprintf("%s:%s", VerbNewPriority, t.Priority.Code())
		withCursor = false
	case VerbNoop:
		head = string(VerbNoop)
		withCursor = false
	default:
		panic(fmt.Sprintf("callback: cannot encode verb %q", t.Verb))
	}

	out := head
	if withCursor {
		c := t.Cursor
		out = fmt.Sprintf("%s;s=%s;p=%d;f=%s;d=%s", head, c.Status, c.Page, c.Priority, c.Date)
	}

	if len(out) > MaxLength {
		panic(fmt.Sprintf("callback: token too long (%d > %d): %q", len(out), MaxLength, out))
	}
	return out
}

// Decode parses s. Every input outside the grammar yields ErrInvalidToken.
func Decode(s string) (Token, error) {
	if s == "" || len(s) > MaxLength {
		return Token{}, ErrInvalidToken
	}

	head, rest, hasRest := strings.Cut(s, ";")
	parts := strings.Split(head, ":")

	var t Token
	switch Verb(parts[0]) {
	case VerbList:
		if len(parts) != 1 {
			return Token{}, ErrInvalidToken
		}
		t.Verb = VerbList

	case VerbAction:
		if len(parts) != 3 {
			return Token{}, ErrInvalidToken
		}
		a := Action(parts[1])
		id, ok := parseID(parts[2])
		if !a.Valid() || !ok {
			return Token{}, ErrInvalidToken
		}
		t = Token{Verb: VerbAction, Action: a, TaskID: id}

	case VerbSnooze:
		if len(parts) != 3 {
			return Token{}, ErrInvalidToken
		}
		id, ok := parseID(parts[1])
		mins, okMins := parseInt(parts[2], task.MaxSnoozeMinutes)
		if !ok || !okMins {
			return Token{}, ErrInvalidToken
		}
		t = Token{Verb: VerbSnooze, TaskID: id, Minutes: mins}

	case VerbPriority:
		if len(parts) != 3 {
			return Token{}, ErrInvalidToken
		}
		id, ok := parseID(parts[1])
		p, okPrio := model.PriorityFromCode(parts[2])
		if !ok || !okPrio {
			return Token{}, ErrInvalidToken
		}
		t = Token{Verb: VerbPriority, TaskID: id, Priority: p}

	case VerbNewPriority:
		if len(parts) != 2 || hasRest {
			return Token{}, ErrInvalidToken
		}
		p, ok := model.PriorityFromCode(parts[1])
		if !ok {
			return Token{}, ErrInvalidToken
		}
		return NewPriority(p), nil

	case VerbNoop:
		if len(parts) != 1 || hasRest {
			return Token{}, ErrInvalidToken
		}
		return Noop(), nil

	default:
		return Token{}, ErrInvalidToken
	}

	if hasRest && rest == "" {
		return Token{}, ErrInvalidToken
	}
	c, err := decodeCursor(rest)
	if err != nil {
		return Token{}, err
	}
	t.Cursor = c
	return t, nil
}

// decodeCursor reads "s=o;p=1;f=A;d=A". Missing keys keep their defaults;
// unknown keys, repeated keys and bad values are rejected.
func decodeCursor(kv string) (Cursor, error) {
	c := DefaultCursor()
	if kv == "" {
		return c, nil
	}

	seen := make(map[string]bool, 4)
	for _, chunk := range strings.Split(kv, ";") {
		k, v, ok := strings.Cut(chunk, "=")
		if !ok || seen[k] {
			return Cursor{}, ErrInvalidToken
		}
		seen[k] = true

		switch k {
		case "s":
			c.Status = model.Status(v)
			if !c.Status.Valid() {
				return Cursor{}, ErrInvalidToken
			}
		case "p":
			page, ok := parseInt(v, maxPage)
			if !ok {
				return Cursor{}, ErrInvalidToken
			}
			c.Page = page
		case "f":
			c.Priority = model.PriorityFilter(v)
			if !c.Priority.Valid() {
				return Cursor{}, ErrInvalidToken
			}
		case "d":
			c.Date = model.DateFilter(v)
			if !c.Date.Valid() {
				return Cursor{}, ErrInvalidToken
			}
		default:
			return Cursor{}, ErrInvalidToken
		}
	}
	return c, nil
}

func parseID(s string) (int64, bool) {
	if !digitsOnly(s) || s[0] == '0' {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parseInt accepts a canonical positive decimal no larger than max.
func parseInt(s string, max int) (int, bool) {
	if !digitsOnly(s) || s[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
