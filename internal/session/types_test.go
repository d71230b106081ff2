package session

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	k := Key{ChatID: -100123, UserID: 42}
	if got := k.String(); got != "-100123:42" {
		t.Errorf("Key.String() = %q, want %q", got, "-100123:42")
	}
}

func TestSessionActive(t *testing.T) {
	if (Session{}).Active() {
		t.Error("zero session should be idle")
	}
	if !(Session{State: StateAddDue}).Active() {
		t.Error("add:due session should be active")
	}
}
