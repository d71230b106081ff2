package sqldb

import "testing"

func TestRebind(t *testing.T) {
	q := `UPDATE tasks SET due_date = COALESCE(due_date, ?) + ? WHERE id = ? AND user_id = ?`

	if got := DialectSQLite.rebind(q); got != q {
		t.Errorf("sqlite must keep ? placeholders, got %q", got)
	}

	want := `UPDATE tasks SET due_date = COALESCE(due_date, $1) + $2 WHERE id = $3 AND user_id = $4`
	if got := DialectPostgres.rebind(q); got != want {
		t.Errorf("postgres rebind:\n got %q\nwant %q", got, want)
	}
}

func TestDialectValid(t *testing.T) {
	if !DialectSQLite.Valid() || !DialectPostgres.Valid() {
		t.Fatal("known dialects must be valid")
	}
	if Dialect("mysql").Valid() {
		t.Fatal("mysql is not supported")
	}
}
