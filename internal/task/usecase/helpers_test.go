package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task/repository/sqldb"
	"dotask-bot/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Wednesday afternoon.
var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

var alice = model.Scope{TelegramID: 1001, FullName: "Alice", Username: "alice"}
var bob = model.Scope{TelegramID: 2002, FullName: "Bob", Username: "bob"}

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqldb.Migrate(context.Background(), db, sqldb.DialectSQLite))

	l := &mockLogger{}
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	uc := New(l, sqldb.New(db, sqldb.DialectSQLite, l), parser, 5, "en")
	uc.now = func() time.Time { return fixedNow }
	return uc
}
