package log_test

import (
	"context"
	"testing"

	"dotask-bot/pkg/log"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	if got := log.TraceIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty trace id, got %q", got)
	}

	ctx = log.WithTraceID(ctx, "abc-123")
	if got := log.TraceIDFromContext(ctx); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}
}

func TestInit(t *testing.T) {
	for _, enc := range []string{log.EncodingConsole, log.EncodingJSON} {
		t.Run(enc, func(t *testing.T) {
			l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: enc})
			if l == nil {
				t.Fatal("expected logger")
			}
			l.Infof(log.WithTraceID(context.Background(), "t-1"), "hello %s", enc)
		})
	}
}
