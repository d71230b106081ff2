package database

import (
	"context"
	"testing"

	"dotask-bot/config"
)

func TestConnectSQLiteMemory(t *testing.T) {
	db, err := Connect(context.Background(), config.DatabaseConfig{Driver: DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer Disconnect(db)

	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}
}

func TestConnectUnsupportedDriver(t *testing.T) {
	if _, err := Connect(context.Background(), config.DatabaseConfig{Driver: "mysql"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestDisconnectNil(t *testing.T) {
	if err := Disconnect(nil); err != nil {
		t.Fatalf("Disconnect(nil) = %v", err)
	}
}
