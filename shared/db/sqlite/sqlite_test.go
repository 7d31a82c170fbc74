package sqlite

import (
	"path/filepath"
	"testing"
)

func TestSQLiteDB_Connect(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database := New(&Config{DSN: dbPath})

	if err := database.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer database.Close()

	if database.DB() == nil {
		t.Fatal("DB() returned nil after Connect")
	}

	if err := database.DB().Ping(); err != nil {
		t.Errorf("Ping after Connect failed: %v", err)
	}
}

func TestSQLiteDB_ConnectTwice(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database := New(&Config{DSN: dbPath})

	if err := database.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer database.Close()

	if err := database.Connect(); err == nil {
		t.Error("expected error when connecting twice")
	}
}

func TestSQLiteDB_Close(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database := New(&Config{DSN: dbPath})

	if err := database.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if err := database.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	// Closing again is a no-op
	if err := database.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	if database.DB() != nil {
		t.Error("DB() should be nil after Close")
	}
}
