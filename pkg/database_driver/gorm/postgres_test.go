package gorm

import (
	"strings"
	"testing"
)

// TestDSNSSLMode tests the sslmode switch of the connection string
func TestDSNSSLMode(t *testing.T) {
	opts := PostgresOptions{
		Host:     "localhost",
		Port:     "5432",
		Username: "todo",
		Password: "secret",
		DbName:   "todos",
	}

	dsn := opts.DSN()
	for _, part := range []string{"host=localhost", "user=todo", "password=secret", "dbname=todos", "port=5432", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("expected DSN to contain %q, got %s", part, dsn)
		}
	}

	opts.SSLMode = true
	if dsn := opts.DSN(); !strings.Contains(dsn, "sslmode=require") {
		t.Errorf("expected sslmode=require, got %s", dsn)
	}
}

// TestConnectToPostgreSQLRequiresTarget tests that an empty target is rejected before dialing
func TestConnectToPostgreSQLRequiresTarget(t *testing.T) {
	db, err := ConnectToPostgreSQL(PostgresOptions{})
	if err == nil {
		t.Error("expected error for empty connection options, got nil")
	}
	if db != nil {
		t.Errorf("expected nil DB, got %v", db)
	}
}

// TestConfig tests the shared gorm settings
func TestConfig(t *testing.T) {
	cfg := Config(false)
	if !cfg.SkipDefaultTransaction {
		t.Error("expected SkipDefaultTransaction to be enabled")
	}
	if !cfg.TranslateError {
		t.Error("expected TranslateError to be enabled")
	}
	if cfg.Logger == nil {
		t.Fatal("expected a logger")
	}
}
