package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestRun_InvalidConfig verifies run fails with an unparseable config file.
func TestRun_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad-config.yaml")
	if err := os.WriteFile(configPath, []byte("api: [not a mapping"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("IOTCORE_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with malformed config")
	}
}

// TestRun_InvalidDatabasePath verifies run fails when the database path
// fails validation.
func TestRun_InvalidDatabasePath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `
database:
  path: ""

logging:
  level: error
  format: text
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("IOTCORE_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with empty database path")
	}
}

// TestGetConfigPath_Default verifies default config path.
func TestGetConfigPath_Default(t *testing.T) {
	t.Setenv("IOTCORE_CONFIG", "")

	if path := getConfigPath(); path != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", path, defaultConfigPath)
	}
}

// TestGetConfigPath_EnvOverride verifies environment variable override.
func TestGetConfigPath_EnvOverride(t *testing.T) {
	expected := "/custom/path/config.yaml"
	t.Setenv("IOTCORE_CONFIG", expected)

	if path := getConfigPath(); path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}

// TestRun_StartupAndShutdown starts the full service on an ephemeral
// database and shuts it down via context cancellation.
func TestRun_StartupAndShutdown(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")
	dbPath := filepath.Join(tmpDir, "test.db")

	configContent := `
api:
  host: "127.0.0.1"
  port: 18099
  timeouts:
    read: 5
    write: 5
    idle: 5

database:
  path: "` + dbPath + `"
  wal_mode: true
  busy_timeout: 5

auth:
  secret: "test-secret-for-development-only"
  algorithm: HS256
  token_ttl_minutes: 15

rate_limit:
  register_per_minute: 10

logging:
  level: error
  format: text
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("IOTCORE_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := run(ctx); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected database file to be created: %v", err)
	}
}
