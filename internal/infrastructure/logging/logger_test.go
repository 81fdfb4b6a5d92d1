package logging

import (
	"log/slog"
	"testing"

	"github.com/farrand/iotcore/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_DoesNotPanic(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		for _, output := range []string{"stdout", "stderr", ""} {
			log := New(config.LoggingConfig{Level: "error", Format: format, Output: output}, "test")
			if log == nil {
				t.Fatalf("New(format=%q, output=%q) returned nil", format, output)
			}
		}
	}
}

func TestWith_ReturnsDerivedLogger(t *testing.T) {
	base := Default()
	derived := base.With("component", "api")

	if derived == nil || derived.Logger == nil {
		t.Fatal("With() returned nil logger")
	}
	if derived == base {
		t.Error("With() should return a new Logger")
	}
}
