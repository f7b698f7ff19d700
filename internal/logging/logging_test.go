package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatJSON)

	logger.Info("server starting", "port", "8080")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "server starting" {
		t.Errorf("expected msg=server starting, got %v", entry["msg"])
	}
	if entry["port"] != "8080" {
		t.Errorf("expected port=8080, got %v", entry["port"])
	}
}

func TestNew_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "")

	logger.Info("hello")

	if !json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatText)

	logger.Info("server starting", "port", "8080")

	out := buf.String()
	if json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Fatalf("expected text output, got JSON %q", out)
	}
	if !strings.Contains(out, "server starting") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "port=8080") {
		t.Errorf("expected port=8080 in output, got %q", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatText} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, slog.LevelWarn, format)

			logger.Info("dropped")
			if buf.Len() != 0 {
				t.Fatalf("expected info to be filtered, got %q", buf.String())
			}

			logger.Warn("kept")
			if !strings.Contains(buf.String(), "kept") {
				t.Errorf("expected warn to be logged, got %q", buf.String())
			}
		})
	}
}

func TestCharmLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want log.Level
	}{
		{slog.LevelDebug, log.DebugLevel},
		{slog.LevelInfo, log.InfoLevel},
		{slog.LevelWarn, log.WarnLevel},
		{slog.LevelError, log.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := charmLevel(tt.in); got != tt.want {
				t.Errorf("charmLevel(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
