package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	if output == "" {
		t.Fatal("expected output, got empty string")
	}

	// Verify it's valid JSON
	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, output)
	}

	if _, ok := parsed["msg"]; !ok {
		t.Errorf("JSON output missing 'msg' field: %s", output)
	}
	if parsed["key"] != "value" {
		t.Errorf("JSON output missing custom attribute: got %v, want 'value'", parsed["key"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("output missing message: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("output missing key=value attribute: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("output missing level indicator: %s", output)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("hidden")
	logger.Warn("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(output, "visible") {
		t.Error("warn message should be logged")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Should not panic and should accept all levels
	logger.Debug("discarded")
	logger.Error("discarded")
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	logger := slog.New(handler)

	logger.Info("fan out")

	if !strings.Contains(a.String(), "fan out") {
		t.Error("first handler should receive the record")
	}
	if !strings.Contains(b.String(), "fan out") {
		t.Error("second handler should receive the record")
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the stored logger")
	}
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext should fall back to the default logger")
	}
}
