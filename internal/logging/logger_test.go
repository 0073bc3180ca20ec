package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Debug().Msg("hidden")
	log.Info().Int("chunk", 2).Msg("wrote chunk")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Expected JSON output: %v", err)
	}
	if entry["message"] != "wrote chunk" {
		t.Errorf("Expected message 'wrote chunk', got %v", entry["message"])
	}
	if entry["chunk"] != float64(2) {
		t.Errorf("Expected chunk 2, got %v", entry["chunk"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("Expected a timestamp")
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "console")

	log.Debug().Str("path", "out_1.xlsx").Msg("wrote chunk")

	out := buf.String()
	if !strings.Contains(out, "wrote chunk") || !strings.Contains(out, "out_1.xlsx") {
		t.Errorf("Expected console output with message and field, got %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("Expected human-readable output, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
