package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},

		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"dEbUg", LevelDebug},
		{" error ", LevelError},

		// Empty and unknown names fall back to warn
		{"", LevelWarn},
		{"trace", LevelWarn},
		{"fatal", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"Json", FormatJSON},
		{"text", FormatText},
		{"", FormatText},
		{"yaml", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Debug("hidden")
	logger.Info("unresolved placeholder", "placeholder", "@nope")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["placeholder"] != "@nope" {
		t.Errorf("placeholder attr = %v, want @nope", rec["placeholder"])
	}
}

func TestFromStrings_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := FromStrings("debug", "text", &buf)
	logger.Debug("resolved", "path", "/a/b")

	if !strings.Contains(buf.String(), "path=/a/b") {
		t.Errorf("text output %q does not contain path attr", buf.String())
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("dropped")
	if logger.Enabled(context.Background(), LevelError) {
		t.Error("Nop logger reports enabled")
	}
}
