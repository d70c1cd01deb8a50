package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", DebugLevel, true},
		{"INFO", InfoLevel, true},
		{"warning", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"loud", InfoLevel, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseLevel(%q) should fail", tt.in)
		}
	}
}

func TestLoggerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithLevel(WarnLevel), WithOutput(&buf))
	l.Info("quiet")
	l.Warn("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info message should have been suppressed: %s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn message missing: %s", out)
	}
}

func TestLoggerJSONFieldsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithFormat("json"), WithOutput(&buf)).WithComponent("gateway")
	l.Info("listening", String("addr", ":8080"), Int("retries", 2))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if rec["component"] != "gateway" || rec["addr"] != ":8080" {
		t.Fatalf("fields missing: %v", rec)
	}
	if rec["retries"] != float64(2) {
		t.Fatalf("retries = %v", rec["retries"])
	}
}

func TestSetLevelSharedAcrossCopies(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))
	child := l.WithComponent("follower")
	l.SetLevel(ErrorLevel)
	child.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %s", buf.String())
	}
}
