package sdjournal

import (
	"bytes"
	"testing"
)

func TestSplitFieldValue(t *testing.T) {
	name, value, ok := splitFieldValue([]byte("MESSAGE=hello world"))
	if !ok {
		t.Fatalf("expected split to succeed")
	}
	if name != "MESSAGE" || string(value) != "hello world" {
		t.Fatalf("got %q=%q", name, value)
	}
}

func TestSplitFieldValueBinary(t *testing.T) {
	raw := append([]byte("COREDUMP="), 0x00, 0xff, '=', 0x01)
	name, value, ok := splitFieldValue(raw)
	if !ok || name != "COREDUMP" {
		t.Fatalf("split failed: %q %v", name, ok)
	}
	if !bytes.Equal(value, []byte{0x00, 0xff, '=', 0x01}) {
		t.Fatalf("value mangled: %v", value)
	}
}

func TestSplitFieldValueEmptyValue(t *testing.T) {
	name, value, ok := splitFieldValue([]byte("UNIT="))
	if !ok || name != "UNIT" || len(value) != 0 {
		t.Fatalf("got %q=%q ok=%v", name, value, ok)
	}
}

func TestSplitFieldValueNoSeparator(t *testing.T) {
	if _, _, ok := splitFieldValue([]byte("MESSAGE")); ok {
		t.Fatalf("expected failure without separator")
	}
}

func TestValidFieldName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"MESSAGE", true},
		{"_PID", true},
		{"CODE_LINE", true},
		{"SESSION2", true},
		{"", false},
		{"message", false},
		{"9LIVES", false},
		{"BAD-NAME", false},
		{"WITH SPACE", false},
	}
	for _, tt := range tests {
		if got := validFieldName(tt.name); got != tt.want {
			t.Errorf("validFieldName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidFieldNameLength(t *testing.T) {
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'A'
	}
	if validFieldName(string(long)) {
		t.Fatalf("65-byte name should be rejected")
	}
	if !validFieldName(string(long[:64])) {
		t.Fatalf("64-byte name should be accepted")
	}
}

func TestValidUserFieldName(t *testing.T) {
	if validUserFieldName("_PID") {
		t.Fatalf("trusted field must be rejected for sending")
	}
	if !validUserFieldName("DEPLOY_ID") {
		t.Fatalf("ordinary user field must be accepted")
	}
}
