package sdjournal

import (
	"sort"
	"testing"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"err", PriErr, true},
		{"error", PriErr, true},
		{"WARNING", PriWarning, true},
		{"info", PriInfo, true},
		{"3", PriErr, true},
		{"7", PriDebug, true},
		{"8", 0, false},
		{"loud", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParsePriority(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParsePriority(%q) should fail", tt.in)
		}
	}
}

func TestBuildSendFields(t *testing.T) {
	fields, err := buildSendFields("disk replaced", PriNotice, map[string]string{
		"DEVICE":  "sda",
		"BAY_NUM": "4",
	})
	if err != nil {
		t.Fatalf("buildSendFields: %v", err)
	}
	sort.Strings(fields)
	want := []string{"BAY_NUM=4", "DEVICE=sda", "MESSAGE=disk replaced", "PRIORITY=5"}
	if len(fields) != len(want) {
		t.Fatalf("got %v", fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("got %v, want %v", fields, want)
		}
	}
}

func TestBuildSendFieldsRejectsReserved(t *testing.T) {
	if _, err := buildSendFields("x", PriInfo, map[string]string{"MESSAGE": "y"}); err == nil {
		t.Fatalf("shadowing MESSAGE should fail")
	}
	if _, err := buildSendFields("x", PriInfo, map[string]string{"_PID": "1"}); err == nil {
		t.Fatalf("trusted field should fail")
	}
	if _, err := buildSendFields("x", PriInfo, map[string]string{"lower": "y"}); err == nil {
		t.Fatalf("lowercase field should fail")
	}
}

func TestBuildSendFieldsRejectsBadPriority(t *testing.T) {
	if _, err := buildSendFields("x", Priority(9), nil); err == nil {
		t.Fatalf("out-of-range priority should fail")
	}
}
