package jrnlcmd

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/tasleson/sdjournal"
)

func sampleEntry() *sdjournal.Entry {
	ts := time.Date(2024, 6, 1, 12, 30, 5, 0, time.Local)
	return &sdjournal.Entry{
		Cursor:       "c42",
		RealtimeUsec: uint64(ts.UnixMicro()),
		Fields: map[string]string{
			"MESSAGE":           "Accepted publickey for root",
			"SYSLOG_IDENTIFIER": "sshd",
			"_PID":              "814",
			"_HOSTNAME":         "web1",
		},
	}
}

func TestRenderShort(t *testing.T) {
	got := renderShort(sampleEntry())
	want := "Jun 01 12:30:05 web1 sshd[814]: Accepted publickey for root"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderShortFallsBackToComm(t *testing.T) {
	e := &sdjournal.Entry{Fields: map[string]string{
		"MESSAGE": "hello",
		"_COMM":   "myapp",
	}}
	got := renderShort(e)
	if !strings.Contains(got, "myapp: hello") {
		t.Fatalf("got %q", got)
	}
}

func TestRenderEntryJSON(t *testing.T) {
	line, err := renderEntry(sampleEntry(), "json")
	if err != nil {
		t.Fatalf("renderEntry: %v", err)
	}
	var rec renderedEntry
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("not JSON: %v (%s)", err, line)
	}
	if rec.Cursor != "c42" || rec.Fields["MESSAGE"] != "Accepted publickey for root" {
		t.Fatalf("got %+v", rec)
	}
}

func TestRenderEntryUnknownOutput(t *testing.T) {
	if _, err := renderEntry(sampleEntry(), "xml"); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestParseFieldVars(t *testing.T) {
	vars, err := parseFieldVars([]string{"DEPLOY_ID=42", "REGION=eu-west-1"})
	if err != nil {
		t.Fatalf("parseFieldVars: %v", err)
	}
	if vars["DEPLOY_ID"] != "42" || vars["REGION"] != "eu-west-1" {
		t.Fatalf("got %v", vars)
	}
}

func TestParseFieldVarsValueMayContainEquals(t *testing.T) {
	vars, err := parseFieldVars([]string{"QUERY=a=b"})
	if err != nil {
		t.Fatalf("parseFieldVars: %v", err)
	}
	if vars["QUERY"] != "a=b" {
		t.Fatalf("got %v", vars)
	}
}

func TestParseFieldVarsRejectsMalformed(t *testing.T) {
	if _, err := parseFieldVars([]string{"NOVALUE"}); err == nil {
		t.Fatalf("expected error for missing '='")
	}
	if _, err := parseFieldVars([]string{"=value"}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := parseFieldVars([]string{"A=1", "A=2"}); err == nil {
		t.Fatalf("expected error for duplicate name")
	}
}

func TestScopeFlags(t *testing.T) {
	for _, scope := range []string{"", "local", "system", "user", "runtime"} {
		if _, err := scopeFlags(scope); err != nil {
			t.Errorf("scopeFlags(%q): %v", scope, err)
		}
	}
	if _, err := scopeFlags("galaxy"); err == nil {
		t.Fatalf("expected error for unknown scope")
	}
}
