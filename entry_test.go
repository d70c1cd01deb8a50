package sdjournal

import (
	"testing"
	"time"
)

func TestEntryRealtime(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	e := &Entry{RealtimeUsec: uint64(ts.UnixMicro())}
	if !e.Realtime().Equal(ts) {
		t.Fatalf("got %v, want %v", e.Realtime(), ts)
	}
}

func TestEntryMessage(t *testing.T) {
	e := &Entry{Fields: map[string]string{"MESSAGE": "unit started"}}
	if e.Message() != "unit started" {
		t.Fatalf("got %q", e.Message())
	}
	empty := &Entry{Fields: map[string]string{}}
	if empty.Message() != "" {
		t.Fatalf("expected empty message")
	}
}
