package jrnlcmd

import (
	"testing"
)

// fakePositioner models the sd-journal position over a list of cursor
// strings: a gap index p in [0..len] and a current entry c, where a
// successful Next keeps p == c+1.
type fakePositioner struct {
	cursors []string
	p       int
	c       int

	headSought bool
	tailSought bool
}

func newFakePositioner(cursors ...string) *fakePositioner {
	return &fakePositioner{cursors: cursors, c: -1}
}

func (f *fakePositioner) SeekHead() error {
	f.p, f.c = 0, -1
	f.headSought = true
	return nil
}

func (f *fakePositioner) SeekTail() error {
	f.p, f.c = len(f.cursors), -1
	f.tailSought = true
	return nil
}

func (f *fakePositioner) SeekCursor(cursor string) error {
	for i, c := range f.cursors {
		if c == cursor {
			f.p, f.c = i, -1
			return nil
		}
	}
	// Unresolvable cursors land on the nearest surviving entry.
	f.p, f.c = 0, -1
	return nil
}

func (f *fakePositioner) Next() (uint64, error) {
	target := f.p
	if f.c >= 0 {
		target = f.c + 1
	}
	if target > len(f.cursors)-1 {
		return 0, nil
	}
	f.c = target
	f.p = target + 1
	return 1, nil
}

func (f *fakePositioner) TestCursor(cursor string) (bool, error) {
	return f.cursors[f.c] == cursor, nil
}

// current returns the cursor under the read position, or "" when no entry
// is current.
func (f *fakePositioner) current() string {
	if f.c < 0 || f.c >= len(f.cursors) {
		return ""
	}
	return f.cursors[f.c]
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name    string
		cursors []string
		cursor  string
		reverse bool

		wantInclude bool
		wantCurrent string
		wantHead    bool
		wantTail    bool
	}{
		{
			name:     "forward from start",
			cursors:  []string{"c1", "c2", "c3"},
			wantHead: true,
		},
		{
			name:     "reverse from end",
			cursors:  []string{"c1", "c2", "c3"},
			reverse:  true,
			wantTail: true,
		},
		{
			name:    "forward resume skips saved entry",
			cursors: []string{"c1", "c2", "c3"},
			cursor:  "c2",
			// The saved entry is consumed and skipped; the caller's first
			// advance lands on c3.
			wantCurrent: "c2",
		},
		{
			name:        "forward resume from rotated-away cursor",
			cursors:     []string{"c5", "c6"},
			cursor:      "c-gone",
			wantInclude: true,
			wantCurrent: "c5",
		},
		{
			name:    "forward resume at newest entry",
			cursors: []string{"c1", "c2"},
			cursor:  "c2",
			// Nothing follows the saved entry; nothing to include.
			wantCurrent: "c2",
		},
		{
			name:   "forward resume into empty journal",
			cursor: "c-gone",
		},
		{
			name:    "reverse from cursor seeks without consuming",
			cursors: []string{"c1", "c2", "c3"},
			cursor:  "c3",
			reverse: true,
			// Previous from the seeked position lands strictly before c3;
			// position itself must not consume an entry.
			wantCurrent: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakePositioner(tt.cursors...)
			include, err := position(f, tt.cursor, tt.reverse)
			if err != nil {
				t.Fatalf("position: %v", err)
			}
			if include != tt.wantInclude {
				t.Errorf("includeCurrent = %v, want %v", include, tt.wantInclude)
			}
			if got := f.current(); got != tt.wantCurrent {
				t.Errorf("current = %q, want %q", got, tt.wantCurrent)
			}
			if f.headSought != tt.wantHead {
				t.Errorf("headSought = %v, want %v", f.headSought, tt.wantHead)
			}
			if f.tailSought != tt.wantTail {
				t.Errorf("tailSought = %v, want %v", f.tailSought, tt.wantTail)
			}
		})
	}
}
