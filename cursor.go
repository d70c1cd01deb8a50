package sdjournal

/*
#cgo LDFLAGS: -lsystemd
#include <stdlib.h>
#include <systemd/sd-journal.h>
*/
import "C"

import (
	"math"
	"time"
	"unsafe"
)

// Status is the wake reason reported by Wait.
type Status int

// Wait statuses, mirroring SD_JOURNAL_NOP/APPEND/INVALIDATE.
const (
	// StatusNOP means the timeout elapsed without any journal change.
	StatusNOP Status = C.SD_JOURNAL_NOP
	// StatusAppend means entries were appended to the journal.
	StatusAppend Status = C.SD_JOURNAL_APPEND
	// StatusInvalidate means journal files were added or removed (e.g. by
	// rotation or vacuuming); the caller should expect the cursor position
	// to need re-validation.
	StatusInvalidate Status = C.SD_JOURNAL_INVALIDATE
)

// IndefiniteWait makes Wait block until the journal changes, with no
// timeout.
const IndefiniteWait time.Duration = -1

// Next advances the read cursor by one entry. It returns the number of
// entries actually advanced: 1 normally, 0 when the cursor already sits at
// the end of the journal.
func (j *Journal) Next() (uint64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return 0, ErrClosed
	}
	r := C.sd_journal_next(j.handle)
	if r < 0 {
		return 0, newError("sd_journal_next", int(r))
	}
	return uint64(r), nil
}

// NextSkip advances the cursor by up to n entries and returns how many it
// actually moved.
func (j *Journal) NextSkip(n uint64) (uint64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return 0, ErrClosed
	}
	r := C.sd_journal_next_skip(j.handle, C.uint64_t(n))
	if r < 0 {
		return 0, newError("sd_journal_next_skip", int(r))
	}
	return uint64(r), nil
}

// Previous moves the read cursor back by one entry. It returns 0 when the
// cursor already sits at the beginning of the journal.
func (j *Journal) Previous() (uint64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return 0, ErrClosed
	}
	r := C.sd_journal_previous(j.handle)
	if r < 0 {
		return 0, newError("sd_journal_previous", int(r))
	}
	return uint64(r), nil
}

// PreviousSkip moves the cursor back by up to n entries and returns how
// many it actually moved.
func (j *Journal) PreviousSkip(n uint64) (uint64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return 0, ErrClosed
	}
	r := C.sd_journal_previous_skip(j.handle, C.uint64_t(n))
	if r < 0 {
		return 0, newError("sd_journal_previous_skip", int(r))
	}
	return uint64(r), nil
}

// SeekHead positions the cursor before the first entry. The next call to
// Next lands on the oldest entry.
func (j *Journal) SeekHead() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return ErrClosed
	}
	if r := C.sd_journal_seek_head(j.handle); r < 0 {
		return newError("sd_journal_seek_head", int(r))
	}
	return nil
}

// SeekTail positions the cursor after the last entry. The next call to
// Previous lands on the newest entry; Next returns 0 until new entries are
// appended.
func (j *Journal) SeekTail() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return ErrClosed
	}
	if r := C.sd_journal_seek_tail(j.handle); r < 0 {
		return newError("sd_journal_seek_tail", int(r))
	}
	return nil
}

// SeekRealtime positions the cursor near the entry with the given wall
// clock timestamp, in microseconds since the epoch.
func (j *Journal) SeekRealtime(usec uint64) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return ErrClosed
	}
	if r := C.sd_journal_seek_realtime_usec(j.handle, C.uint64_t(usec)); r < 0 {
		return newError("sd_journal_seek_realtime_usec", int(r))
	}
	return nil
}

// SeekCursor positions the read cursor at the entry identified by an opaque
// cursor string previously obtained from GetCursor. A following Next lands
// on that entry, or on the nearest surviving one if it was rotated away.
func (j *Journal) SeekCursor(cursor string) error {
	ccur := C.CString(cursor)
	defer C.free(unsafe.Pointer(ccur))

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return ErrClosed
	}
	if r := C.sd_journal_seek_cursor(j.handle, ccur); r < 0 {
		return newError("sd_journal_seek_cursor", int(r))
	}
	return nil
}

// GetCursor returns an opaque string identifying the current entry. The
// string stays valid across process restarts and journal rotation, which
// makes it the unit of durable resume state.
func (j *Journal) GetCursor() (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return "", ErrClosed
	}
	var c *C.char
	if r := C.sd_journal_get_cursor(j.handle, &c); r < 0 {
		return "", newError("sd_journal_get_cursor", int(r))
	}
	defer C.free(unsafe.Pointer(c))
	return C.GoString(c), nil
}

// TestCursor reports whether the current entry is the one the cursor string
// identifies. Cursor strings are not canonical, so byte comparison of two
// cursors is not a correct equality test; this is.
func (j *Journal) TestCursor(cursor string) (bool, error) {
	ccur := C.CString(cursor)
	defer C.free(unsafe.Pointer(ccur))

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return false, ErrClosed
	}
	r := C.sd_journal_test_cursor(j.handle, ccur)
	if r < 0 {
		return false, newError("sd_journal_test_cursor", int(r))
	}
	return r > 0, nil
}

// Wait blocks until the journal changes or the timeout elapses, and reports
// why it woke. Pass IndefiniteWait to block without a timeout.
//
// Wait holds the handle's mutex for its whole duration, so follow loops
// that need to observe cancellation should wait in short slices rather
// than indefinitely.
func (j *Journal) Wait(timeout time.Duration) (Status, error) {
	var usec C.uint64_t
	if timeout < 0 {
		usec = C.uint64_t(math.MaxUint64)
	} else {
		usec = C.uint64_t(timeout / time.Microsecond)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return StatusNOP, ErrClosed
	}
	r := C.sd_journal_wait(j.handle, usec)
	if r < 0 {
		return StatusNOP, newError("sd_journal_wait", int(r))
	}
	return Status(r), nil
}
