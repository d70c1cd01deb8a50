package sdjournal

/*
#cgo LDFLAGS: -lsystemd
#include <stdlib.h>
#include <systemd/sd-journal.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// checkMatch validates a FIELD=value match expression before it is handed
// to the native library.
func checkMatch(match string) error {
	name, _, ok := splitFieldValue([]byte(match))
	if !ok {
		return fmt.Errorf("sdjournal: match %q is not of the form FIELD=value", match)
	}
	if !validFieldName(name) {
		return fmt.Errorf("sdjournal: match %q has an invalid field name", match)
	}
	return nil
}

// AddMatch restricts iteration to entries whose field equals the given
// value. The expression is FIELD=value; the value part may contain
// arbitrary bytes. Multiple matches on the same field are ORed, matches on
// different fields are ANDed.
func (j *Journal) AddMatch(match string) error {
	if err := checkMatch(match); err != nil {
		return err
	}
	cmatch := C.CString(match)
	defer C.free(unsafe.Pointer(cmatch))

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return ErrClosed
	}
	if r := C.sd_journal_add_match(j.handle, unsafe.Pointer(cmatch), C.size_t(len(match))); r < 0 {
		return newError("sd_journal_add_match", int(r))
	}
	return nil
}

// AddDisjunction inserts a logical OR between the matches added before and
// after the call.
func (j *Journal) AddDisjunction() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return ErrClosed
	}
	if r := C.sd_journal_add_disjunction(j.handle); r < 0 {
		return newError("sd_journal_add_disjunction", int(r))
	}
	return nil
}

// AddConjunction inserts a logical AND between the matches added before and
// after the call.
func (j *Journal) AddConjunction() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return ErrClosed
	}
	if r := C.sd_journal_add_conjunction(j.handle); r < 0 {
		return newError("sd_journal_add_conjunction", int(r))
	}
	return nil
}

// FlushMatches removes every active match, returning the handle to
// unfiltered iteration.
func (j *Journal) FlushMatches() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return ErrClosed
	}
	C.sd_journal_flush_matches(j.handle)
	return nil
}
