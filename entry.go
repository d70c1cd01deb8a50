package sdjournal

/*
#cgo LDFLAGS: -lsystemd
#include <stdlib.h>
#include <systemd/sd-journal.h>
*/
import "C"

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"
)

// Entry is a decoded snapshot of the entry under the read cursor. Unlike
// the native buffers it was decoded from, an Entry stays valid after the
// cursor moves on.
type Entry struct {
	// Fields maps field names to values, e.g. "MESSAGE" or "_PID". Values
	// with non-UTF-8 bytes are carried as raw byte strings.
	Fields map[string]string
	// Cursor is the opaque resume token for this entry.
	Cursor string
	// RealtimeUsec is the wall clock timestamp in microseconds since the
	// epoch.
	RealtimeUsec uint64
	// MonotonicUsec is the monotonic clock timestamp in microseconds,
	// meaningful within the boot identified by BootID.
	MonotonicUsec uint64
	// BootID identifies the boot the monotonic timestamp belongs to.
	BootID string
}

// Realtime returns the entry's wall clock timestamp as a time.Time.
func (e *Entry) Realtime() time.Time {
	return time.UnixMicro(int64(e.RealtimeUsec))
}

// Message returns the MESSAGE field, or an empty string if the entry has
// none.
func (e *Entry) Message() string {
	return e.Fields["MESSAGE"]
}

// GetData returns the current entry's field as the raw FIELD=value string
// the journal stores.
func (j *Journal) GetData(field string) (string, error) {
	b, err := j.getData(field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetDataValue returns the current entry's field value with the FIELD=
// prefix stripped.
func (j *Journal) GetDataValue(field string) (string, error) {
	b, err := j.GetDataBytes(field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetDataBytes returns the current entry's field value as raw bytes, for
// fields that carry binary data.
func (j *Journal) GetDataBytes(field string) ([]byte, error) {
	b, err := j.getData(field)
	if err != nil {
		return nil, err
	}
	_, value, ok := splitFieldValue(b)
	if !ok {
		return nil, fmt.Errorf("sdjournal: malformed data buffer for field %q", field)
	}
	return value, nil
}

func (j *Journal) getData(field string) ([]byte, error) {
	if !validFieldName(field) {
		return nil, fmt.Errorf("sdjournal: invalid field name %q", field)
	}
	cfield := C.CString(field)
	defer C.free(unsafe.Pointer(cfield))

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return nil, ErrClosed
	}
	var d unsafe.Pointer
	var l C.size_t
	r := C.sd_journal_get_data(j.handle, cfield, &d, &l)
	if r < 0 {
		if syscall.Errno(-r) == syscall.ENOENT {
			return nil, ErrFieldNotPresent
		}
		return nil, newError("sd_journal_get_data", int(r))
	}
	return C.GoBytes(d, C.int(l)), nil
}

// GetEntry decodes every field of the current entry along with its cursor
// and timestamps.
func (j *Journal) GetEntry() (*Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return nil, ErrClosed
	}

	var realtime C.uint64_t
	if r := C.sd_journal_get_realtime_usec(j.handle, &realtime); r < 0 {
		return nil, newError("sd_journal_get_realtime_usec", int(r))
	}
	var monotonic C.uint64_t
	var boot C.sd_id128_t
	if r := C.sd_journal_get_monotonic_usec(j.handle, &monotonic, &boot); r < 0 {
		return nil, newError("sd_journal_get_monotonic_usec", int(r))
	}
	var ccur *C.char
	if r := C.sd_journal_get_cursor(j.handle, &ccur); r < 0 {
		return nil, newError("sd_journal_get_cursor", int(r))
	}
	cursor := C.GoString(ccur)
	C.free(unsafe.Pointer(ccur))

	ent := &Entry{
		Fields:        make(map[string]string),
		Cursor:        cursor,
		RealtimeUsec:  uint64(realtime),
		MonotonicUsec: uint64(monotonic),
		BootID:        id128String(boot),
	}

	C.sd_journal_restart_data(j.handle)
	for {
		var d unsafe.Pointer
		var l C.size_t
		r := C.sd_journal_enumerate_data(j.handle, &d, &l)
		if r == 0 {
			break
		}
		if r < 0 {
			return nil, newError("sd_journal_enumerate_data", int(r))
		}
		name, value, ok := splitFieldValue(C.GoBytes(d, C.int(l)))
		if ok {
			ent.Fields[name] = string(value)
		}
	}
	return ent, nil
}

// GetUniqueValues returns every distinct value the given field takes across
// the whole journal, e.g. all unit names for _SYSTEMD_UNIT.
func (j *Journal) GetUniqueValues(field string) ([]string, error) {
	if !validFieldName(field) {
		return nil, fmt.Errorf("sdjournal: invalid field name %q", field)
	}
	cfield := C.CString(field)
	defer C.free(unsafe.Pointer(cfield))

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return nil, ErrClosed
	}
	if r := C.sd_journal_query_unique(j.handle, cfield); r < 0 {
		return nil, newError("sd_journal_query_unique", int(r))
	}

	var values []string
	C.sd_journal_restart_unique(j.handle)
	for {
		var d unsafe.Pointer
		var l C.size_t
		r := C.sd_journal_enumerate_unique(j.handle, &d, &l)
		if r == 0 {
			break
		}
		if r < 0 {
			return nil, newError("sd_journal_enumerate_unique", int(r))
		}
		if _, value, ok := splitFieldValue(C.GoBytes(d, C.int(l))); ok {
			values = append(values, string(value))
		}
	}
	return values, nil
}

func id128String(id C.sd_id128_t) string {
	var buf [33]C.char
	C.sd_id128_to_string(id, &buf[0])
	return C.GoString(&buf[0])
}
