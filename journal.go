package sdjournal

/*
#cgo LDFLAGS: -lsystemd
#include <stdlib.h>
#include <systemd/sd-journal.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

// OpenFlag selects which journal namespaces an Open call may read.
type OpenFlag int

// Open flags, mirroring SD_JOURNAL_* from <systemd/sd-journal.h>.
const (
	// LocalOnly restricts the handle to journals of the local machine.
	LocalOnly OpenFlag = C.SD_JOURNAL_LOCAL_ONLY
	// RuntimeOnly restricts the handle to volatile journals in /run.
	RuntimeOnly OpenFlag = C.SD_JOURNAL_RUNTIME_ONLY
	// SystemOnly restricts the handle to system service journals.
	SystemOnly OpenFlag = C.SD_JOURNAL_SYSTEM
	// CurrentUser restricts the handle to the calling user's journals.
	CurrentUser OpenFlag = C.SD_JOURNAL_CURRENT_USER
	// OSRoot interprets paths relative to an alternate OS root, for
	// inspecting journals inside a container or image tree.
	OSRoot OpenFlag = C.SD_JOURNAL_OS_ROOT
)

// Journal wraps an open sd_journal handle. The zero value is not usable;
// construct one with Open, OpenDirectory or OpenFiles.
//
// The native handle is not thread safe, so every method serializes on an
// internal mutex. A Wait in progress holds that mutex; concurrent callers
// block until it returns.
type Journal struct {
	mu     sync.Mutex
	handle *C.sd_journal
}

// Open opens the default system journal for reading.
func Open(flags OpenFlag) (*Journal, error) {
	j := &Journal{}
	r := C.sd_journal_open(&j.handle, C.int(flags))
	if r < 0 {
		return nil, newError("sd_journal_open", int(r))
	}
	return j, nil
}

// OpenDirectory opens every journal file found under dir. Combine with
// OSRoot to read journals from a mounted image.
func OpenDirectory(dir string, flags OpenFlag) (*Journal, error) {
	cdir := C.CString(dir)
	defer C.free(unsafe.Pointer(cdir))

	j := &Journal{}
	r := C.sd_journal_open_directory(&j.handle, cdir, C.int(flags))
	if r < 0 {
		return nil, newError("sd_journal_open_directory", int(r))
	}
	return j, nil
}

// OpenFiles opens the given journal files only. Interleaving across files
// is handled by the native library.
func OpenFiles(paths ...string) (*Journal, error) {
	cpaths := make([]*C.char, len(paths)+1)
	for i, p := range paths {
		cpaths[i] = C.CString(p)
	}
	defer func() {
		for _, cp := range cpaths {
			if cp != nil {
				C.free(unsafe.Pointer(cp))
			}
		}
	}()

	j := &Journal{}
	r := C.sd_journal_open_files(&j.handle, &cpaths[0], 0)
	if r < 0 {
		return nil, newError("sd_journal_open_files", int(r))
	}
	return j, nil
}

// Close releases the native handle. It is safe to call more than once; only
// the first call closes the handle, later calls are no-ops.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle != nil {
		C.sd_journal_close(j.handle)
		j.handle = nil
	}
	return nil
}

// GetUsage returns the number of bytes the journal currently occupies on
// disk (or in memory, for volatile journals).
func (j *Journal) GetUsage() (uint64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.handle == nil {
		return 0, ErrClosed
	}
	var usage C.uint64_t
	r := C.sd_journal_get_usage(j.handle, &usage)
	if r < 0 {
		return 0, newError("sd_journal_get_usage", int(r))
	}
	return uint64(usage), nil
}
