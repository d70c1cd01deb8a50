// Package sdjournal provides Go bindings to the systemd journal via
// libsystemd's sd-journal C API.
//
// # Overview
//
// A Journal wraps an open sd_journal handle. The handle owns a single read
// cursor; callers advance it with Next/Previous, reposition it with the Seek
// functions, and read the current entry's fields with GetData or GetEntry.
// Wait blocks until the journal changes, which is the building block for
// follow-style consumers.
//
// All methods on a Journal serialize on an internal mutex because sd_journal
// handles are not safe for concurrent use. Close releases the native handle
// exactly once; any call after Close returns ErrClosed.
//
// # API surface
//
//	j, _ := sdjournal.Open(sdjournal.LocalOnly)
//	defer j.Close()
//
//	// Iterate forward and read the current entry
//	for {
//		n, _ := j.Next()
//		if n == 0 {
//			break
//		}
//		msg, _ := j.GetDataValue("MESSAGE")
//		_ = msg
//	}
//
//	// Block until new entries arrive (or a timeout elapses)
//	st, _ := j.Wait(250 * time.Millisecond)
//	_ = st // StatusNOP, StatusAppend or StatusInvalidate
//
//	// Resume later from an opaque cursor string
//	cur, _ := j.GetCursor()
//	_ = j.SeekCursor(cur)
//
// Writing goes through the native client API rather than a handle:
//
//	_ = sdjournal.Send("deploy finished", sdjournal.PriInfo, map[string]string{
//		"DEPLOY_ID": "42",
//	})
//
// Native buffers are length-prefixed FIELD=value byte strings; the package
// decodes them at the first '=' so binary-safe values round-trip.
package sdjournal
