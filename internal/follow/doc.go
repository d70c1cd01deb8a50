// Package follow implements the tail loop shared by `jrnl follow` and the
// gateway's streaming mode: drain entries from a journal source, apply a
// predicate, deliver matches to a sink, and block in short wait slices at
// the end of the journal so context cancellation stays responsive.
//
// The loop can resume from a cursor file. The file holds one opaque cursor
// string; it is written atomically (temp file + rename) and never
// overwritten with an empty cursor.
package follow
