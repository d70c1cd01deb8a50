package follow

import (
	"time"

	"github.com/tasleson/sdjournal"
)

// Source is the slice of the journal binding the follow loop needs.
// *sdjournal.Journal satisfies it; tests substitute fakes.
type Source interface {
	Next() (uint64, error)
	Wait(timeout time.Duration) (sdjournal.Status, error)
	GetEntry() (*sdjournal.Entry, error)
	SeekTail() error
	SeekCursor(cursor string) error
	TestCursor(cursor string) (bool, error)
}

// Sink receives matching entries. Send may buffer; Flush pushes buffered
// entries to the consumer.
type Sink interface {
	Send(e *sdjournal.Entry) error
	Flush() error
}
