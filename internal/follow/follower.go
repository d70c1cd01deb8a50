package follow

import (
	"context"
	"io"
	"time"

	"github.com/tasleson/sdjournal"

	"github.com/tasleson/sdjournal/pkg/log"
)

// Options configures a Follower.
type Options struct {
	// Match decides whether an entry is delivered. Nil matches everything.
	Match func(*sdjournal.Entry) bool
	// CursorPath, when set, makes the loop resume from and persist to a
	// cursor file.
	CursorPath string
	// ResumeCursor resumes from an explicit cursor string instead of the
	// cursor file. Takes precedence over CursorPath for positioning.
	ResumeCursor string
	// PollInterval bounds each blocking wait so ctx cancellation is
	// observed. Defaults to 250ms.
	PollInterval time.Duration
	Logger       *log.Logger
}

// Follower drains a journal Source into a Sink.
type Follower struct {
	src        Source
	opts       Options
	lastCursor string
}

// New builds a Follower; see Options for defaults.
func New(src Source, opts Options) *Follower {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 250 * time.Millisecond
	}
	if opts.Match == nil {
		opts.Match = func(*sdjournal.Entry) bool { return true }
	}
	if opts.Logger == nil {
		opts.Logger = log.NewLogger(log.WithOutput(io.Discard))
	}
	return &Follower{src: src, opts: opts}
}

// Run positions the source and streams matching entries into sink until
// ctx is cancelled or the source fails. The last delivered cursor is
// persisted at every idle point and on exit.
//
// With a resume cursor the loop starts from the entry after the saved one;
// without, it starts at the tail, so only new entries flow.
func (f *Follower) Run(ctx context.Context, sink Sink) error {
	if err := f.position(sink); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			f.persist()
			return err
		}
		n, err := f.src.Next()
		if err != nil {
			f.persist()
			return err
		}
		if n == 0 {
			f.persist()
			st, err := f.src.Wait(f.opts.PollInterval)
			if err != nil {
				f.persist()
				return err
			}
			if st == sdjournal.StatusInvalidate {
				f.opts.Logger.Debug("journal files rotated or removed")
			}
			continue
		}
		if err := f.deliver(sink); err != nil {
			f.persist()
			return err
		}
	}
}

func (f *Follower) position(sink Sink) error {
	resume := f.opts.ResumeCursor
	if resume == "" && f.opts.CursorPath != "" {
		c, err := LoadCursor(f.opts.CursorPath)
		if err != nil {
			return err
		}
		resume = c
	}
	if resume == "" {
		return f.src.SeekTail()
	}

	if err := f.src.SeekCursor(resume); err != nil {
		return err
	}
	n, err := f.src.Next()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	// Next lands on the saved entry itself, which was already delivered
	// last run. If that entry was rotated away the cursor lands on the
	// nearest survivor instead, and that one must not be skipped. Cursor
	// strings are not canonical, so ask the source rather than comparing.
	same, err := f.src.TestCursor(resume)
	if err != nil {
		return err
	}
	if same {
		return nil
	}
	return f.deliver(sink)
}

func (f *Follower) deliver(sink Sink) error {
	ent, err := f.src.GetEntry()
	if err != nil {
		return err
	}
	f.lastCursor = ent.Cursor
	if !f.opts.Match(ent) {
		return nil
	}
	if err := sink.Send(ent); err != nil {
		return err
	}
	return sink.Flush()
}

func (f *Follower) persist() {
	if f.opts.CursorPath == "" || f.lastCursor == "" {
		return
	}
	if err := SaveCursor(f.opts.CursorPath, f.lastCursor); err != nil {
		f.opts.Logger.Warn("failed to persist cursor", log.Err(err))
	}
}
