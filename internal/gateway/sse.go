package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tasleson/sdjournal"

	"github.com/tasleson/sdjournal/internal/filter"
	"github.com/tasleson/sdjournal/internal/follow"
	"github.com/tasleson/sdjournal/pkg/log"
)

// sseSink implements follow.Sink for Server-Sent Events: each journal
// entry becomes one "data:" event, JSON-encoded, flushed immediately.
type sseSink struct {
	w http.ResponseWriter
	f http.Flusher
}

func (s sseSink) Send(e *sdjournal.Entry) error {
	b, err := json.Marshal(toEntryJSON(e))
	if err != nil {
		return err
	}
	if _, err := s.w.Write([]byte("data: ")); err != nil {
		return err
	}
	if _, err := s.w.Write(b); err != nil {
		return err
	}
	_, err = s.w.Write([]byte("\n\n"))
	return err
}

func (s sseSink) Flush() error {
	s.f.Flush()
	return nil
}

func (s *Server) followEntries(w http.ResponseWriter, r *http.Request, j Journal, fl filter.Filter, cursor string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	f := follow.New(j, follow.Options{
		Match:        fl.Match,
		ResumeCursor: cursor,
		PollInterval: s.pollInterval,
		Logger:       s.logger,
	})
	err := f.Run(r.Context(), sseSink{w: w, f: flusher})
	if err != nil && !errors.Is(err, context.Canceled) {
		// Too late for an HTTP status; the stream just ends.
		s.logger.Warn("follow stream ended", log.Err(err))
	}
}
