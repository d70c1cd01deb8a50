package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tasleson/sdjournal"

	"github.com/tasleson/sdjournal/internal/filter"
	"github.com/tasleson/sdjournal/pkg/log"
)

// maxLimit bounds ?limit so a single request cannot force an oversized
// allocation in collect.
const maxLimit = 10000

type entryJSON struct {
	Cursor        string            `json:"cursor"`
	RealtimeUsec  uint64            `json:"realtime_usec"`
	MonotonicUsec uint64            `json:"monotonic_usec"`
	BootID        string            `json:"boot_id,omitempty"`
	Fields        map[string]string `json:"fields"`
}

func toEntryJSON(e *sdjournal.Entry) entryJSON {
	return entryJSON{
		Cursor:        e.Cursor,
		RealtimeUsec:  e.RealtimeUsec,
		MonotonicUsec: e.MonotonicUsec,
		BootID:        e.BootID,
		Fields:        e.Fields,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	j, err := s.open()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not_serving"})
		return
	}
	_ = j.Close()
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()

	fl, err := filter.New(q.Get("filter"))
	if err != nil {
		http.Error(w, "bad filter expression: "+err.Error(), http.StatusBadRequest)
		return
	}
	limit := s.defaultLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxLimit {
			http.Error(w, fmt.Sprintf("limit must be between 1 and %d", maxLimit), http.StatusBadRequest)
			return
		}
		limit = n
	}
	reverse := q.Get("reverse") == "true"
	followMode := q.Get("follow") == "true"
	if followMode && reverse {
		http.Error(w, "follow and reverse are mutually exclusive", http.StatusBadRequest)
		return
	}

	j, err := s.open()
	if err != nil {
		s.logger.Error("open journal", log.Err(err))
		http.Error(w, "journal unavailable", http.StatusServiceUnavailable)
		return
	}
	defer j.Close()

	if followMode {
		s.followEntries(w, r, j, fl, q.Get("cursor"))
		return
	}

	entries, next, err := collect(j, fl, q.Get("cursor"), limit, reverse)
	if err != nil {
		s.logger.Error("read entries", log.Err(err))
		http.Error(w, "journal read failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"entries":     entries,
		"next_cursor": next,
	})
}

// collect reads up to limit matching entries. With a cursor, forward reads
// return entries strictly after it and reverse reads entries strictly
// before it, so repeated calls paginate without overlap. next is the
// cursor of the last entry scanned, matched or not; when nothing new was
// scanned it echoes the request cursor so feeding next back does not
// restart from the head.
func collect(j Journal, fl filter.Filter, cursor string, limit int, reverse bool) ([]entryJSON, string, error) {
	advance := j.Next
	if reverse {
		advance = j.Previous
	}

	entries := make([]entryJSON, 0, limit)
	next := cursor

	switch {
	case reverse && cursor == "":
		if err := j.SeekTail(); err != nil {
			return nil, "", err
		}
	case reverse:
		// Previous from a seeked cursor lands on the entry before it.
		if err := j.SeekCursor(cursor); err != nil {
			return nil, "", err
		}
	case cursor == "":
		if err := j.SeekHead(); err != nil {
			return nil, "", err
		}
	default:
		if err := j.SeekCursor(cursor); err != nil {
			return nil, "", err
		}
		// Next lands on the cursor entry itself, which the previous page
		// already returned. If that entry was rotated away the position
		// holds the nearest survivor instead, which must be returned.
		n, err := j.Next()
		if err != nil {
			return nil, "", err
		}
		if n > 0 {
			same, err := j.TestCursor(cursor)
			if err != nil {
				return nil, "", err
			}
			if !same {
				e, err := j.GetEntry()
				if err != nil {
					return nil, "", err
				}
				next = e.Cursor
				if fl.Match(e) {
					entries = append(entries, toEntryJSON(e))
				}
			}
		}
	}

	for len(entries) < limit {
		n, err := advance()
		if err != nil {
			return nil, "", err
		}
		if n == 0 {
			break
		}
		e, err := j.GetEntry()
		if err != nil {
			return nil, "", err
		}
		next = e.Cursor
		if fl.Match(e) {
			entries = append(entries, toEntryJSON(e))
		}
	}
	return entries, next, nil
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	field := strings.TrimPrefix(r.URL.Path, "/v1/fields/")
	if field == "" || strings.Contains(field, "/") {
		http.Error(w, "missing field name", http.StatusNotFound)
		return
	}
	j, err := s.open()
	if err != nil {
		http.Error(w, "journal unavailable", http.StatusServiceUnavailable)
		return
	}
	defer j.Close()

	values, err := j.GetUniqueValues(field)
	if err != nil {
		if errors.Is(err, sdjournal.ErrClosed) {
			http.Error(w, "journal unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"field":  field,
		"values": values,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	j, err := s.open()
	if err != nil {
		http.Error(w, "journal unavailable", http.StatusServiceUnavailable)
		return
	}
	defer j.Close()

	usage, err := j.GetUsage()
	if err != nil {
		http.Error(w, "journal read failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"usage_bytes": usage})
}
