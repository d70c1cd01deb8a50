package gateway

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/tasleson/sdjournal/internal/follow"
	"github.com/tasleson/sdjournal/pkg/log"
)

// Journal is the slice of the binding the gateway needs from each
// per-request handle.
type Journal interface {
	follow.Source
	SeekHead() error
	Previous() (uint64, error)
	GetUniqueValues(field string) ([]string, error)
	GetUsage() (uint64, error)
	Close() error
}

// Opener opens a fresh journal handle for one request.
type Opener func() (Journal, error)

// Options configures a Server.
type Options struct {
	Open Opener
	// DefaultLimit caps range reads without an explicit ?limit.
	DefaultLimit int
	// PollInterval bounds blocking waits in follow mode.
	PollInterval time.Duration
	Logger       *log.Logger
}

// Server serves the read-only journal HTTP API.
type Server struct {
	open         Opener
	srv          *http.Server
	lis          net.Listener
	defaultLimit int
	pollInterval time.Duration
	logger       *log.Logger
}

// New builds a Server around an Opener.
func New(opts Options) *Server {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 100
	}
	if opts.DefaultLimit > maxLimit {
		opts.DefaultLimit = maxLimit
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 250 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = log.NewLogger()
	}
	s := &Server{
		open:         opts.Open,
		defaultLimit: opts.DefaultLimit,
		pollInterval: opts.PollInterval,
		logger:       opts.Logger.WithComponent("gateway"),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/healthz", s.handleHealth)
	mux.HandleFunc("/v1/entries", s.handleEntries)
	mux.HandleFunc("/v1/fields/", s.handleFields)
	mux.HandleFunc("/v1/status", s.handleStatus)
	s.srv = &http.Server{Handler: cors(mux)}
	return s
}

// Handler returns the underlying HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	s.logger.Info("listening", log.String("addr", l.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close releases the listener.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
