// internal/httpserver/server.go
//
// HTTP server wiring for The Proverbial Challenge.
// Responsibilities:
//   - Router + middleware (CORS, timeouts, panic recovery, request IDs, access logs).
//   - Public endpoints: "/" (HTML game page), "/health".
//   - JSON API under /api: start/resume, guess, restart, today's acronym.
//   - Per-player session resolution through a signed cookie.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Each player's session is isolated; submissions for one session are
//     serialised with a per-ID lock, different sessions proceed in parallel.
//   - The puzzle set is read-only and shared by all requests.
//   - While serving, sessions from earlier days are purged at each local midnight.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/proverbial/internal/daily"
	"github.com/robalobadob/proverbial/internal/puzzle"
	"github.com/robalobadob/proverbial/internal/store"
)

// Options configures a Server.
type Options struct {
	Store        store.Store
	Puzzles      puzzle.Set
	Clock        daily.Clock // defaults to local time
	Secret       []byte      // HMAC key for session cookies
	ClientOrigin string
	CookieSecure bool
}

// Server bundles router, session store and the shared puzzle set.
type Server struct {
	r            *chi.Mux
	store        store.Store
	puzzles      puzzle.Set
	clock        daily.Clock
	secret       []byte
	origin       string
	cookieSecure bool
	locks        sessionLocks
	after        func(time.Duration) <-chan time.Time // time.After; replaced in tests
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:            chi.NewRouter(),
		store:        opts.Store,
		puzzles:      opts.Puzzles,
		clock:        opts.Clock,
		secret:       opts.Secret,
		origin:       opts.ClientOrigin,
		cookieSecure: opts.CookieSecure,
		locks:        sessionLocks{m: make(map[string]*lockEntry)},
		after:        time.After,
	}
	if s.clock == nil {
		s.clock = daily.In(time.Local)
	}
	if s.origin == "" {
		s.origin = "http://localhost:5173"
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(requestIDField)                  // req_id on every request log line
	s.r.Use(accessLog())                     // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// Browser page: GET renders, POST applies a guess or restart.
	s.r.Get("/", s.handlePage)
	s.r.Post("/", s.handlePageAction)

	// JSON API
	s.r.Route("/api", s.mountAPI)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:         addr,
		Handler:      s.r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	purgeCtx, stopPurge := context.WithCancel(ctx)
	defer stopPurge()
	go s.purgeDaily(purgeCtx)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// purgeDaily drops earlier days' sessions at every local midnight until ctx ends.
func (s *Server) purgeDaily(ctx context.Context) {
	for {
		now := s.clock()
		select {
		case <-ctx.Done():
			return
		case <-s.after(daily.NextMidnight(now).Sub(now)):
			s.purgeStale(ctx)
		}
	}
}

// purgeStale removes every session dated before the clock's current day.
func (s *Server) purgeStale(ctx context.Context) {
	today := daily.DateKey(s.clock())
	n, err := s.store.PurgeBefore(ctx, today)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("date", today).Msg("purge old sessions")
	case n > 0:
		log.Info().Int("sessions", n).Str("date", today).Msg("purged sessions from earlier days")
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestIDField copies chi's request ID into the request logger.
func requestIDField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog() func(http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// sessionLocks serialises work on a single session ID.
type sessionLocks struct {
	mu sync.Mutex
	m  map[string]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	refs int
}

// lock acquires the lock for id and returns its release func.
func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	e, ok := l.m[id]
	if !ok {
		e = &lockEntry{}
		l.m[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.Lock()
	return func() {
		e.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}
