// Package httpapi exposes the derived view model over HTTP.
//
// Read endpoints return the filtered record list, aggregate statistics,
// owner leaderboard and ownership hierarchy for the calling client's
// selection. Write endpoints are the hover/select events the browser views
// emit back into the coordinator. Each client is tracked by a session
// cookie; selection state lives in a session store (memory or Redis).
package httpapi

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/medialens/medialens/pkg/outlet"
	"github.com/medialens/medialens/pkg/session"
)

// SessionCookie is the cookie carrying the client's session ID.
const SessionCookie = "medialens_session"

// Server serves the view API for one loaded dataset.
type Server struct {
	store    *outlet.Store
	sessions session.Store
	logger   *log.Logger
	ttl      time.Duration
}

// New creates a server over the given record store and session backend.
// A nil logger falls back to log.Default().
func New(store *outlet.Store, sessions session.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:    store,
		sessions: sessions,
		logger:   logger,
		ttl:      session.DefaultTTL,
	}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/records", s.handleRecords)
		r.Get("/stats", s.handleStats)
		r.Get("/owners", s.handleOwners)
		r.Get("/hierarchy", s.handleHierarchy)
		r.Get("/selection", s.handleGetSelection)

		r.Post("/select/owner", s.handleSelectOwner)
		r.Post("/select/outlet", s.handleSelectOutlet)
		r.Post("/hover", s.handleHover)
		r.Post("/clear", s.handleClear)
	})

	return r
}

// ListenAndServe runs the API server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("Serving view API on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
