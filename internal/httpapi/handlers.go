package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/medialens/medialens/pkg/observability"
	"github.com/medialens/medialens/pkg/selection"
	"github.com/medialens/medialens/pkg/session"
	"github.com/medialens/medialens/pkg/view"
)

// selectRequest is the body for all selection-mutating endpoints.
// A null/omitted value clears the corresponding filter.
type selectRequest struct {
	Owner  *string `json:"owner,omitempty"`
	Outlet *string `json:"outlet,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, `{"status":"ok"}`)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	m := view.Compute(s.store, &sess.Selection)
	s.writeJSON(w, m.Visible)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	m := view.Compute(s.store, &sess.Selection)
	s.writeJSON(w, m.Stats)
}

func (s *Server) handleOwners(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	m := view.Compute(s.store, &sess.Selection)
	s.writeJSON(w, m.Owners)
}

func (s *Server) handleHierarchy(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	m := view.Compute(s.store, &sess.Selection)
	s.writeJSON(w, m.Hierarchy)
}

func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.writeJSON(w, sess.Selection)
}

func (s *Server) handleSelectOwner(w http.ResponseWriter, r *http.Request) {
	s.mutateSelection(w, r, func(req selectRequest, sel *selection.State) {
		sel.SelectOwner(req.Owner)
	})
}

func (s *Server) handleSelectOutlet(w http.ResponseWriter, r *http.Request) {
	s.mutateSelection(w, r, func(req selectRequest, sel *selection.State) {
		sel.SelectOutlet(req.Outlet, s.store)
	})
}

func (s *Server) handleHover(w http.ResponseWriter, r *http.Request) {
	s.mutateSelection(w, r, func(req selectRequest, sel *selection.State) {
		sel.Hover(req.Owner)
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mutateSelection(w, r, func(req selectRequest, sel *selection.State) {
		sel.ClearAll()
	})
}

// mutateSelection decodes the request body, applies the mutation to the
// session's selection and responds with the recomputed stats so views can
// refresh without a second round trip.
func (s *Server) mutateSelection(w http.ResponseWriter, r *http.Request, apply func(selectRequest, *selection.State)) {
	var req selectRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
			return
		}
	}

	sess := s.session(w, r)
	apply(req, &sess.Selection)

	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.logger.Errorf("save session: %v", err)
		http.Error(w, `{"error":"session store unavailable"}`, http.StatusInternalServerError)
		return
	}

	m := view.Compute(s.store, &sess.Selection)
	s.writeJSON(w, struct {
		Selection selection.State `json:"selection"`
		Stats     view.Stats      `json:"stats"`
	}{sess.Selection, m.Stats})
}

// session loads the caller's session, issuing a fresh one (and cookie) when
// the cookie is absent, unknown or expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		sess, err := s.sessions.Get(r.Context(), cookie.Value)
		switch {
		case errors.Is(err, session.ErrExpired):
			observability.Session().OnSessionExpire(r.Context(), "http")
		case err != nil && !errors.Is(err, session.ErrNotFound):
			s.logger.Warnf("session lookup: %v", err)
		}
		if sess != nil {
			return sess
		}
	}

	sess, err := session.New(s.ttl)
	if err != nil {
		// crypto/rand failure; serve a throwaway session rather than 500
		s.logger.Errorf("create session: %v", err)
		return &session.Session{}
	}
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.logger.Errorf("store session: %v", err)
	}
	observability.Session().OnSessionCreate(r.Context(), "http")

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.ExpiresAt,
	})
	return sess
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("encode response: %v", err)
	}
}
