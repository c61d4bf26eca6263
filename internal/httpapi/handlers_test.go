package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medialens/medialens/pkg/outlet"
	"github.com/medialens/medialens/pkg/session"
	"github.com/medialens/medialens/pkg/view"
)

func testServer() *Server {
	store := outlet.NewStore([]outlet.Record{
		{Outlet: "X", Owner: "Acme", FoundingYear: 1990, Audience: 1000000},
		{Outlet: "Y", Owner: "Acme", FoundingYear: 2000, Audience: 500000},
		{Outlet: "Herald", Owner: "Globex", FoundingYear: 1950, Audience: 42000},
	})
	return New(store, session.NewMemoryStore(), nil)
}

// client wraps the router and carries the session cookie between requests,
// like a browser would.
type client struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

func newClient(t *testing.T, s *Server) *client {
	return &client{t: t, handler: s.Router()}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)

	for _, ck := range rr.Result().Cookies() {
		if ck.Name == SessionCookie {
			c.cookie = ck
		}
	}
	return rr
}

func (c *client) stats() view.Stats {
	c.t.Helper()
	rr := c.do("GET", "/api/stats", "")
	if rr.Code != http.StatusOK {
		c.t.Fatalf("GET /api/stats = %d", rr.Code)
	}
	var stats view.Stats
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		c.t.Fatalf("invalid json: %v", err)
	}
	return stats
}

func TestHealth(t *testing.T) {
	c := newClient(t, testServer())
	rr := c.do("GET", "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestStatsUnfiltered(t *testing.T) {
	c := newClient(t, testServer())
	stats := c.stats()

	if stats.TotalOutlets != 3 || stats.UniqueOwners != 2 || stats.TotalAudience != 1542000 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSelectOwnerFiltersSession(t *testing.T) {
	c := newClient(t, testServer())

	rr := c.do("POST", "/api/select/owner", `{"owner":"Acme"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("select owner = %d", rr.Code)
	}

	stats := c.stats()
	if stats.TotalOutlets != 2 || stats.TotalAudience != 1500000 {
		t.Errorf("filtered stats = %+v", stats)
	}
}

func TestSelectOutletSyncsOwner(t *testing.T) {
	c := newClient(t, testServer())

	rr := c.do("POST", "/api/select/outlet", `{"outlet":"Y"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("select outlet = %d", rr.Code)
	}

	var resp struct {
		Selection struct {
			SelectedOwner  *string `json:"selected_owner"`
			SelectedOutlet *string `json:"selected_outlet"`
		} `json:"selection"`
		Stats view.Stats `json:"stats"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Selection.SelectedOwner == nil || *resp.Selection.SelectedOwner != "Acme" {
		t.Errorf("selected owner = %v, want Acme", resp.Selection.SelectedOwner)
	}
	if resp.Stats.TotalOutlets != 1 {
		t.Errorf("stats = %+v, want 1 visible outlet", resp.Stats)
	}
}

func TestUnknownOutletIsNoop(t *testing.T) {
	c := newClient(t, testServer())

	c.do("POST", "/api/select/owner", `{"owner":"Acme"}`)
	rr := c.do("POST", "/api/select/outlet", `{"outlet":"Nonexistent"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("select unknown outlet = %d", rr.Code)
	}

	stats := c.stats()
	if stats.TotalOutlets != 2 {
		t.Errorf("stats = %+v, owner filter should be untouched", stats)
	}
}

func TestClearRestoresFullView(t *testing.T) {
	c := newClient(t, testServer())

	c.do("POST", "/api/select/outlet", `{"outlet":"Herald"}`)
	c.do("POST", "/api/clear", "")

	stats := c.stats()
	if stats.TotalOutlets != 3 {
		t.Errorf("stats after clear = %+v", stats)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := testServer()
	a := newClient(t, s)
	b := newClient(t, s)

	a.do("POST", "/api/select/owner", `{"owner":"Globex"}`)

	if got := a.stats().TotalOutlets; got != 1 {
		t.Errorf("client a sees %d outlets, want 1", got)
	}
	if got := b.stats().TotalOutlets; got != 3 {
		t.Errorf("client b sees %d outlets, want 3 (unfiltered)", got)
	}
}

func TestHierarchyFollowsFilter(t *testing.T) {
	c := newClient(t, testServer())
	c.do("POST", "/api/select/owner", `{"owner":"Acme"}`)

	rr := c.do("GET", "/api/hierarchy", "")
	var owners []struct {
		ID       string `json:"id"`
		Children []any  `json:"children"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &owners); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(owners) != 1 || owners[0].ID != "Acme" || len(owners[0].Children) != 2 {
		t.Errorf("hierarchy = %+v", owners)
	}
}

func TestOwnersLeaderboardUnfiltered(t *testing.T) {
	c := newClient(t, testServer())
	c.do("POST", "/api/select/owner", `{"owner":"Globex"}`)

	rr := c.do("GET", "/api/owners", "")
	var owners []view.OwnerAggregate
	if err := json.Unmarshal(rr.Body.Bytes(), &owners); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(owners) != 2 {
		t.Errorf("leaderboard = %+v, want both owners regardless of filter", owners)
	}
	if owners[0].Owner != "Acme" {
		t.Errorf("leaderboard[0] = %+v, want Acme (2 outlets) first", owners[0])
	}
}

func TestInvalidBodyRejected(t *testing.T) {
	c := newClient(t, testServer())
	rr := c.do("POST", "/api/select/owner", "{broken")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
