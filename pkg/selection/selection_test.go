package selection

import (
	"testing"

	"github.com/medialens/medialens/pkg/outlet"
)

func testStore() *outlet.Store {
	return outlet.NewStore([]outlet.Record{
		{Outlet: "X", Owner: "Acme", FoundingYear: 1990, Audience: 1000000},
		{Outlet: "Y", Owner: "Acme", FoundingYear: 2000, Audience: 500000},
		{Outlet: "Herald", Owner: "Globex", FoundingYear: 1950, Audience: 42000},
	})
}

func TestSelectOwner(t *testing.T) {
	var s State
	store := testStore()

	s.SelectOwner(Ptr("Acme"))

	if s.SelectedOwner == nil || *s.SelectedOwner != "Acme" {
		t.Errorf("SelectedOwner = %v, want Acme", s.SelectedOwner)
	}
	if !s.Highlighted("Acme") {
		t.Error("selecting an owner should also highlight it")
	}
	if got := len(s.Visible(store)); got != 2 {
		t.Errorf("visible = %d, want 2", got)
	}
}

func TestSelectOwnerClearsOutlet(t *testing.T) {
	var s State
	store := testStore()

	s.SelectOutlet(Ptr("Y"), store)
	s.SelectOwner(Ptr("Globex"))

	if s.SelectedOutlet != nil {
		t.Errorf("SelectedOutlet = %q, want nil after owner selection", *s.SelectedOutlet)
	}
}

func TestSelectOutletSyncsOwner(t *testing.T) {
	var s State
	store := testStore()

	s.SelectOutlet(Ptr("Y"), store)

	if s.SelectedOwner == nil || *s.SelectedOwner != "Acme" {
		t.Errorf("SelectedOwner = %v, want Acme (owner of Y)", s.SelectedOwner)
	}
	if s.SelectedOutlet == nil || *s.SelectedOutlet != "Y" {
		t.Errorf("SelectedOutlet = %v, want Y", s.SelectedOutlet)
	}
	if !s.Highlighted("Acme") {
		t.Error("outlet selection should highlight its owner")
	}
	if got := len(s.Visible(store)); got != 1 {
		t.Errorf("visible = %d, want 1", got)
	}
}

func TestSelectOutletUnknownIsNoop(t *testing.T) {
	var s State
	store := testStore()

	s.SelectOwner(Ptr("Acme"))
	before := s.Clone()

	s.SelectOutlet(Ptr("Nonexistent"), store)

	if *s.SelectedOwner != *before.SelectedOwner || s.SelectedOutlet != nil {
		t.Errorf("unknown outlet selection should be a no-op, state = %+v", s)
	}
}

func TestClearOutletKeepsOwner(t *testing.T) {
	var s State
	store := testStore()

	s.SelectOutlet(Ptr("Y"), store)
	s.SelectOutlet(nil, store)

	if s.SelectedOwner == nil || *s.SelectedOwner != "Acme" {
		t.Errorf("SelectedOwner = %v, want Acme preserved after outlet clear", s.SelectedOwner)
	}
	if s.SelectedOutlet != nil {
		t.Error("SelectedOutlet should be nil after clear")
	}
	if !s.Highlighted("Acme") {
		t.Error("hover should fall back to the still-selected owner")
	}
	if got := len(s.Visible(store)); got != 2 {
		t.Errorf("visible = %d, want 2 (owner filter still active)", got)
	}
}

func TestClearOwnerClearsOutlet(t *testing.T) {
	var s State
	store := testStore()

	s.SelectOutlet(Ptr("Y"), store)
	s.SelectOwner(nil)

	if s.SelectedOwner != nil || s.SelectedOutlet != nil {
		t.Errorf("clearing owner should clear outlet too, state = %+v", s)
	}
	if got := len(s.Visible(store)); got != store.Len() {
		t.Errorf("visible = %d, want all %d", got, store.Len())
	}
}

func TestHoverIsTransient(t *testing.T) {
	var s State
	store := testStore()

	s.SelectOutlet(Ptr("Y"), store)
	s.Hover(Ptr("Globex"))

	if !s.Highlighted("Globex") {
		t.Error("hover should move the highlight")
	}
	if *s.SelectedOwner != "Acme" || *s.SelectedOutlet != "Y" {
		t.Error("hover must not touch the persistent selection")
	}

	s.Hover(nil)
	if s.HoveredOwner != nil {
		t.Error("hover(nil) should clear the highlight")
	}
}

func TestClearAll(t *testing.T) {
	var s State
	store := testStore()

	s.SelectOutlet(Ptr("Y"), store)
	s.Hover(Ptr("Globex"))
	s.ClearAll()

	if s.HoveredOwner != nil || s.SelectedOwner != nil || s.SelectedOutlet != nil {
		t.Errorf("ClearAll left state = %+v", s)
	}
}

func TestConjunctiveFiltering(t *testing.T) {
	// Owner filter and outlet filter apply together: forcing an owner that
	// does not own the selected outlet yields an empty visible set.
	store := testStore()
	s := State{
		SelectedOwner:  Ptr("Acme"),
		SelectedOutlet: Ptr("Herald"), // owned by Globex
	}

	if got := len(s.Visible(store)); got != 0 {
		t.Errorf("visible = %d, want 0 for contradictory filters", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var s State
	store := testStore()
	s.SelectOutlet(Ptr("Y"), store)

	c := s.Clone()
	c.ClearAll()

	if s.SelectedOwner == nil || *s.SelectedOwner != "Acme" {
		t.Error("mutating the clone must not affect the original")
	}
}
