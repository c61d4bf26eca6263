// Package selection tracks the shared hover and selection state that keeps
// independently rendered views in sync.
//
// A single State is owned by the top-level coordinator (CLI dashboard or
// HTTP session) and passed by reference to all views. Views never mutate
// the fields directly; they go through SelectOwner, SelectOutlet, Hover and
// ClearAll so the invariants below always hold:
//
//   - a selected outlet implies the selected owner is that outlet's owner
//   - clearing the owner selection also clears the outlet selection
//   - hover is transient and never affects the persistent selection
package selection

import (
	"github.com/medialens/medialens/pkg/outlet"
)

// State holds the current owner filter, outlet filter and transient hover
// highlight. Nil pointers mean "unset". The zero value is ready to use.
type State struct {
	HoveredOwner   *string `json:"hovered_owner,omitempty" bson:"hovered_owner,omitempty"`
	SelectedOwner  *string `json:"selected_owner,omitempty" bson:"selected_owner,omitempty"`
	SelectedOutlet *string `json:"selected_outlet,omitempty" bson:"selected_outlet,omitempty"`
}

// SelectOwner sets the persistent owner filter. Selecting an owner clears
// any outlet selection and moves the hover highlight to the owner (select
// implies highlight). Passing nil clears the owner filter entirely.
func (s *State) SelectOwner(owner *string) {
	s.SelectedOwner = copyPtr(owner)
	s.SelectedOutlet = nil
	s.HoveredOwner = copyPtr(owner)
}

// SelectOutlet sets the outlet filter. The owning record's owner is looked
// up in store and becomes the owner selection as a side effect, so
// owner-level views stay consistent with the outlet drill-down.
//
// An unknown outlet id is a no-op. Passing nil clears the outlet filter and
// restores the hover highlight to the still-selected owner, if any.
func (s *State) SelectOutlet(outletID *string, store *outlet.Store) {
	if outletID == nil {
		s.SelectedOutlet = nil
		s.HoveredOwner = copyPtr(s.SelectedOwner)
		return
	}

	owner, ok := store.OwnerOf(*outletID)
	if !ok {
		return
	}

	s.SelectedOutlet = copyPtr(outletID)
	s.SelectedOwner = &owner
	s.HoveredOwner = copyPtr(&owner)
}

// Hover sets the transient hover highlight. It never touches the persistent
// owner/outlet selection. Passing nil clears the highlight.
func (s *State) Hover(owner *string) {
	s.HoveredOwner = copyPtr(owner)
}

// ClearAll resets hover and both filters to unset.
func (s *State) ClearAll() {
	s.HoveredOwner = nil
	s.SelectedOwner = nil
	s.SelectedOutlet = nil
}

// Matches reports whether a record passes the current filters. Both
// predicates apply conjunctively: an unset filter passes everything, a set
// filter requires an exact match.
func (s *State) Matches(r outlet.Record) bool {
	if s.SelectedOwner != nil && r.Owner != *s.SelectedOwner {
		return false
	}
	if s.SelectedOutlet != nil && r.Outlet != *s.SelectedOutlet {
		return false
	}
	return true
}

// Visible returns the records from store that pass the current filters,
// in store order.
func (s *State) Visible(store *outlet.Store) []outlet.Record {
	all := store.Records()
	visible := make([]outlet.Record, 0, len(all))
	for _, r := range all {
		if s.Matches(r) {
			visible = append(visible, r)
		}
	}
	return visible
}

// Highlighted reports whether the given owner currently carries the hover
// highlight.
func (s *State) Highlighted(owner string) bool {
	return s.HoveredOwner != nil && *s.HoveredOwner == owner
}

// Clone returns an independent copy of the state. Used by the HTTP session
// store so concurrent requests never share pointers.
func (s *State) Clone() State {
	return State{
		HoveredOwner:   copyPtr(s.HoveredOwner),
		SelectedOwner:  copyPtr(s.SelectedOwner),
		SelectedOutlet: copyPtr(s.SelectedOutlet),
	}
}

// copyPtr copies a string pointer so callers cannot mutate stored state
// through a retained pointer.
func copyPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr is a convenience helper for building *string arguments.
func Ptr(s string) *string { return &s }
