// Package outlet defines the media-outlet record model and the read-only
// record store that every other component consumes.
//
// Records are loaded once (from CSV, see csv.go) and never mutated afterwards.
// The Store provides ordered iteration and outlet-id lookup; filtering and
// aggregation live in the selection and view packages.
package outlet

import "fmt"

// Record is a single media outlet with its owner and audience data.
// Records are immutable once loaded into a Store.
type Record struct {
	Outlet       string `json:"outlet" bson:"outlet"`               // unique outlet id
	Owner        string `json:"owner" bson:"owner"`                 // owning entity, case-sensitive
	FoundingYear int    `json:"founding_year" bson:"founding_year"` // year the outlet was founded
	EndYear      *int   `json:"end_year,omitempty" bson:"end_year,omitempty"`
	Audience     int    `json:"audience_size" bson:"audience_size"` // audience reach, never negative
}

// Active reports whether the outlet is still operating (no end year).
func (r *Record) Active() bool { return r.EndYear == nil }

// Span returns a human-readable founding–end range, e.g. "1990–2004" or "1990–".
func (r *Record) Span() string {
	if r.EndYear == nil {
		return fmt.Sprintf("%d–", r.FoundingYear)
	}
	return fmt.Sprintf("%d–%d", r.FoundingYear, *r.EndYear)
}
