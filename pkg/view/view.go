// Package view computes the derived view model consumed by all render
// collaborators: aggregate statistics over the visible record set and the
// per-owner leaderboard over the full store.
//
// Everything here is a pure function of the record store and selection
// state, recomputed in full on each input event. There is no incremental
// maintenance and no internal mutability.
package view

import (
	"sort"

	"github.com/medialens/medialens/pkg/hierarchy"
	"github.com/medialens/medialens/pkg/outlet"
	"github.com/medialens/medialens/pkg/selection"
)

// Stats holds aggregate statistics for the visible record set.
// An empty visible set yields all zeros.
type Stats struct {
	TotalOutlets  int `json:"total_outlets" bson:"total_outlets"`
	UniqueOwners  int `json:"unique_owners" bson:"unique_owners"`
	TotalAudience int `json:"total_audience" bson:"total_audience"`
}

// OwnerAggregate is one row of the owner leaderboard: outlet count and
// summed audience for a single owner over the unfiltered store.
type OwnerAggregate struct {
	Owner    string `json:"owner" bson:"owner"`
	Outlets  int    `json:"outlets" bson:"outlets"`
	Audience int    `json:"audience" bson:"audience"`
}

// Model is the full derived view model handed to render collaborators.
type Model struct {
	Visible   []outlet.Record  `json:"visible"`
	Stats     Stats            `json:"stats"`
	Owners    []OwnerAggregate `json:"owners"`    // leaderboard over the unfiltered store
	Hierarchy []hierarchy.Node `json:"hierarchy"` // built from the visible set
}

// Compute derives the full view model from the store and selection state.
func Compute(store *outlet.Store, sel *selection.State) Model {
	visible := sel.Visible(store)
	return Model{
		Visible:   visible,
		Stats:     ComputeStats(visible),
		Owners:    OwnerAggregates(store.Records()),
		Hierarchy: hierarchy.Build(visible),
	}
}

// ComputeStats computes aggregate statistics over the given records.
func ComputeStats(records []outlet.Record) Stats {
	stats := Stats{TotalOutlets: len(records)}
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.Owner]; !ok {
			seen[r.Owner] = struct{}{}
			stats.UniqueOwners++
		}
		stats.TotalAudience += r.Audience
	}
	return stats
}

// OwnerAggregates computes the per-owner leaderboard over records, sorted
// descending by outlet count. Ties keep first-encounter order (stable sort),
// so repeated computations over the same store are deterministic.
func OwnerAggregates(records []outlet.Record) []OwnerAggregate {
	aggs := []OwnerAggregate{}
	index := make(map[string]int)

	for _, r := range records {
		pos, ok := index[r.Owner]
		if !ok {
			pos = len(aggs)
			index[r.Owner] = pos
			aggs = append(aggs, OwnerAggregate{Owner: r.Owner})
		}
		aggs[pos].Outlets++
		aggs[pos].Audience += r.Audience
	}

	sort.SliceStable(aggs, func(i, j int) bool {
		return aggs[i].Outlets > aggs[j].Outlets
	})

	return aggs
}
