// Package pkg provides the core libraries for Medialens ownership visualization.
//
// # Overview
//
// Medialens turns flat CSV exports of media-outlet ownership records into an
// explorable model: who owns which outlets, how large their combined audience
// is, and how the picture changes as owners and outlets are selected. The pkg
// directory is organized into four main areas:
//
//  1. Domain model ([outlet], [hierarchy], [selection], [view])
//  2. Output ([render])
//  3. Infrastructure ([cache], [session], [snapshot])
//  4. Cross-cutting ([errors], [observability], [buildinfo])
//
// # Architecture
//
// The typical data flow through Medialens:
//
//	CSV export
//	     ↓
//	[outlet] package (parse + record store)
//	     ↓
//	[hierarchy] package (owner → outlet tree)
//	     ↓
//	[selection] + [view] packages (filters + derived model)
//	     ↓
//	terminal dashboard / HTTP API / [render] SVG output
//
// # Quick Start
//
// Load a dataset and compute the derived view:
//
//	import (
//	    "github.com/medialens/medialens/pkg/outlet"
//	    "github.com/medialens/medialens/pkg/selection"
//	    "github.com/medialens/medialens/pkg/view"
//	)
//
//	// 1. Parse the CSV
//	res, _ := outlet.ParseFile("outlets.csv")
//	store := outlet.NewStore(res.Records)
//
//	// 2. Select an owner
//	var sel selection.State
//	sel.SelectOwner(selection.Ptr("Acme Media"))
//
//	// 3. Derive the filtered model
//	m := view.Compute(store, &sel)
//	fmt.Println(m.Stats.TotalAudience)
//
// # Main Packages
//
// [outlet] - CSV parsing with per-record warnings and the immutable record
// store. Column order is free; malformed numeric fields are zero-filled.
//
// [hierarchy] - Two-level owner → outlet tree built from the record store,
// with JSON serialization for export and snapshot payloads.
//
// [selection] - Shared hover and selection state. All views mutate through
// the same operations so owner and outlet filters can never disagree.
//
// [view] - Derived model: filtered records, aggregate statistics and the
// owner leaderboard. Pure functions of a store and a selection.
//
// [render] - Graphviz DOT generation plus SVG/PNG rasterization for the
// tree and radial ownership layouts.
//
// [cache] - File-backed cache for render artifacts, keyed by dataset hash
// and render options.
//
// [session] - Per-browser selection sessions for the HTTP API, with memory
// and Redis backends.
//
// [snapshot] - Frozen datasets with their statistics, stored on disk or in
// MongoDB.
//
// [errors] - Structured errors with codes and user-facing messages.
//
// [observability] - Optional hooks for ingest, cache and session events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/selection/   # Specific package
//
// [outlet]: https://pkg.go.dev/github.com/medialens/medialens/pkg/outlet
// [hierarchy]: https://pkg.go.dev/github.com/medialens/medialens/pkg/hierarchy
// [selection]: https://pkg.go.dev/github.com/medialens/medialens/pkg/selection
// [view]: https://pkg.go.dev/github.com/medialens/medialens/pkg/view
// [render]: https://pkg.go.dev/github.com/medialens/medialens/pkg/render
// [cache]: https://pkg.go.dev/github.com/medialens/medialens/pkg/cache
// [session]: https://pkg.go.dev/github.com/medialens/medialens/pkg/session
// [snapshot]: https://pkg.go.dev/github.com/medialens/medialens/pkg/snapshot
// [errors]: https://pkg.go.dev/github.com/medialens/medialens/pkg/errors
// [observability]: https://pkg.go.dev/github.com/medialens/medialens/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/medialens/medialens/pkg/buildinfo
package pkg
