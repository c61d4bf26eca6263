// Package render turns a built ownership hierarchy into visual outputs.
//
// # Overview
//
// Two Graphviz-based views are provided:
//
//   - Tree: a top-down owner → outlet diagram (dot layout engine)
//   - Radial: the same hierarchy arranged around a central hub node
//     (twopi layout engine)
//
// Both views accept the shared selection state so the currently hovered or
// selected owner is emphasized in the output, keeping static artifacts
// consistent with the interactive dashboard.
//
// # Usage
//
//	owners := hierarchy.Build(store.Records())
//	dot := render.ToDOT(owners, sel, render.Options{Layout: render.LayoutTree})
//	svg, err := render.SVG(ctx, dot)
//
// PNG output goes through the same Graphviz engine:
//
//	png, err := render.PNG(ctx, dot)
package render
