package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/medialens/medialens/pkg/hierarchy"
	"github.com/medialens/medialens/pkg/selection"
)

// Layout engines.
const (
	LayoutTree   = "tree"   // top-down dot layout
	LayoutRadial = "radial" // twopi layout around a hub node
)

// hubNodeID is the synthetic root connecting all owners in the radial view.
const hubNodeID = "__media__"

// Options configures DOT generation.
type Options struct {
	// Layout selects the view: LayoutTree (default) or LayoutRadial.
	Layout string

	// Detailed includes founding span and audience in outlet labels.
	// When false, only the outlet name is shown.
	Detailed bool

	// Title is drawn as the graph label when non-empty.
	Title string
}

// ToDOT converts an ownership hierarchy to Graphviz DOT. The hovered or
// selected owner from sel (if any) is drawn with a highlight fill so static
// output matches the dashboard's emphasis. Pass nil for no highlighting.
//
// The resulting DOT string renders with [SVG] or [PNG].
func ToDOT(owners []hierarchy.Node, sel *selection.State, opts Options) string {
	var buf bytes.Buffer

	buf.WriteString("graph ownership {\n")
	switch opts.Layout {
	case LayoutRadial:
		buf.WriteString("  layout=twopi;\n")
		buf.WriteString("  ranksep=3;\n")
		buf.WriteString("  overlap=false;\n")
	default:
		buf.WriteString("  layout=dot;\n")
		buf.WriteString("  rankdir=TB;\n")
		buf.WriteString("  ranksep=0.6;\n")
		buf.WriteString("  nodesep=0.3;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	if opts.Layout == LayoutRadial {
		fmt.Fprintf(&buf, "  %q [label=\"media\", shape=circle, fillcolor=lightgrey];\n", hubNodeID)
	}

	for i := range owners {
		writeOwner(&buf, &owners[i], sel, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeOwner(buf *bytes.Buffer, owner *hierarchy.Node, sel *selection.State, opts Options) {
	attrs := []string{fmt.Sprintf("label=%q", ownerLabel(owner, opts))}
	attrs = append(attrs, "shape=box", "fontsize=18")
	if highlighted(sel, owner.ID) {
		attrs = append(attrs, "fillcolor=lightgoldenrod", "penwidth=2")
	}
	fmt.Fprintf(buf, "  %q [%s];\n", ownerNodeID(owner.ID), strings.Join(attrs, ", "))

	if opts.Layout == LayoutRadial {
		fmt.Fprintf(buf, "  %q -- %q;\n", hubNodeID, ownerNodeID(owner.ID))
	}

	for i := range owner.Children {
		child := &owner.Children[i]
		cattrs := []string{fmt.Sprintf("label=%q", outletLabel(child, opts.Detailed))}
		if child.Record != nil && !child.Record.Active() {
			cattrs = append(cattrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(buf, "  %q [%s];\n", child.ID, strings.Join(cattrs, ", "))
		fmt.Fprintf(buf, "  %q -- %q;\n", ownerNodeID(owner.ID), child.ID)
	}
	buf.WriteString("\n")
}

// ownerNodeID namespaces owner nodes so an owner and an outlet sharing a
// name never collapse into one Graphviz node.
func ownerNodeID(owner string) string {
	return "owner:" + owner
}

func ownerLabel(owner *hierarchy.Node, opts Options) string {
	if !opts.Detailed {
		return owner.Name
	}
	return fmt.Sprintf("%s\n%d outlets · %s reach", owner.Name, owner.OutletCount(), FormatAudience(owner.Audience()))
}

func outletLabel(n *hierarchy.Node, detailed bool) string {
	if !detailed || n.Record == nil {
		return n.Name
	}
	return fmt.Sprintf("%s\n%s\n%s", n.Name, n.Record.Span(), FormatAudience(n.Record.Audience))
}

func highlighted(sel *selection.State, owner string) bool {
	if sel == nil {
		return false
	}
	return sel.Highlighted(owner)
}

// FormatAudience renders an audience count compactly: 1500000 → "1.5M",
// 42000 → "42.0K". Values under a thousand print as-is.
func FormatAudience(n int) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	default:
		return fmt.Sprintf("%d", n)
	}
}
