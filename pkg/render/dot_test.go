package render

import (
	"strings"
	"testing"

	"github.com/medialens/medialens/pkg/hierarchy"
	"github.com/medialens/medialens/pkg/outlet"
	"github.com/medialens/medialens/pkg/selection"
)

func testOwners() []hierarchy.Node {
	end := 2015
	return hierarchy.Build([]outlet.Record{
		{Outlet: "Daily Planet", Owner: "Acme Media", FoundingYear: 1990, Audience: 1000000},
		{Outlet: "Evening Star", Owner: "Acme Media", FoundingYear: 2000, EndYear: &end, Audience: 500000},
		{Outlet: "Herald", Owner: "Globex", FoundingYear: 1950, Audience: 42000},
	})
}

func TestToDOTTree(t *testing.T) {
	dot := ToDOT(testOwners(), nil, Options{Layout: LayoutTree})

	for _, want := range []string{
		"graph ownership {",
		"rankdir=TB",
		`"owner:Acme Media"`,
		`"owner:Acme Media" -- "Daily Planet"`,
		`"owner:Globex" -- "Herald"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	if strings.Contains(dot, hubNodeID) {
		t.Error("tree layout should not contain the radial hub node")
	}
}

func TestToDOTRadial(t *testing.T) {
	dot := ToDOT(testOwners(), nil, Options{Layout: LayoutRadial})

	for _, want := range []string{
		"layout=twopi",
		`"__media__" -- "owner:Acme Media"`,
		`"__media__" -- "owner:Globex"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTHighlightsHoveredOwner(t *testing.T) {
	var sel selection.State
	sel.Hover(selection.Ptr("Globex"))

	dot := ToDOT(testOwners(), &sel, Options{})

	if !strings.Contains(dot, "lightgoldenrod") {
		t.Error("hovered owner should carry a highlight fill")
	}
	// Only one owner highlighted.
	if strings.Count(dot, "lightgoldenrod") != 1 {
		t.Errorf("expected exactly one highlighted owner:\n%s", dot)
	}
}

func TestToDOTDefunctOutletDashed(t *testing.T) {
	dot := ToDOT(testOwners(), nil, Options{})

	if !strings.Contains(dot, "dashed") {
		t.Error("defunct outlet should be drawn dashed")
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	dot := ToDOT(testOwners(), nil, Options{Detailed: true})

	for _, want := range []string{"2 outlets", "1.5M", "1950–", "42.0K"} {
		if !strings.Contains(dot, want) {
			t.Errorf("detailed DOT missing %q", want)
		}
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, nil, Options{})
	if !strings.HasPrefix(dot, "graph ownership {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty hierarchy should still produce a valid graph:\n%s", dot)
	}
}

func TestFormatAudience(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{42000, "42.0K"},
		{1500000, "1.5M"},
		{2000000000, "2.0B"},
	}

	for _, tt := range tests {
		if got := FormatAudience(tt.in); got != tt.want {
			t.Errorf("FormatAudience(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
