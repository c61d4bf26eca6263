package hierarchy

import (
	"testing"

	"github.com/medialens/medialens/pkg/outlet"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		records    []outlet.Record
		wantOwners int
		check      func(t *testing.T, owners []Node)
	}{
		{
			name:       "Empty",
			records:    nil,
			wantOwners: 0,
		},
		{
			name: "SingleOwner",
			records: []outlet.Record{
				{Outlet: "X", Owner: "Acme", FoundingYear: 1990, Audience: 1000000},
				{Outlet: "Y", Owner: "Acme", FoundingYear: 2000, Audience: 500000},
			},
			wantOwners: 1,
			check: func(t *testing.T, owners []Node) {
				if owners[0].ID != "Acme" || len(owners[0].Children) != 2 {
					t.Errorf("owner = %q with %d children, want Acme with 2", owners[0].ID, len(owners[0].Children))
				}
				if got := owners[0].Audience(); got != 1500000 {
					t.Errorf("Audience() = %d, want 1500000", got)
				}
			},
		},
		{
			name: "InterleavedOwnersKeepRecordOrder",
			records: []outlet.Record{
				{Outlet: "A1", Owner: "Acme"},
				{Outlet: "G1", Owner: "Globex"},
				{Outlet: "A2", Owner: "Acme"},
				{Outlet: "G2", Owner: "Globex"},
			},
			wantOwners: 2,
			check: func(t *testing.T, owners []Node) {
				acme, ok := Find(owners, "Acme")
				if !ok {
					t.Fatal("Acme owner missing")
				}
				if acme.Children[0].ID != "A1" || acme.Children[1].ID != "A2" {
					t.Errorf("Acme children out of order: %s, %s", acme.Children[0].ID, acme.Children[1].ID)
				}
				globex, _ := Find(owners, "Globex")
				if globex.Children[0].ID != "G1" || globex.Children[1].ID != "G2" {
					t.Errorf("Globex children out of order")
				}
			},
		},
		{
			name: "OwnerMatchIsCaseSensitive",
			records: []outlet.Record{
				{Outlet: "X", Owner: "Acme"},
				{Outlet: "Y", Owner: "acme"},
			},
			wantOwners: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owners := Build(tt.records)

			if got := len(owners); got != tt.wantOwners {
				t.Fatalf("owners = %d, want %d", got, tt.wantOwners)
			}

			// Every input record must appear in exactly one owner's children.
			total := 0
			seen := map[string]int{}
			for _, o := range owners {
				if !o.IsOwner() {
					t.Errorf("top-level node %s has kind %q", o.ID, o.Kind)
				}
				total += len(o.Children)
				for _, c := range o.Children {
					if !c.IsOutlet() {
						t.Errorf("child node %s has kind %q", c.ID, c.Kind)
					}
					if c.Record == nil {
						t.Errorf("outlet node %s has no record", c.ID)
					}
					seen[c.ID]++
				}
			}
			if total != len(tt.records) {
				t.Errorf("total children = %d, want %d", total, len(tt.records))
			}
			for id, n := range seen {
				if n != 1 {
					t.Errorf("outlet %s appears %d times, want 1", id, n)
				}
			}

			if tt.check != nil {
				tt.check(t, owners)
			}
		})
	}
}

func TestBuildCountsMatchInput(t *testing.T) {
	records := []outlet.Record{
		{Outlet: "A", Owner: "O1"}, {Outlet: "B", Owner: "O2"},
		{Outlet: "C", Owner: "O1"}, {Outlet: "D", Owner: "O3"},
		{Outlet: "E", Owner: "O2"}, {Outlet: "F", Owner: "O1"},
	}
	owners := Build(records)

	sum := 0
	for _, o := range owners {
		sum += o.OutletCount()
	}
	if sum != len(records) {
		t.Errorf("sum of owner outlet counts = %d, want %d", sum, len(records))
	}
}

func TestFind(t *testing.T) {
	owners := Build([]outlet.Record{{Outlet: "X", Owner: "Acme"}})

	if _, ok := Find(owners, "Acme"); !ok {
		t.Error("Find(Acme) should succeed")
	}
	if _, ok := Find(owners, "Globex"); ok {
		t.Error("Find(Globex) should fail")
	}
}
