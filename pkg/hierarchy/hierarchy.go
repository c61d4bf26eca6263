// Package hierarchy groups flat outlet records into a two-level ownership
// tree: one owner node per distinct owner, with the owner's outlets as
// children.
//
// The tree is rebuilt from the current record list on every data or filter
// change; it is never persisted or incrementally maintained. Rendering
// components are pure consumers of the built tree.
package hierarchy

import (
	"github.com/medialens/medialens/pkg/outlet"
)

// Node kinds.
const (
	KindOwner  = "owner"
	KindOutlet = "outlet"
)

// Node is the tagged node type for the ownership tree.
// Owner nodes carry Children and no Record; outlet nodes carry a Record and
// no Children.
type Node struct {
	ID       string         `json:"id" bson:"id"`
	Name     string         `json:"name" bson:"name"`
	Kind     string         `json:"kind" bson:"kind"` // "owner" or "outlet"
	Record   *outlet.Record `json:"record,omitempty" bson:"record,omitempty"`
	Children []Node         `json:"children,omitempty" bson:"children,omitempty"`
}

// IsOwner returns true if this is an owner node.
func (n *Node) IsOwner() bool { return n.Kind == KindOwner }

// IsOutlet returns true if this is an outlet node.
func (n *Node) IsOutlet() bool { return n.Kind == KindOutlet }

// OutletCount returns the number of outlet children for owner nodes,
// or 1 for outlet nodes.
func (n *Node) OutletCount() int {
	if n.IsOutlet() {
		return 1
	}
	return len(n.Children)
}

// Audience returns the summed audience of the node's subtree.
func (n *Node) Audience() int {
	if n.Record != nil {
		return n.Record.Audience
	}
	total := 0
	for i := range n.Children {
		total += n.Children[i].Audience()
	}
	return total
}

// Build groups records by owner into owner nodes.
//
// Guarantees:
//   - exactly one owner node per distinct owner string (case-sensitive match)
//   - every input record appears as exactly one outlet child
//   - children keep their original relative record order
//   - owner order is first-seen, so output is deterministic for a given input
//
// Empty input yields an empty (non-nil) slice.
func Build(records []outlet.Record) []Node {
	owners := []Node{}
	index := make(map[string]int) // owner name -> position in owners

	for i := range records {
		rec := records[i]
		pos, ok := index[rec.Owner]
		if !ok {
			pos = len(owners)
			index[rec.Owner] = pos
			owners = append(owners, Node{
				ID:   rec.Owner,
				Name: rec.Owner,
				Kind: KindOwner,
			})
		}
		owners[pos].Children = append(owners[pos].Children, Node{
			ID:     rec.Outlet,
			Name:   rec.Outlet,
			Kind:   KindOutlet,
			Record: &records[i],
		})
	}

	return owners
}

// Find returns the owner node with the given owner name.
func Find(owners []Node, owner string) (*Node, bool) {
	for i := range owners {
		if owners[i].ID == owner {
			return &owners[i], true
		}
	}
	return nil, false
}
