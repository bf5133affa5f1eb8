package node

import "github.com/goschedule/sysgraph/graphinfo"

// Dependency pairs an ordering kind with the (already-lifted) node it
// refers to (spec.md §3: "dependencies: ordered sequence of (kind, graph
// node)").
type Dependency struct {
	Kind   graphinfo.DependencyKind
	Target *Node
}

// Info is the graph-info record attached to every Node (spec.md §3/§4.2).
// It is pure data: no method on Info enforces an invariant. Invariants
// are enforced exclusively by package configure, which is the one place
// that reaches into this record to mutate it — the same division of
// labor the teacher draws between core.Graph (storage) and its builder
// package (composition policy).
type Info struct {
	// Sets is the ordered sequence of parent set nodes this node belongs
	// to via in_set.
	Sets []*Node

	// BaseSet is the single parent base-set node chosen via in_base_set,
	// or nil. A later in_base_set call overwrites rather than
	// accumulates (spec.md §8 boundary behavior).
	BaseSet *Node

	// Dependencies is the ordered sequence of Before/After relations
	// recorded via before/after.
	Dependencies []Dependency

	// Ambiguity is the ambiguity-suppression policy state machine.
	Ambiguity graphinfo.Ambiguity

	// AddDefaultBaseSet toggles whether the downstream schedule should
	// fold this node into its configured default base set. Defaults to
	// true for System-origin nodes and false for Set-origin nodes
	// (spec.md §3).
	AddDefaultBaseSet bool
}

// newSystemOriginInfo returns the Info a freshly lifted System node
// starts with: AddDefaultBaseSet = true (spec.md §4.2).
func newSystemOriginInfo() Info {
	return Info{Ambiguity: graphinfo.NewAmbiguity(), AddDefaultBaseSet: true}
}

// newSetOriginInfo returns the Info a freshly lifted Set, AnonymousSet, or
// Collection node starts with: AddDefaultBaseSet = false (spec.md §4.2).
func newSetOriginInfo() Info {
	return Info{Ambiguity: graphinfo.NewAmbiguity(), AddDefaultBaseSet: false}
}
