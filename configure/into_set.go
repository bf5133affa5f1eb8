package configure

import "github.com/goschedule/sysgraph/node"

// IntoSet converts n into an AnonymousSet with a fresh identity:
//
//   - From System: wraps it as a single-member AnonymousSet.
//   - From Collection: promotes in place, carrying its members, chained
//     flag, and graph-info record (spec.md §4.5, §8 round-trip property).
//   - From Set or AnonymousSet: panics — it is already a set.
//
// The returned node replaces n; callers must use the return value.
func IntoSet(n *node.Node) *node.Node {
	switch n.Kind() {
	case node.System:
		return node.NewAnonymousSet([]*node.Node{n}, false)

	case node.Collection:
		promoted := node.NewAnonymousSet(n.Members(), n.Chained())
		*promoted.Info() = *n.Info()
		return promoted

	case node.Set, node.AnonymousSet:
		verbPanic("into_set", "already a set")
	default:
		verbPanic("into_set", "illegal on a %s", n.Kind())
	}
	panic("unreachable")
}
