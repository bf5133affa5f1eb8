package configure

import "github.com/goschedule/sysgraph/node"

// Chain sets the chained flag on n, requesting that the downstream
// executor add a Before/After pair between every consecutive pair of
// members in declaration order. Legal only on AnonymousSet and
// Collection — the two variants that own an ordered member list
// (spec.md invariant 5); panics on System or Set.
func Chain(n *node.Node) *node.Node {
	switch n.Kind() {
	case node.AnonymousSet, node.Collection:
		n.SetChained(true)
		return n
	default:
		verbPanic("chain", "illegal on a %s; only AnonymousSet and Collection own an ordered member list", n.Kind())
	}
	panic("unreachable")
}
