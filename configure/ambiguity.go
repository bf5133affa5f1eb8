package configure

import (
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/node"
)

// AmbiguousWith lifts set to a set identity and folds it into n's
// ambiguity policy: Check -> IgnoreWithSet([set]); IgnoreWithSet(xs) ->
// append; IgnoreAll -> no-op, since IgnoreAll is a terminal absorbing
// state (spec.md §4.5, §8).
func AmbiguousWith(n *node.Node, set lift.Into) *node.Node {
	s := lift.Node(set)
	id := s.Identity()
	if id == nil {
		verbPanic("ambiguous_with", "argument must lift to a set, got a %s", s.Kind())
	}

	info := n.Info()
	info.Ambiguity = info.Ambiguity.WithIgnoreSet(id)
	return n
}

// AmbiguousWithAll unconditionally sets n's ambiguity policy to IgnoreAll.
// Idempotent (spec.md §8).
func AmbiguousWithAll(n *node.Node) *node.Node {
	info := n.Info()
	info.Ambiguity = info.Ambiguity.WithIgnoreAll()
	return n
}
