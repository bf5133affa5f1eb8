package configure

import (
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/node"
)

// InSet lifts parent and pushes it onto n's parent-set list, after
// asserting every invariant spec.md §4.5 names:
//
//   - parent is not a system-type set (invariant 2: a system-type set
//     never gains explicit members via in_set).
//   - parent is not a base set, and n is not a base set (invariant 1: a
//     base-set node is never nested inside another set, on either side).
//   - parent does not contain a System (parents may only be sets or
//     collections of sets).
func InSet(n *node.Node, parent lift.Into) *node.Node {
	p := lift.Node(parent)

	if p.ContainsBaseSet() {
		verbPanic("in_set", "a base set cannot be used as a parent set")
	}
	if p.ContainsSystemTypeSet() {
		verbPanic("in_set", "a system-type set cannot gain explicit members via in_set")
	}
	if n.ContainsBaseSet() {
		verbPanic("in_set", "base system sets cannot be added to other sets")
	}
	if p.ContainsSystem() {
		verbPanic("in_set", "a System node cannot be used as a parent set")
	}

	info := n.Info()
	info.Sets = append(info.Sets, p)
	return n
}

// InBaseSet lifts parent, requires it to be a non-system-type base set,
// and sets n's single base-set slot, overwriting (not accumulating) any
// prior choice (spec.md §4.5, §8: "in_base_set called twice overwrites,
// does not accumulate").
func InBaseSet(n *node.Node, parent lift.Into) *node.Node {
	p := lift.Node(parent)

	if !isBaseIdentityNode(p) {
		verbPanic("in_base_set", "parent must be a base set")
	}
	if isSystemTypeIdentityNode(p) {
		verbPanic("in_base_set", "parent must not be a system-type set")
	}

	n.Info().BaseSet = p
	return n
}

// InDefaultBaseSet opts n into the downstream schedule's configured
// default base set.
func InDefaultBaseSet(n *node.Node) *node.Node {
	n.Info().AddDefaultBaseSet = true
	return n
}

// NoDefaultBaseSet opts n out of the downstream schedule's configured
// default base set. Idempotent and convergent with InDefaultBaseSet:
// calling both in either order leaves AddDefaultBaseSet at whichever was
// applied last (spec.md §8: "no_default_base_set().in_default_base_set()
// equals in_default_base_set()").
func NoDefaultBaseSet(n *node.Node) *node.Node {
	n.Info().AddDefaultBaseSet = false
	return n
}

func isBaseIdentityNode(n *node.Node) bool {
	id := n.Identity()
	return id != nil && id.IsBase()
}

func isSystemTypeIdentityNode(n *node.Node) bool {
	id := n.Identity()
	return id != nil && id.IsSystemType()
}
