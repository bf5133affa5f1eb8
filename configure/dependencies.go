package configure

import (
	"github.com/goschedule/sysgraph/graphinfo"
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/node"
)

// Before lifts other and records that n must run before it. There is no
// uniqueness check and no semantic interpretation here: dependencies are
// recorded verbatim for the downstream executor (spec.md §4.5).
func Before(n *node.Node, other lift.Into) *node.Node {
	target := lift.Node(other)
	info := n.Info()
	info.Dependencies = append(info.Dependencies, node.Dependency{Kind: graphinfo.Before, Target: target})
	return n
}

// After lifts other and records that n must run after it.
func After(n *node.Node, other lift.Into) *node.Node {
	target := lift.Node(other)
	info := n.Info()
	info.Dependencies = append(info.Dependencies, node.Dependency{Kind: graphinfo.After, Target: target})
	return n
}
