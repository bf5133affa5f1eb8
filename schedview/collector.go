package schedview

import (
	"fmt"

	"github.com/goschedule/sysgraph/graphinfo"
	"github.com/goschedule/sysgraph/identity"
	"github.com/goschedule/sysgraph/node"
)

// collector flattens one or more root *node.Node trees into the System
// leaves schedview.Compute needs a vertex per, resolving Before/After and
// chained-group relations into concrete system-to-system edges.
type collector struct {
	systems []*node.Node
	ids     map[*node.Node]string
	byID    map[string]*node.Node
	seen    map[*node.Node]bool
	edges   map[[2]string]bool
	counter int
}

func newCollector() *collector {
	return &collector{
		ids:   make(map[*node.Node]string),
		byID:  make(map[string]*node.Node),
		seen:  make(map[*node.Node]bool),
		edges: make(map[[2]string]bool),
	}
}

// walk registers every System leaf reachable from n: directly, through
// Collection/AnonymousSet membership, and transitively through any
// Before/After dependency target, so a dependency pointing outside the
// node's own containment tree still gets a vertex. Set nodes are marked
// visited but contribute no vertex of their own — membership in a named
// or base set is resolved later, by identity, against the complete
// system list (setMembers).
func (c *collector) walk(n *node.Node) {
	if n == nil || c.seen[n] {
		return
	}
	c.seen[n] = true

	switch n.Kind() {
	case node.System:
		id := fmt.Sprintf("sys%d", c.counter)
		c.counter++
		c.systems = append(c.systems, n)
		c.ids[n] = id
		c.byID[id] = n
		for _, dep := range n.Info().Dependencies {
			c.walk(dep.Target)
		}
	case node.Collection, node.AnonymousSet:
		for _, m := range n.Members() {
			c.walk(m)
		}
		for _, dep := range n.Info().Dependencies {
			c.walk(dep.Target)
		}
	case node.Set:
		// No members of its own; nothing further to register here.
	}
}

// leaves flattens n to the System nodes it transitively contains via
// Collection/AnonymousSet membership. Returns nil for a Set (sets gain
// membership through other nodes' in_set, not through a member list) or
// a System not present in this collector's closure.
func (c *collector) leaves(n *node.Node) []*node.Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case node.System:
		if _, ok := c.ids[n]; ok {
			return []*node.Node{n}
		}
		return nil
	case node.Collection, node.AnonymousSet:
		var out []*node.Node
		for _, m := range n.Members() {
			out = append(out, c.leaves(m)...)
		}
		return out
	default:
		return nil
	}
}

// setMembers returns every collected system declaring membership in id,
// via either in_set (Info().Sets) or in_base_set (Info().BaseSet), either
// on the system itself or on a Collection/AnonymousSet that contains it.
func (c *collector) setMembers(id identity.Identity) []*node.Node {
	inGroup := make(map[*node.Node]bool)
	for g := range c.seen {
		if g.Kind() == node.Collection || g.Kind() == node.AnonymousSet {
			for _, s := range append([]*node.Node{g.Info().BaseSet}, g.Info().Sets...) {
				if s != nil && s.Identity() != nil && s.Identity().Equal(id) {
					for _, leaf := range c.leaves(g) {
						inGroup[leaf] = true
					}
				}
			}
		}
	}

	var out []*node.Node
	for _, sys := range c.systems {
		if inGroup[sys] {
			out = append(out, sys)
			continue
		}
		info := sys.Info()
		for _, s := range info.Sets {
			if s.Identity() != nil && s.Identity().Equal(id) {
				out = append(out, sys)
				break
			}
		}
		if info.BaseSet != nil && info.BaseSet.Identity() != nil && info.BaseSet.Identity().Equal(id) {
			out = append(out, sys)
		}
	}
	return out
}

// resolveTargets expands a Dependency.Target into the concrete system
// nodes it denotes: itself if already a System, its flattened leaves if
// a Collection/AnonymousSet, or every system declaring membership in it
// if a Set.
func (c *collector) resolveTargets(target *node.Node) []*node.Node {
	switch target.Kind() {
	case node.System:
		if _, ok := c.ids[target]; ok {
			return []*node.Node{target}
		}
		return nil
	case node.Collection, node.AnonymousSet:
		return c.leaves(target)
	case node.Set:
		return c.setMembers(target.Identity())
	default:
		return nil
	}
}

// addEdge records before -> after, deduplicating repeated edges and
// skipping self-edges (a degenerate ordering constraint that carries no
// information a topological sort needs).
func (c *collector) addEdge(before, after *node.Node, emit func(before, after *node.Node) error) error {
	bid, aid := c.ids[before], c.ids[after]
	if bid == "" || aid == "" || bid == aid {
		return nil
	}
	key := [2]string{bid, aid}
	if c.edges[key] {
		return nil
	}
	c.edges[key] = true
	return emit(before, after)
}

// addDependencyEdges walks every collected system's recorded
// Before/After dependencies and emits the resolved system-to-system
// edges via emit.
func (c *collector) addDependencyEdges(emit func(before, after *node.Node) error) error {
	for _, sys := range c.systems {
		for _, dep := range sys.Info().Dependencies {
			targets := c.resolveTargets(dep.Target)
			for _, t := range targets {
				before, after := sys, t
				if dep.Kind == graphinfo.After {
					before, after = t, sys
				}
				if err := c.addEdge(before, after, emit); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// addChainEdges walks n looking for Collection/AnonymousSet nodes with
// Chained() set, and emits a Before edge from every leaf of each member
// to every leaf of the next member, in declaration order (spec.md §4.5:
// "add a Before/After pair between every consecutive pair of members").
func (c *collector) addChainEdges(n *node.Node, emit func(before, after *node.Node) error) error {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case node.Collection, node.AnonymousSet:
		members := n.Members()
		if n.Chained() {
			for i := 0; i+1 < len(members); i++ {
				for _, a := range c.leaves(members[i]) {
					for _, b := range c.leaves(members[i+1]) {
						if err := c.addEdge(a, b, emit); err != nil {
							return err
						}
					}
				}
			}
		}
		for _, m := range members {
			if err := c.addChainEdges(m, emit); err != nil {
				return err
			}
		}
	}
	return nil
}
