package schedview

import (
	"fmt"

	"github.com/goschedule/sysgraph/node"
	"github.com/goschedule/sysgraph/schedview/digraph"
)

// Step names one system in a computed Plan, paired with the node that
// produced it — callers typically want Work.Run, but keep the node
// around for diagnostics (its Info(), TypeIdentity(), etc).
type Step struct {
	ID   string
	Node *node.Node
}

// Plan is the ordered execution sequence schedview.Compute derives from
// a set of registered schedule nodes (spec.md §6, "handoff to the
// scheduler").
type Plan struct {
	Steps []Step

	graph *digraph.Graph // resolved Before/After + chain edges; backs Downstream
}

// Compute flattens every root (typically app.Nodes()) into its
// constituent System nodes, resolves every Before/After dependency and
// chained-group pairing into directed edges, and returns one valid
// topological order. It returns an error if the resolved edges contain a
// cycle (digraph.ErrCycleDetected); roots containing no System at all
// yield an empty Plan and no error. Only dependencies recorded on System
// nodes are resolved: Before/After recorded on a Collection or
// AnonymousSet itself produce no edges.
func Compute(roots ...*node.Node) (*Plan, error) {
	c := newCollector()
	for _, r := range roots {
		c.walk(r)
	}
	if len(c.systems) == 0 {
		return &Plan{}, nil
	}

	g := digraph.NewGraph()
	for _, sys := range c.systems {
		if err := g.AddStep(c.ids[sys]); err != nil {
			return nil, fmt.Errorf("schedview: %w", err)
		}
	}

	addEdge := func(before, after *node.Node) error {
		if err := g.AddDependency(c.ids[before], c.ids[after]); err != nil {
			return fmt.Errorf("schedview: %w", err)
		}
		return nil
	}

	if err := c.addDependencyEdges(addEdge); err != nil {
		return nil, err
	}
	for _, r := range roots {
		if err := c.addChainEdges(r, addEdge); err != nil {
			return nil, err
		}
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("schedview: %w", err)
	}

	plan := &Plan{Steps: make([]Step, 0, len(order)), graph: g}
	for _, id := range order {
		plan.Steps = append(plan.Steps, Step{ID: id, Node: c.byID[id]})
	}
	return plan, nil
}
