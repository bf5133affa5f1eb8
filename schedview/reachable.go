package schedview

import "fmt"

// Downstream returns every step that must run after fromID,
// transitively, in the order Plan.Steps already lists them (fromID
// itself is not included) — the
// "what does changing this system affect" diagnostic a schedule author
// reaches for when auditing a Before/After/chain edge. It reuses the
// same digraph.Graph Compute already built rather than re-walking edges
// by hand: that graph backs both the topological sort and this query.
//
// Returns an error if fromID never appeared in a non-empty plan
// (digraph.ErrUnknownStep); on an empty plan it returns nil, nil.
func (p *Plan) Downstream(fromID string) ([]Step, error) {
	if p.graph == nil || len(p.Steps) == 0 {
		return nil, nil
	}

	order, err := p.graph.ReachableFrom(fromID)
	if err != nil {
		return nil, fmt.Errorf("schedview: Downstream: %w", err)
	}

	reached := make(map[string]bool, len(order))
	for _, id := range order {
		reached[id] = true
	}

	out := make([]Step, 0, len(reached))
	for _, step := range p.Steps {
		if step.ID != fromID && reached[step.ID] {
			out = append(out, step)
		}
	}
	return out, nil
}
