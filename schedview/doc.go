// Package schedview is an illustrative, non-core executor: it takes a
// built *node.Node tree (or several, one per registered plugin) and
// computes a single topologically sorted execution plan from it.
//
// It exists only so the handoff spec.md §6 describes — "the scheduler is
// presented with a graph node" and must interpret dependencies, set
// membership, and chaining — has a runnable demonstration. It is
// deliberately outside the DSL's own contract, the same way spec.md §1
// names "the input-event subsystem shown only as an illustrative client"
// as an out-of-scope collaborator, not part of the core.
//
// Compute materializes the resolved dependency/chain edges onto a
// schedview/digraph.Graph and defers ordering to its TopologicalOrder,
// a three-color depth-first search grounded on the teacher's graph
// library but reshaped into this package's own steps/dependencies
// vocabulary and trimmed to exactly what a resolved scheduling graph
// needs: no undirected edges, no weights, no concurrent mutation. See
// schedview/digraph's package doc for the full grounding. Batch-level
// parallelization (grouping independent systems for concurrent
// execution, the way other_examples' oriumgames-bevi/internal/scheduler
// .Scheduler.computeBatches does) is left to a real executor — spec.md's
// Non-goals explicitly exclude any opinion on parallelism at this
// layer, and schedview only needs one valid linear order to demonstrate
// the handoff.
//
// Plan.Downstream answers "what runs after this step" over the
// same digraph.Graph Compute already built — a diagnostic a schedule
// author reaches for when auditing why a Before/After/chain edge
// exists, without introducing a second graph representation to answer
// it.
package schedview
