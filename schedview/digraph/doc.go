// Package digraph is the minimal directed-graph substrate schedview
// needs to turn a resolved set of scheduling steps and dependencies into
// one topological order, and to answer "what is reachable from this
// step" — nothing more.
//
// It replaces carrying the teacher's general-purpose core/dfs/bfs graph
// library wholesale: schedview.Compute and Plan.Downstream only ever
// called NewGraph/AddVertex/AddEdge, dfs.TopologicalSort, and bfs.BFS,
// a small fraction of what those three packages expose (undirected and
// weighted graphs, adjacency-matrix export, vertex removal, degree
// queries, multigraphs, context-cancellable traversal, ...). None of
// that surface applies to a resolved scheduling dependency graph, which
// is always directed, always unweighted, and always built once and
// consumed once (spec.md §5: "construction is single-threaded,
// synchronous, and side-effect-free").
//
// The algorithms are still the teacher's, not reinvented: AddStep/
// AddDependency is core.Graph's adjacency-list vertex/edge bookkeeping
// (core/methods_vertices.go, core/methods_edges.go) trimmed to an
// insertion-ordered slice plus a map, since schedview never needs
// concurrent mutation, removal, or weights; TopologicalOrder is
// dfs.TopologicalSort's three-color (White/Gray/Black) depth-first
// search with back-edge cycle detection (dfs/topological.go), renamed
// from vertices/edges to steps/dependencies; ReachableFrom is bfs.BFS's
// queue-based traversal (bfs/bfs.go), trimmed to the one thing
// Plan.Downstream needs — the set of steps reachable from a start step,
// in visit order — dropping the depth map, parent links, and hook
// options nothing here calls.
package digraph
