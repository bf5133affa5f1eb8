// Package sysgraph is your declarative scheduling configuration language
// for Go: describe what work units run, in what order, under what
// conditions, and in which logical groupings, and get back a
// fully-annotated system graph node a downstream executor can run.
//
// 🚀 What is sysgraph?
//
//	A small, zero-dependency-at-its-core DSL that brings together:
//
//	  • Identity: named sets, system-type sets, and anonymous sets (identity/)
//	  • Graph nodes: the canonical IR — System, Set, AnonymousSet, Collection (node/)
//	  • Lifting: turn a function, a work unit, a label, or a list of any of
//	    those into a graph node uniformly (lift/)
//	  • Builder verbs: before/after, in_set/in_base_set, run_if/
//	    distributive_run_if, ambiguous_with(_all), chain, into_set (configure/)
//	  • Plugins: the host-facing registration contract (plugin/)
//
// ✨ Why choose sysgraph?
//
//   - Declarative    — construction is pure rearrangement, no hidden I/O
//   - Fail-fast      — structural mistakes panic immediately, with a
//     named verb and a human-readable reason, never a silent wrong graph
//   - Composable     — a single system, a tuple of systems, a named set,
//     and an already-built node all lift into the same IR
//   - Executor-agnostic — sysgraph only describes the graph; ordering,
//     parallelism, and execution are left entirely to the consumer
//     (schedview/ is one illustrative, non-core example of such a consumer)
//
// Under the hood, everything is organized under focused subpackages:
//
//	identity/  — set-identity variants and their type-erased equality/hash
//	graphinfo/ — DependencyKind and the Ambiguity state machine
//	node/      — the System/Set/AnonymousSet/Collection graph node
//	lift/      — the polymorphic "into graph node" conversion surface
//	configure/ — the builder verbs that enforce every structural invariant
//	plugin/    — the Plugin contract and the App host that registers them
//	schedview/ — an illustrative executor: flattens a node tree to a
//	             topologically sorted Plan (not part of sysgraph's contract)
//
// Quick sketch:
//
//	(moveSystem, renderSystem).chain().in_set(physicsSet)
//
//	produces a Collection of two Systems, chained so the executor orders
//	Move before Render, both declaring membership in the physics set.
//
// Dive into SPEC_FULL.md and DESIGN.md for the full design rationale, and
// cmd/schedgraph-demo for a runnable end-to-end example.
//
//	go get github.com/goschedule/sysgraph
package sysgraph
