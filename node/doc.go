// Package node defines Node, the canonical system-graph intermediate
// representation every user expression is normalized into (SPEC_FULL.md
// §4.3), plus the two opaque work-unit contracts (Work, Condition) the
// core only stores and moves, never inspects.
//
// Node is a tagged union over four variants (Kind): System, Set,
// AnonymousSet, Collection. Each carries an Info record (parent-set
// memberships, chosen base set, ordering dependencies, ambiguity policy,
// default-base-set toggle) and, where the variant allows it, an ordered
// condition list and/or an ordered member list.
//
// This package owns the data, the read-only introspection predicates
// (ContainsSystem, ContainsSystemTypeSet, ContainsBaseSet) that package
// configure consults before accepting a parent/child relation, and
// DistributeRunCondition, the condition fan-out behind
// distributive_run_if. It deliberately owns no invariant
// enforcement and never panics: every structural rule in spec.md §3 is
// enforced by the verbs in package configure, which is the single place
// a caller-facing panic is raised, named after the rejecting verb. This
// mirrors how the teacher's core package exposes a minimal, literal API
// (AddVertex, AddEdge, Neighbors) and leaves higher-level composition and
// validation policy to its builder package.
package node
