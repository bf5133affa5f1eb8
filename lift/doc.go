// Package lift implements the "into graph node" polymorphism surface
// (spec.md §4.4, §6): converting a raw work-unit function, a pre-boxed
// work unit, a set identity, a concrete named-set label, an already-built
// node, or a variadic run of any of these into a single *node.Node.
//
// Rust expresses this surface with a generic IntoSystemConfigs trait and
// tuple impls for arity 0..15; Go has neither tuples nor ad-hoc trait
// impls on foreign types, so the surface is a small closed set of
// constructor functions (Func, Work, Set, Label, BaseLabel, Of) that each
// return the single exported type Into, plus one variadic constructor,
// Many, standing in for the tuple family — Go variadics have no arity
// ceiling, so the 0..15 limit the spec mentions is not re-imposed; an
// empty Many() call still legally produces an empty Collection
// (spec.md §8 boundary behavior).
//
// Into intentionally exposes no way to construct it other than through
// this package's functions: its only method is unexported, so every
// Into value reaching package configure is guaranteed to have gone
// through one of the closed input shapes this package recognizes.
package lift
