// Package configure implements the builder verbs of spec.md §4.5: before,
// after, in_set, in_base_set, in_default_base_set, no_default_base_set,
// run_if, distributive_run_if, ambiguous_with, ambiguous_with_all, chain,
// and into_set.
//
// Every verb is a plain function over *node.Node — Go has no way to add
// methods to a type declared in another package, so package node cannot
// host these directly even though spec.md groups "the node" and "its
// verbs" under one mental model. Config (builder.go) is a thin
// chainable wrapper around *node.Node that promotes every verb as a
// method, giving callers the fluent chain the spec's examples read as
// (`A.in_set(S)`) without requiring node itself to depend on configure.
//
// Every verb here either mutates its receiver's Info/conditions/members
// in place and returns it, or — for into_set — returns a freshly
// constructed replacement node; callers should always use the returned
// value. All rejections are panics (spec.md §7: "structural programmer
// errors... surfaced by immediate panic with a localized, human-readable
// message"), each prefixed with the rejecting verb's name, following the
// teacher's "<Method>: <message>" convention (builder.builderErrorf) but
// for panic() rather than error wrapping, since nothing here is
// recoverable at this layer.
package configure
