// Package graphinfo defines the small, dependency-free value types that
// compose a graph node's info record: dependency kinds (Before/After) and
// the ambiguity-suppression policy state machine (Check /
// IgnoreWithSet / IgnoreAll).
//
// The record itself — node.Info, §4.2 of SPEC_FULL.md — lives in package
// node rather than here, because it also holds ordered references to
// parent and dependency *node.Node values; keeping those two concerns in
// one package would create an import cycle between graphinfo and node.
// graphinfo owns everything that has no node reference; node owns the
// record that ties them together. This mirrors how the teacher keeps
// pure value types (builder.Chord, builder.HexagramVariant) in small
// files separate from the types that reference the graph itself.
package graphinfo
