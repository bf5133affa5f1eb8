package lift

import (
	"context"

	"github.com/goschedule/sysgraph/identity"
	"github.com/goschedule/sysgraph/node"
)

// Into is the result of lifting any of the recognized input shapes. Its
// only method is unexported so values of this type can only originate
// from this package's constructors (see doc.go).
type Into interface {
	intoNode() *node.Node
}

type lifted struct{ n *node.Node }

func (l lifted) intoNode() *node.Node { return l.n }

// Node materializes an Into value into the *node.Node it wraps. Builder
// verbs in package configure call this first, on every argument, before
// doing anything else — "lift `other`/`parent`/`set` to a node/identity"
// in spec.md §4.5 is exactly this call.
func Node(into Into) *node.Node { return into.intoNode() }

// Of wraps an already-built *node.Node as an Into, so the result of a
// prior builder chain (or a hand-built node.Node) can be passed anywhere
// an Into is expected — the "pre-boxed" shapes in spec.md §4.4 table
// generalize to "already a node" in Go, since there is no separate boxed
// representation for a work unit or identity once lifted.
func Of(n *node.Node) Into { return lifted{n: n} }

// Func lifts a bare work-unit function into a System node. The node's
// implicit system-type identity (TypeIdentity) is recorded on it
// (SPEC_FULL.md §3, supplement 1); Before/After do not use it to match a
// second lift of the same function against prior registrations.
func Func(fn func(context.Context) error, opts ...FuncOption) Into {
	if fn == nil {
		panic("lift: Func(nil)")
	}
	w := funcWork{fn: fn, name: funcName(fn), send: true}
	for _, opt := range opts {
		opt(&w)
	}
	n := node.NewSystem(w)
	n.SetTypeIdentity(identity.SystemType(fn))
	return lifted{n: n}
}

// Work lifts a pre-boxed work unit into a System node, recording its
// system-type identity from the work unit's own concrete type.
func Work(w node.Work) Into {
	if w == nil {
		panic("lift: Work(nil)")
	}
	n := node.NewSystem(w)
	n.SetTypeIdentity(identity.SystemType(w))
	return lifted{n: n}
}

// Set lifts a pre-boxed set identity into a Set node.
func Set(id identity.Identity) Into {
	if id == nil {
		panic("lift: Set(nil)")
	}
	return lifted{n: node.NewSet(id)}
}

// Label lifts a concrete, comparable named-set value into a Set node
// whose identity is non-base (spec.md §4.4 table, "Concrete named-set
// value").
func Label[T comparable](label T) Into {
	return lifted{n: node.NewSet(identity.NewNamed(label, false))}
}

// BaseLabel lifts a concrete, comparable named-set value into a Set node
// whose identity is flagged as a base set. Base-ness is a property of the
// identity, declared once at creation, not toggled afterward — spec.md §3
// says base sets are "user-declared on named sets".
func BaseLabel[T comparable](label T) Into {
	return lifted{n: node.NewSet(identity.NewNamed(label, true))}
}

// Many lifts a run of Into values into a single Collection node, in
// argument order — the Go analogue of the tuple-of-arity-0..15 input
// shape (see doc.go). Many() with no arguments legally produces an empty
// Collection.
func Many(items ...Into) Into {
	members := make([]*node.Node, len(items))
	for i, it := range items {
		members[i] = it.intoNode()
	}
	return lifted{n: node.NewCollection(members, false)}
}
