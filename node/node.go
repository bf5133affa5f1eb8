package node

import "github.com/goschedule/sysgraph/identity"

// Kind tags which of the four system-graph-node variants a Node is
// (spec.md §3).
type Kind int

const (
	// System owns a work unit and an ordered condition list.
	System Kind = iota
	// Set owns a named set identity and an ordered condition list, but no
	// members — membership is declared elsewhere, by adding systems to
	// this set via in_set.
	Set
	// AnonymousSet owns an ordered member list, a chained flag, and a
	// condition list. It represents an ad-hoc, uniquely-identified group.
	AnonymousSet
	// Collection owns an ordered member list and a chained flag, but no
	// identity and no conditions of its own — a transient, unnamed
	// wrapper around "just these things together".
	Collection
)

// String renders the kind for diagnostics and panic messages.
func (k Kind) String() string {
	switch k {
	case System:
		return "System"
	case Set:
		return "Set"
	case AnonymousSet:
		return "AnonymousSet"
	case Collection:
		return "Collection"
	default:
		return "Kind(?)"
	}
}

// Node is the canonical system-graph intermediate representation
// (spec.md §3/§4.3). Exactly one of its payload fields is meaningful,
// selected by Kind:
//
//	System       -> work
//	Set          -> setIdentity
//	AnonymousSet -> setIdentity (always Anonymous), members, chained
//	Collection   -> members, chained
//
// conditions is meaningful for System, Set, and AnonymousSet, and always
// empty for Collection (spec.md invariant 3).
type Node struct {
	kind Kind
	info Info

	work         Work
	setIdentity  identity.Identity
	typeIdentity identity.Identity
	conditions   []Condition
	members      []*Node
	chained      bool
}

// NewSystem wraps a work unit as a System node with system-origin Info
// (spec.md §4.4 table).
func NewSystem(w Work) *Node {
	return &Node{kind: System, info: newSystemOriginInfo(), work: w}
}

// NewSet wraps a set identity as a Set node with set-origin Info
// (spec.md §4.4 table). The identity is not inspected: an Anonymous id is
// accepted here like any other, and neither package lift nor package
// configure rejects one.
func NewSet(id identity.Identity) *Node {
	return &Node{kind: Set, info: newSetOriginInfo(), setIdentity: id}
}

// NewAnonymousSet builds an AnonymousSet node with a freshly minted
// Anonymous identity, the given ordered members, and chained flag
// (used by configure.IntoSet, both for into_set on a System and for
// into_set on a Collection).
func NewAnonymousSet(members []*Node, chained bool) *Node {
	return &Node{
		kind:        AnonymousSet,
		info:        newSetOriginInfo(),
		setIdentity: identity.NewAnonymous(),
		members:     append([]*Node(nil), members...),
		chained:     chained,
	}
}

// NewCollection builds a Collection node with the given ordered members
// and chained flag and set-origin Info (spec.md §4.4 table: tuples of any
// arity, including zero, lift to a Collection).
func NewCollection(members []*Node, chained bool) *Node {
	return &Node{
		kind:    Collection,
		info:    newSetOriginInfo(),
		members: append([]*Node(nil), members...),
		chained: chained,
	}
}

// Kind returns which variant this node is.
func (n *Node) Kind() Kind { return n.kind }

// Info returns a pointer to this node's graph-info record so callers in
// package configure can mutate it directly, the same way the spec
// describes builder verbs reaching into the record (spec.md §4.2).
func (n *Node) Info() *Info { return &n.info }

// Work returns the wrapped work unit. Only meaningful when Kind() ==
// System; returns nil otherwise.
func (n *Node) Work() Work { return n.work }

// Identity returns this node's set identity. Only meaningful when Kind()
// is Set or AnonymousSet; returns nil otherwise.
func (n *Node) Identity() identity.Identity { return n.setIdentity }

// TypeIdentity returns the implicit system-type identity recorded when
// this System node was lifted from a bare function or boxed work unit
// (SPEC_FULL.md §3, supplement 1). It is stored for callers that want to
// match every registration of the same function; configure's Before and
// After record the lifted target node itself and do not consult it, and
// schedview resolves a System target only to that exact node. Returns nil for nodes
// that are not System, or that were constructed without a source work
// unit (should not happen via the lift package).
func (n *Node) TypeIdentity() identity.Identity { return n.typeIdentity }

// SetTypeIdentity records the implicit system-type identity for a System
// node. Called by package lift immediately after NewSystem.
func (n *Node) SetTypeIdentity(id identity.Identity) { n.typeIdentity = id }

// Conditions returns a copy of this node's ordered condition list, in
// attachment order. Always empty for Collection (invariant 3).
func (n *Node) Conditions() []Condition {
	if len(n.conditions) == 0 {
		return nil
	}
	return append([]Condition(nil), n.conditions...)
}

// Members returns a copy of this node's ordered member list. Only
// meaningful when Kind() is AnonymousSet or Collection; returns nil
// otherwise.
func (n *Node) Members() []*Node {
	if len(n.members) == 0 {
		return nil
	}
	return append([]*Node(nil), n.members...)
}

// Chained reports the chained flag. Only meaningful when Kind() is
// AnonymousSet or Collection; always false for System/Set.
func (n *Node) Chained() bool { return n.chained }

// AddCondition appends c to this node's condition list. It is a raw
// primitive with no invariant enforcement (package configure is
// responsible for rejecting this call on a Collection before ever
// invoking it); calling it on a Collection would silently violate
// invariant 3, which is why configure never does.
func (n *Node) AddCondition(c Condition) {
	n.conditions = append(n.conditions, c)
}

// SetMembers replaces this node's member list wholesale with a copy of
// members. configure.IntoSet does not use it: it passes a Collection's
// members to NewAnonymousSet instead.
func (n *Node) SetMembers(members []*Node) {
	n.members = append([]*Node(nil), members...)
}

// SetChained sets the chained flag directly.
func (n *Node) SetChained(chained bool) { n.chained = chained }

// ContainsSystem reports whether this node is a System, or recursively
// contains one via Collection members (spec.md §4.3). It never crosses a
// Set/AnonymousSet boundary: membership of a named or anonymous set is
// established later, by other nodes declaring in_set against it, not by
// nesting.
func (n *Node) ContainsSystem() bool {
	switch n.kind {
	case System:
		return true
	case Collection:
		for _, m := range n.members {
			if m.ContainsSystem() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ContainsSystemTypeSet reports whether this node is a Set whose identity
// is system-type, or a Collection whose descendants include such a Set
// (spec.md §4.3).
func (n *Node) ContainsSystemTypeSet() bool {
	switch n.kind {
	case Set:
		return n.setIdentity.IsSystemType()
	case Collection:
		for _, m := range n.members {
			if m.ContainsSystemTypeSet() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ContainsBaseSet reports whether this node is a Set whose identity is
// base, or a Collection containing such (spec.md §4.3).
func (n *Node) ContainsBaseSet() bool {
	switch n.kind {
	case Set:
		return n.setIdentity.IsBase()
	case Collection:
		for _, m := range n.members {
			if m.ContainsBaseSet() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// DistributeRunCondition recursively pushes a clone of c onto each
// transitive non-Collection descendant's condition list (spec.md §4.3,
// the engine behind distributive_run_if). On a non-Collection node it
// attaches one clone directly; on a Collection it recurses into every
// member, cloning c fresh at each branch so no two leaves share a
// Condition value.
func (n *Node) DistributeRunCondition(c CloneableCondition) {
	if n.kind == Collection {
		for _, m := range n.members {
			m.DistributeRunCondition(c)
		}
		return
	}
	n.AddCondition(c.Clone())
}
