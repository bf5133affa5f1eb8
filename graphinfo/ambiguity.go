package graphinfo

import "github.com/goschedule/sysgraph/identity"

// ambiguityMode tags which state of the ambiguous_with state machine an
// Ambiguity value is in (spec.md §3/§4.5/§6: "Recognized ambiguity options
// (exhaustive): {Check, IgnoreWithSet(list), IgnoreAll}").
type ambiguityMode int

const (
	modeCheck ambiguityMode = iota
	modeIgnoreWithSet
	modeIgnoreAll
)

// Ambiguity is the ambiguity-suppression policy attached to every node. It
// starts in the Check state and only ever moves toward more permissive
// states, terminating at IgnoreAll, which is an absorbing state: once
// reached, further WithIgnoreSet calls are no-ops (spec.md §4.5,
// "ambiguous_with_all()... from IgnoreAll → no-op").
type Ambiguity struct {
	mode ambiguityMode
	sets []identity.Identity
}

// NewAmbiguity returns the default Check state every node starts in.
func NewAmbiguity() Ambiguity {
	return Ambiguity{mode: modeCheck}
}

// IsCheck reports whether the policy is still in the default Check state.
func (a Ambiguity) IsCheck() bool { return a.mode == modeCheck }

// IsIgnoreAll reports whether the policy reached the absorbing IgnoreAll
// state.
func (a Ambiguity) IsIgnoreAll() bool { return a.mode == modeIgnoreAll }

// IgnoreSets returns the identities accumulated while in the IgnoreWithSet
// state, in the order they were added. Returns nil in the Check or
// IgnoreAll states.
func (a Ambiguity) IgnoreSets() []identity.Identity {
	if a.mode != modeIgnoreWithSet {
		return nil
	}
	return a.sets
}

// WithIgnoreSet returns the Ambiguity value after ambiguous_with(set):
//
//	Check            -> IgnoreWithSet([set])
//	IgnoreWithSet(xs) -> IgnoreWithSet(append(xs, set))
//	IgnoreAll        -> IgnoreAll (no-op, terminal absorbing state)
func (a Ambiguity) WithIgnoreSet(set identity.Identity) Ambiguity {
	switch a.mode {
	case modeIgnoreAll:
		return a
	case modeIgnoreWithSet:
		next := make([]identity.Identity, len(a.sets), len(a.sets)+1)
		copy(next, a.sets)
		next = append(next, set)
		return Ambiguity{mode: modeIgnoreWithSet, sets: next}
	default: // modeCheck
		return Ambiguity{mode: modeIgnoreWithSet, sets: []identity.Identity{set}}
	}
}

// WithIgnoreAll returns the Ambiguity value after ambiguous_with_all():
// unconditionally IgnoreAll, discarding any accumulated sets. Idempotent.
func (a Ambiguity) WithIgnoreAll() Ambiguity {
	return Ambiguity{mode: modeIgnoreAll}
}
