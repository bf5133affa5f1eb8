package identity

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"sync/atomic"
)

// Identity is the type-erased equality/hash/clone surface shared by every
// set-identity variant (Named, SystemType, Anonymous). Downstream code
// should prefer Equal/Hash over comparing concrete types directly; the
// concrete representation of each variant is an implementation detail.
type Identity interface {
	// IsSystemType reports whether this identity denotes the implicit set
	// of all instances of one work-unit function.
	IsSystemType() bool

	// IsAnonymous reports whether this identity was minted by into_set()
	// rather than declared by the caller.
	IsAnonymous() bool

	// IsBase reports whether this identity was declared as a base set.
	// Always false for SystemType and Anonymous identities.
	IsBase() bool

	// Equal reports whether this identity and other denote the same set.
	Equal(other Identity) bool

	// Hash returns a value such that Equal(a, b) implies a.Hash() == b.Hash().
	Hash() uint64

	// Clone returns a copy that compares Equal to the receiver. For
	// Anonymous identities this must preserve the underlying identifier
	// rather than mint a new one.
	Clone() Identity

	// String returns a human-readable label for diagnostics and panic
	// messages; it is not part of the equality contract.
	String() string
}

// ---------------------------------------------------------------------------
// Named identity
// ---------------------------------------------------------------------------

// namedIdentity wraps a user-declared, comparable label. Equality and hash
// delegate to the label's own concrete type, exactly as spec.md requires:
// "Equality delegates to the user's concrete label type."
type namedIdentity struct {
	label any
	base  bool
}

// NewNamed lifts a comparable user value into a Named set Identity.
// T is constrained to comparable, so for any non-interface T the erased
// equality performed by Equal cannot panic; an interface-typed T (such as
// any) holding an uncomparable dynamic value can still panic in Equal.
func NewNamed[T comparable](label T, base bool) Identity {
	return namedIdentity{label: label, base: base}
}

func (n namedIdentity) IsSystemType() bool { return false }
func (n namedIdentity) IsAnonymous() bool  { return false }
func (n namedIdentity) IsBase() bool       { return n.base }

func (n namedIdentity) Equal(other Identity) bool {
	o, ok := other.(namedIdentity)
	if !ok {
		return false
	}
	// Both label values were constructed from a comparable T. Go only
	// panics comparing two interface values when their *shared* dynamic
	// type is uncomparable, which NewNamed's constraint excludes unless T
	// is itself an interface type.
	return n.label == o.label
}

func (n namedIdentity) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T:%v", n.label, n.label)
	return h.Sum64()
}

func (n namedIdentity) Clone() Identity { return n }

func (n namedIdentity) String() string {
	return fmt.Sprintf("Named(%v)", n.label)
}

// ---------------------------------------------------------------------------
// SystemType identity
// ---------------------------------------------------------------------------

// systemTypeIdentity identifies every registration of one work-unit
// function. Go has no zero-sized generic type markers the way a
// monomorphized Rust function type does, so the identity key is the
// function's entry address (via reflect.Value.Pointer()): stable for a
// given named function, and distinct across distinct functions, which is
// exactly the equivalence spec.md §4.1 asks for. Two closures created from
// the same literal share an entry address and therefore the same
// SystemType identity — callers that need per-instance identity should use
// an Anonymous or Named set instead, the same steering spec.md gives for
// "a fresh anonymous one" in §4.1.
type systemTypeIdentity struct {
	fn   uintptr
	name string
}

// SystemType returns the Identity naming every registration of the work
// unit's function. When v is itself a function value (a bare work-unit
// function), the identity key is its entry address, stable across every
// lift of that same function and distinct across different functions.
// When v is a boxed work-unit object rather than a bare function, Go has
// no zero-sized marker for "the type that produced this value" the way a
// monomorphized Rust function type does, so the identity key is the
// value's own concrete type (via reflect.TypeOf) — every boxed work unit
// of the same concrete Go type shares one SystemType identity, and
// distinct concrete types are disjoint, which is the closest Go analogue
// to "one identity per distinct work-unit function". Passing a nil
// function panics, matching the programmer-error-panics convention used
// throughout this module.
func SystemType(v any) Identity {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		if rv.IsNil() {
			panic("identity: SystemType(nil)")
		}
		return systemTypeIdentity{fn: rv.Pointer(), name: runtimeFuncName(rv)}
	}
	t := reflect.TypeOf(v)
	if t == nil {
		panic("identity: SystemType(nil)")
	}
	return systemTypeIdentity{fn: typeKey(t), name: t.String()}
}

// typeKey derives a stable uintptr key for a non-function concrete type by
// hashing its fully-qualified name; reflect.Type values themselves are
// already comparable and unique per type, but systemTypeIdentity needs a
// uintptr-shaped key to share storage with the function-pointer case.
func typeKey(t reflect.Type) uintptr {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s.%s", t.PkgPath(), t.String())
	return uintptr(h.Sum64())
}

func (s systemTypeIdentity) IsSystemType() bool { return true }
func (s systemTypeIdentity) IsAnonymous() bool  { return false }
func (s systemTypeIdentity) IsBase() bool       { return false }

func (s systemTypeIdentity) Equal(other Identity) bool {
	o, ok := other.(systemTypeIdentity)
	return ok && o.fn == s.fn
}

func (s systemTypeIdentity) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "systype:%d", s.fn)
	return h.Sum64()
}

func (s systemTypeIdentity) Clone() Identity { return s }

func (s systemTypeIdentity) String() string {
	return fmt.Sprintf("SystemType(%s)", s.name)
}

// ---------------------------------------------------------------------------
// Anonymous identity
// ---------------------------------------------------------------------------

// anonymousCounter is the sole process-wide shared state in this module
// (spec.md §5, §9): a monotonic source of unique identifiers for sets
// minted by into_set(). It is never reset, even across schedule rebuilds,
// because downstream invariants depend on uniqueness over the process
// lifetime (spec.md §9 "Global counter").
var anonymousCounter atomic.Uint64

// anonymousIdentity is an opaque, uniquely-identified group. Equality is
// identifier equality; Clone preserves the identifier rather than minting
// a new one, so copying an AnonymousSet node never changes its identity.
type anonymousIdentity struct {
	id uint64
}

// NewAnonymous mints a fresh Anonymous Identity. The counter increment
// only needs to guarantee uniqueness of the issued value, not any
// happens-before relation with the caller (spec.md §5) — a relaxed atomic
// add is therefore sufficient and is all Go's atomic.Uint64.Add offers.
func NewAnonymous() Identity {
	return anonymousIdentity{id: anonymousCounter.Add(1)}
}

func (a anonymousIdentity) IsSystemType() bool { return false }
func (a anonymousIdentity) IsAnonymous() bool  { return true }
func (a anonymousIdentity) IsBase() bool       { return false }

func (a anonymousIdentity) Equal(other Identity) bool {
	o, ok := other.(anonymousIdentity)
	return ok && o.id == a.id
}

func (a anonymousIdentity) Hash() uint64 { return a.id }

// Clone preserves the identifier: cloning an anonymous identity must not
// allocate a new one (spec.md §4.1).
func (a anonymousIdentity) Clone() Identity { return a }

func (a anonymousIdentity) String() string {
	return fmt.Sprintf("Anonymous(#%d)", a.id)
}
