// Package identity provides the three set-identity variants that name a
// group of work units in the scheduling DSL: a user-declared label
// ("Named"), the implicit set of every registration of one work-unit
// function ("SystemType"), and an opaque, uniquely generated group
// ("Anonymous").
//
// All three satisfy Identity, a small type-erased equality/hash surface:
//
//	– Named      — wraps a comparable user value; equality and hash are
//	               derived from that value's own concrete type.
//	– SystemType — one identity per distinct work-unit function; every
//	               lift of the same function resolves to an Identity that
//	               compares and hashes equal, and two different functions
//	               are always disjoint.
//	– Anonymous  — backed by a process-wide monotonic counter
//	               (sync/atomic, relaxed ordering); equality is identifier
//	               equality and Clone never mints a new identifier.
//
// Named, SystemType and Anonymous are mutually exclusive and carry no
// shared base type beyond the Identity interface — a type switch (or the
// IsSystemType/IsAnonymous/IsBase predicates) is how callers distinguish
// them, mirroring how the teacher package distinguishes Graph edge modes
// via boolean flags rather than a type hierarchy.
package identity
