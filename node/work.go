package node

import "context"

// Work is the opaque work unit ("system") the core stores and moves but
// never inspects beyond this contract (spec.md §3: "an object with: a
// stable name, a declared send-ness flag, and an invoke interface").
type Work interface {
	// Name returns a stable identifier for diagnostics and for resolving
	// Before/After/in_set targets given by value rather than by function
	// literal.
	Name() string

	// Send reports whether this work unit is safe to hand to another
	// goroutine. The DSL itself never schedules anything (spec.md §5); it
	// only records this flag for the downstream executor, except for
	// Condition, where it is asserted at attach time (spec.md §3).
	Send() bool

	// Run invokes the work unit. The DSL never calls this; it is the
	// downstream executor's "invoke interface".
	Run(ctx context.Context) error
}

// Condition is a Work unit restricted to boolean output, used to gate a
// node's execution (spec.md GLOSSARY: "a send-safe boolean-returning work
// unit gating execution").
type Condition interface {
	Work

	// Check evaluates the condition.
	Check(ctx context.Context) (bool, error)
}

// CloneableCondition is a Condition that can produce an independent copy
// of itself. distributive_run_if requires this (spec.md §4.5:
// "cond must be cloneable (each leaf gets its own copy)"); plain run_if
// does not, since it attaches a single Condition value to a single node.
type CloneableCondition interface {
	Condition

	// Clone returns a copy of this condition suitable for attaching to a
	// distinct node independently of the receiver.
	Clone() CloneableCondition
}
