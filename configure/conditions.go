package configure

import "github.com/goschedule/sysgraph/node"

// RunIf attaches cond to n's own condition list. Legal on System, Set,
// and AnonymousSet; illegal on Collection (the caller must call IntoSet
// first — spec.md invariant 6). cond is send-checked at attachment: a
// non-send condition is rejected by name (spec.md §4.5, §7).
func RunIf(n *node.Node, cond node.Condition) *node.Node {
	assertSend("run_if", cond)

	switch n.Kind() {
	case node.System, node.Set, node.AnonymousSet:
		n.AddCondition(cond)
		return n
	case node.Collection:
		verbPanic("run_if", "illegal on a Collection; call into_set() first")
	default:
		verbPanic("run_if", "illegal on %s", n.Kind())
	}
	panic("unreachable")
}

// DistributiveRunIf recursively pushes an independent clone of cond onto
// every transitive non-Collection descendant leaf's condition list.
// Legal only on Collection (spec.md invariant 4 and invariant 6 taken
// together; the documented rule, not the "apparent shortcut" spec.md §9
// flags as a source inconsistency).
func DistributiveRunIf(n *node.Node, cond node.CloneableCondition) *node.Node {
	assertSend("distributive_run_if", cond)

	if n.Kind() != node.Collection {
		verbPanic("distributive_run_if", "illegal on a %s; only legal on a Collection", n.Kind())
	}
	n.DistributeRunCondition(cond)
	return n
}

func assertSend(verb string, cond node.Condition) {
	if !cond.Send() {
		verbPanic(verb, "condition %q is not send-safe", cond.Name())
	}
}
