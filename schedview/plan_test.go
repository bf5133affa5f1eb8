package schedview_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goschedule/sysgraph/configure"
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/schedview"
)

func work(name string) func(context.Context) error {
	return func(ctx context.Context) error { return nil }
}

func indexOf(steps []schedview.Step, name string) int {
	for i, s := range steps {
		if s.Node.Work().Name() == name {
			return i
		}
	}
	return -1
}

func TestCompute_ChainOrdersMembers(t *testing.T) {
	root := configure.From(lift.Many(
		lift.Func(work("A"), lift.WithName("A")),
		lift.Func(work("B"), lift.WithName("B")),
		lift.Func(work("C"), lift.WithName("C")),
	)).Chain().Build()

	plan, err := schedview.Compute(root)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 3)

	assert.Less(t, indexOf(plan.Steps, "A"), indexOf(plan.Steps, "B"))
	assert.Less(t, indexOf(plan.Steps, "B"), indexOf(plan.Steps, "C"))
}

func TestCompute_BeforeAfterAcrossRoots(t *testing.T) {
	b := configure.From(lift.Func(work("B"), lift.WithName("B"))).Build()
	a := configure.From(lift.Func(work("A"), lift.WithName("A"))).
		Before(lift.Of(b)).
		Build()

	plan, err := schedview.Compute(a, b)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)
	assert.Less(t, indexOf(plan.Steps, "A"), indexOf(plan.Steps, "B"))
}

func TestCompute_SetMembershipResolvesDependency(t *testing.T) {
	setInto := lift.Label("physics")

	member := configure.From(lift.Func(work("Move"), lift.WithName("Move"))).
		InSet(setInto).
		Build()
	after := configure.From(lift.Func(work("Render"), lift.WithName("Render"))).
		After(setInto).
		Build()

	plan, err := schedview.Compute(member, after)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)
	assert.Less(t, indexOf(plan.Steps, "Move"), indexOf(plan.Steps, "Render"))
}

func TestCompute_CycleReportsError(t *testing.T) {
	a := configure.From(lift.Func(work("A"), lift.WithName("A"))).Build()
	b := configure.From(lift.Func(work("B"), lift.WithName("B"))).Build()

	configure.Before(a, lift.Of(b))
	configure.Before(b, lift.Of(a))

	_, err := schedview.Compute(a, b)
	require.Error(t, err)
}

func TestCompute_EmptyRootsReturnsEmptyPlan(t *testing.T) {
	plan, err := schedview.Compute()
	require.NoError(t, err)
	assert.Empty(t, plan.Steps)
}
