package schedview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goschedule/sysgraph/configure"
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/schedview"
)

func TestPlanDownstream_FollowsChainTransitively(t *testing.T) {
	root := configure.From(lift.Many(
		lift.Func(work("A"), lift.WithName("A")),
		lift.Func(work("B"), lift.WithName("B")),
		lift.Func(work("C"), lift.WithName("C")),
	)).Chain().Build()

	plan, err := schedview.Compute(root)
	require.NoError(t, err)

	down, err := plan.Downstream(indexID(t, plan, "A"))
	require.NoError(t, err)

	names := make([]string, 0, len(down))
	for _, s := range down {
		names = append(names, s.Node.Work().Name())
	}
	assert.Equal(t, []string{"B", "C"}, names)
}

func TestPlanDownstream_LeafHasNoDownstream(t *testing.T) {
	root := configure.From(lift.Many(
		lift.Func(work("A"), lift.WithName("A")),
		lift.Func(work("B"), lift.WithName("B")),
	)).Chain().Build()

	plan, err := schedview.Compute(root)
	require.NoError(t, err)

	down, err := plan.Downstream(indexID(t, plan, "B"))
	require.NoError(t, err)
	assert.Empty(t, down)
}

func TestPlanDownstream_EmptyPlanIsNilSafe(t *testing.T) {
	plan, err := schedview.Compute()
	require.NoError(t, err)

	down, err := plan.Downstream("anything")
	require.NoError(t, err)
	assert.Nil(t, down)
}

// indexID returns the schedview-internal ID assigned to the step whose
// underlying system is named name, so callers can drive Downstream
// without reaching into schedview's unexported collector.
func indexID(t *testing.T, plan *schedview.Plan, name string) string {
	t.Helper()
	i := indexOf(plan.Steps, name)
	require.GreaterOrEqual(t, i, 0)
	return plan.Steps[i].ID
}
