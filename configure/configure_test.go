package configure_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goschedule/sysgraph/configure"
	"github.com/goschedule/sysgraph/graphinfo"
	"github.com/goschedule/sysgraph/identity"
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/node"
)

func noop(ctx context.Context) error { return nil }

type stubCondition struct {
	name   string
	send   bool
	result bool
	copies *int
}

func (c stubCondition) Name() string                           { return c.name }
func (c stubCondition) Send() bool                              { return c.send }
func (c stubCondition) Run(ctx context.Context) error           { return nil }
func (c stubCondition) Check(ctx context.Context) (bool, error) { return c.result, nil }
func (c stubCondition) Clone() node.CloneableCondition {
	if c.copies != nil {
		*c.copies++
	}
	return c
}

// Scenario 1 (spec.md §8): Simple order via chain().
func TestScenario_SimpleOrderChain(t *testing.T) {
	cfg := configure.From(lift.Many(lift.Func(noop, lift.WithName("A")), lift.Func(noop, lift.WithName("B")))).Chain()

	n := cfg.Build()
	require.Equal(t, node.Collection, n.Kind())
	require.True(t, n.Chained())
	require.Len(t, n.Members(), 2)
	assert.Equal(t, "A", n.Members()[0].Work().Name())
	assert.Equal(t, "B", n.Members()[1].Work().Name())
}

// Scenario 2 (spec.md §8): Named set membership.
func TestScenario_NamedSetMembership(t *testing.T) {
	cfg := configure.From(lift.Func(noop, lift.WithName("A"))).InSet(lift.Label("S"))

	n := cfg.Build()
	require.Len(t, n.Info().Sets, 1)
	assert.True(t, n.Info().Sets[0].Identity().Equal(identity.NewNamed("S", false)))
	assert.Nil(t, n.Info().BaseSet)
}

// Scenario 3 (spec.md §8): Base-set rejection.
func TestScenario_BaseSetRejection(t *testing.T) {
	assert.PanicsWithValue(t,
		"configure: in_set: base system sets cannot be added to other sets",
		func() {
			configure.From(lift.BaseLabel("B")).InSet(lift.Label("S"))
		},
	)
}

// Scenario 4 (spec.md §8): Distributive condition.
func TestScenario_DistributiveCondition(t *testing.T) {
	copies := 0
	cond := stubCondition{name: "alive", send: true, result: true, copies: &copies}

	coll := configure.From(lift.Many(
		lift.Func(noop, lift.WithName("A")),
		lift.Func(noop, lift.WithName("B")),
		lift.Func(noop, lift.WithName("C")),
	))
	built := coll.DistributiveRunIf(cond).Build()

	require.Equal(t, node.Collection, built.Kind())
	assert.Empty(t, built.Conditions())
	for _, m := range built.Members() {
		assert.Len(t, m.Conditions(), 1)
	}
	assert.Equal(t, 3, copies)
}

// Scenario 5 (spec.md §8): Group condition requires into_set.
func TestScenario_GroupConditionRequiresIntoSet(t *testing.T) {
	cond := stubCondition{name: "c", send: true}

	assert.Panics(t, func() {
		configure.From(lift.Many(lift.Func(noop), lift.Func(noop))).RunIf(cond)
	})

	cfg := configure.From(lift.Many(lift.Func(noop, lift.WithName("A")), lift.Func(noop, lift.WithName("B")))).
		IntoSet().
		RunIf(cond)

	n := cfg.Build()
	require.Equal(t, node.AnonymousSet, n.Kind())
	assert.False(t, n.Chained())
	require.Len(t, n.Members(), 2)
	require.Len(t, n.Conditions(), 1)
}

// Scenario 6 (spec.md §8): Ambiguity absorbing state.
func TestScenario_AmbiguityAbsorbingState(t *testing.T) {
	cfg := configure.From(lift.Func(noop)).
		AmbiguousWith(lift.Label("S")).
		AmbiguousWithAll().
		AmbiguousWith(lift.Label("T"))

	amb := cfg.Build().Info().Ambiguity
	assert.True(t, amb.IsIgnoreAll())
	assert.Nil(t, amb.IgnoreSets())
}

func TestChain_PanicsOnSystemAndSet(t *testing.T) {
	assert.Panics(t, func() { configure.From(lift.Func(noop)).Chain() })
	assert.Panics(t, func() { configure.From(lift.Label("S")).Chain() })
}

func TestInSet_SystemTypeSetRejectsMembers(t *testing.T) {
	assert.Panics(t, func() {
		configure.From(lift.Func(noop)).InSet(lift.Set(identity.SystemType(noop)))
	})
}

func TestInBaseSet_OverwritesNotAccumulates(t *testing.T) {
	cfg := configure.From(lift.Func(noop)).
		InBaseSet(lift.BaseLabel("first")).
		InBaseSet(lift.BaseLabel("second"))

	base := cfg.Build().Info().BaseSet
	require.NotNil(t, base)
	assert.True(t, base.Identity().Equal(identity.NewNamed("second", true)))
}

func TestDefaultBaseSetToggleConvergence(t *testing.T) {
	a := configure.From(lift.Func(noop)).InDefaultBaseSet().Build().Info().AddDefaultBaseSet
	b := configure.From(lift.Func(noop)).NoDefaultBaseSet().InDefaultBaseSet().Build().Info().AddDefaultBaseSet
	assert.Equal(t, a, b)
}

func TestIntoSet_FromCollectionPreservesOrderChainedAndInfo(t *testing.T) {
	coll := configure.From(lift.Many(lift.Func(noop, lift.WithName("A")), lift.Func(noop, lift.WithName("B")))).
		Chain().
		NoDefaultBaseSet()

	before := coll.Build()
	promoted := configure.IntoSet(before)

	require.Equal(t, node.AnonymousSet, promoted.Kind())
	assert.True(t, promoted.Chained())
	assert.False(t, promoted.Info().AddDefaultBaseSet)
	require.Len(t, promoted.Members(), 2)
	assert.Equal(t, "A", promoted.Members()[0].Work().Name())
	assert.Equal(t, "B", promoted.Members()[1].Work().Name())
}

func TestIntoSet_PanicsWhenAlreadySet(t *testing.T) {
	assert.Panics(t, func() { configure.From(lift.Label("S")).IntoSet() })
}

func TestBefore_RecordsVerbatimNoDedup(t *testing.T) {
	cfg := configure.From(lift.Func(noop, lift.WithName("A"))).
		Before(lift.Func(noop, lift.WithName("B"))).
		Before(lift.Func(noop, lift.WithName("B")))

	deps := cfg.Build().Info().Dependencies
	require.Len(t, deps, 2)
	assert.Equal(t, graphinfo.Before, deps[0].Kind)
}
