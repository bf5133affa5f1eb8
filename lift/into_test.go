package lift_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goschedule/sysgraph/identity"
	"github.com/goschedule/sysgraph/lift"
	"github.com/goschedule/sysgraph/node"
)

func noopSystem(ctx context.Context) error { return nil }

func TestFunc_ProducesSystemWithTypeIdentity(t *testing.T) {
	n := lift.Node(lift.Func(noopSystem))
	require.Equal(t, node.System, n.Kind())
	require.NotNil(t, n.Work())
	assert.True(t, n.Work().Send())
	require.NotNil(t, n.TypeIdentity())

	n2 := lift.Node(lift.Func(noopSystem))
	assert.True(t, n.TypeIdentity().Equal(n2.TypeIdentity()))
}

func TestFunc_NotSendOption(t *testing.T) {
	n := lift.Node(lift.Func(noopSystem, lift.NotSend()))
	assert.False(t, n.Work().Send())
}

func TestFunc_NilPanics(t *testing.T) {
	assert.Panics(t, func() { lift.Func(nil) })
}

func TestSetAndLabel_ProduceSetNodes(t *testing.T) {
	n1 := lift.Node(lift.Label("physics"))
	assert.Equal(t, node.Set, n1.Kind())
	assert.False(t, n1.Identity().IsBase())

	n2 := lift.Node(lift.BaseLabel("physics"))
	assert.True(t, n2.Identity().IsBase())

	n3 := lift.Node(lift.Set(identity.NewNamed("x", false)))
	assert.Equal(t, node.Set, n3.Kind())
}

func TestMany_EmptyProducesEmptyCollection(t *testing.T) {
	n := lift.Node(lift.Many())
	assert.Equal(t, node.Collection, n.Kind())
	assert.Empty(t, n.Members())
}

func TestMany_PreservesOrder(t *testing.T) {
	a := lift.Func(noopSystem, lift.WithName("a"))
	b := lift.Func(noopSystem, lift.WithName("b"))
	n := lift.Node(lift.Many(a, b))
	require.Len(t, n.Members(), 2)
	assert.Equal(t, "a", n.Members()[0].Work().Name())
	assert.Equal(t, "b", n.Members()[1].Work().Name())
}

func TestOf_RoundTripsExistingNode(t *testing.T) {
	built := node.NewSystem(nil)
	wrapped := lift.Of(built)
	assert.Same(t, built, lift.Node(wrapped))
}
