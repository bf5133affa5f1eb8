package node_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goschedule/sysgraph/identity"
	"github.com/goschedule/sysgraph/node"
)

type stubWork struct {
	name string
	send bool
}

func (s stubWork) Name() string                     { return s.name }
func (s stubWork) Send() bool                       { return s.send }
func (s stubWork) Run(ctx context.Context) error    { return nil }

type stubCondition struct {
	stubWork
	result bool
	copies *int
}

func (c stubCondition) Check(ctx context.Context) (bool, error) { return c.result, nil }
func (c stubCondition) Clone() node.CloneableCondition {
	if c.copies != nil {
		*c.copies++
	}
	return c
}

func TestNewSystem_DefaultsAddDefaultBaseSetTrue(t *testing.T) {
	n := node.NewSystem(stubWork{name: "move", send: true})
	assert.Equal(t, node.System, n.Kind())
	assert.True(t, n.Info().AddDefaultBaseSet)
	assert.True(t, n.Info().Ambiguity.IsCheck())
}

func TestNewSet_DefaultsAddDefaultBaseSetFalse(t *testing.T) {
	n := node.NewSet(identity.NewNamed("physics", false))
	assert.Equal(t, node.Set, n.Kind())
	assert.False(t, n.Info().AddDefaultBaseSet)
}

func TestContainsSystem_CrossesCollectionNotSet(t *testing.T) {
	sys := node.NewSystem(stubWork{name: "a"})
	coll := node.NewCollection([]*node.Node{sys}, false)
	assert.True(t, coll.ContainsSystem())

	set := node.NewSet(identity.NewNamed("grp", false))
	assert.False(t, set.ContainsSystem())

	nested := node.NewCollection([]*node.Node{set}, false)
	assert.False(t, nested.ContainsSystem())
}

func TestContainsBaseSetAndSystemTypeSet(t *testing.T) {
	base := node.NewSet(identity.NewNamed("phase", true))
	assert.True(t, base.ContainsBaseSet())

	sysType := node.NewSet(identity.SystemType(TestContainsBaseSetAndSystemTypeSet))
	assert.True(t, sysType.ContainsSystemTypeSet())

	coll := node.NewCollection([]*node.Node{base, sysType}, false)
	assert.True(t, coll.ContainsBaseSet())
	assert.True(t, coll.ContainsSystemTypeSet())
}

// TestDistributeRunCondition_OneIndependentCopyPerLeaf verifies property
// §8: "distributive_run_if(c) on a Collection results in exactly one copy
// of c on each transitive non-Collection descendant leaf."
func TestDistributeRunCondition_OneIndependentCopyPerLeaf(t *testing.T) {
	a := node.NewSystem(stubWork{name: "a"})
	b := node.NewSystem(stubWork{name: "b"})
	inner := node.NewCollection([]*node.Node{b}, false)
	top := node.NewCollection([]*node.Node{a, inner}, false)

	copies := 0
	cond := stubCondition{stubWork: stubWork{name: "alive", send: true}, result: true, copies: &copies}

	top.DistributeRunCondition(cond)

	require.Len(t, a.Conditions(), 1)
	require.Len(t, b.Conditions(), 1)
	assert.Empty(t, top.Conditions())
	assert.Equal(t, 2, copies)
}
