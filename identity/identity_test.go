package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goschedule/sysgraph/identity"
)

func sampleSystemA() {}
func sampleSystemB() {}

// TestSystemType_EqualsAcrossCalls verifies two lifts of the same function
// compare and hash equal, while different functions are disjoint.
func TestSystemType_EqualsAcrossCalls(t *testing.T) {
	a1 := identity.SystemType(sampleSystemA)
	a2 := identity.SystemType(sampleSystemA)
	b := identity.SystemType(sampleSystemB)

	assert.True(t, a1.Equal(a2))
	assert.Equal(t, a1.Hash(), a2.Hash())
	assert.False(t, a1.Equal(b))
	assert.True(t, a1.IsSystemType())
	assert.False(t, a1.IsAnonymous())
	assert.False(t, a1.IsBase())
}

// TestSystemType_PanicsOnNil verifies the programmer-error panic path for
// a nil value and a nil function.
func TestSystemType_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { identity.SystemType(nil) })

	var nilFn func()
	assert.Panics(t, func() { identity.SystemType(nilFn) })
}

// TestAnonymous_UniqueAndCloneStable verifies each NewAnonymous call mints
// a distinct identifier, and Clone preserves the identifier.
func TestAnonymous_UniqueAndCloneStable(t *testing.T) {
	x := identity.NewAnonymous()
	y := identity.NewAnonymous()

	assert.False(t, x.Equal(y))
	assert.True(t, x.Equal(x.Clone()))
	assert.True(t, x.IsAnonymous())
	assert.False(t, x.IsBase())
}

// TestNamed_EqualityDelegatesToLabel verifies named identities compare via
// their underlying comparable label type.
func TestNamed_EqualityDelegatesToLabel(t *testing.T) {
	type Phase string

	s1 := identity.NewNamed(Phase("update"), false)
	s2 := identity.NewNamed(Phase("update"), false)
	s3 := identity.NewNamed(Phase("render"), false)

	require.True(t, s1.Equal(s2))
	assert.Equal(t, s1.Hash(), s2.Hash())
	assert.False(t, s1.Equal(s3))
	assert.False(t, s1.IsSystemType())
	assert.False(t, s1.IsAnonymous())

	base := identity.NewNamed(Phase("physics"), true)
	assert.True(t, base.IsBase())
}

// TestNamed_CrossVariantNeverEqual verifies variants never collide even if
// their internal representations coincidentally overlap.
func TestNamed_CrossVariantNeverEqual(t *testing.T) {
	named := identity.NewNamed("x", false)
	anon := identity.NewAnonymous()
	sys := identity.SystemType(sampleSystemA)

	assert.False(t, named.Equal(anon))
	assert.False(t, named.Equal(sys))
	assert.False(t, anon.Equal(sys))
}
