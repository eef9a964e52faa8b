package react_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxludovicohofer/act-by-belief/react"
)

// a belief never influences itself, even when asked to
func TestSelfLoopRejected(t *testing.T) {
	calls := 0
	b := react.New(func(s *react.Signal) int {
		calls++
		return react.SensedOr(s, 0)
	})

	b.AddInfluence(b)
	b.Sense(1)

	// construction plus one sense, no echo through a self edge
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, b.Value())
}

// reading a target twice in one pass registers a single influence
func TestTrackingIsIdempotent(t *testing.T) {
	src := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 1)
	})

	dstCalls := 0
	dst := react.New(func(s *react.Signal) int {
		dstCalls++
		return react.Get(s, src) + react.Get(s, src)
	})
	dstCalls = 0

	src.Sense(5)
	assert.Equal(t, 1, dstCalls)
	assert.Equal(t, 10, dst.Value())

	// one removal severs the edge completely
	dst.RemoveInfluence(src)
	src.Sense(6)
	assert.Equal(t, 1, dstCalls)
}

// declared influences recompute the dependent without ever being read
func TestAddInfluenceIsDeclarative(t *testing.T) {
	src := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 0)
	})

	calls := 0
	dst := react.New(func(s *react.Signal) string {
		calls++
		return react.SensedOr(s, "idle")
	})
	dst.AddInfluence(src)

	src.Sense(3)
	assert.Equal(t, 2, calls)
}

// removing an influence stops propagation while both sides stay alive
func TestRemoveInfluence(t *testing.T) {
	src := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 1)
	})

	dstCalls := 0
	dst := react.New(func(s *react.Signal) int {
		dstCalls++
		return react.Get(s, src)
	})
	dstCalls = 0

	dst.RemoveInfluence(src)
	src.Sense(9)
	assert.Equal(t, 0, dstCalls)
	assert.Equal(t, 9, src.Value())
	assert.Equal(t, 1, dst.Value())

	// removing an absent edge is a no-op
	dst.RemoveInfluence(src)
	src.Sense(10)
	assert.Equal(t, 0, dstCalls)
}

// edges stay live even after a later evaluation stops reading them
func TestEdgesAreNeverPruned(t *testing.T) {
	useFirst := react.New(func(s *react.Signal) bool {
		return react.SensedOr(s, true)
	})
	first := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 1)
	})
	second := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 100)
	})

	calls := 0
	pick := react.New(func(s *react.Signal) int {
		calls++
		if react.Get(s, useFirst) {
			return react.Get(s, first)
		}
		return react.Get(s, second)
	})
	require.Equal(t, 1, pick.Value())

	useFirst.Sense(false)
	require.Equal(t, 100, pick.Value())
	calls = 0

	// the branch no longer reads first, but its edge still fires
	first.Sense(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 100, pick.Value())
}

// teardown severs both directions and recomputes survivors within the call
func TestTeardownLaw(t *testing.T) {
	x := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 5)
	})

	yCalls := 0
	y := react.New(func(s *react.Signal) int {
		yCalls++
		return react.Get(s, x) * 2
	})
	require.Equal(t, 10, y.Value())
	yCalls = 0

	x.Die()
	assert.Equal(t, 1, yCalls)

	// x is gone: sensing it never again affects y
	x.Sense(50)
	assert.Equal(t, 1, yCalls)
	assert.Equal(t, 10, y.Value())
}

// a dead belief also unsubscribes from everything upstream
func TestDieUnsubscribesUpstream(t *testing.T) {
	w := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 1)
	})

	xCalls := 0
	x := react.New(func(s *react.Signal) int {
		xCalls++
		return react.Get(s, w)
	})
	require.Equal(t, 1, x.Value())
	xCalls = 0

	x.Die()
	w.Sense(9)
	assert.Equal(t, 0, xCalls)
	assert.Equal(t, 1, x.Value())
}

// a dying belief forces each current subscriber to recompute exactly once
func TestDieRecomputesEachSubscriberOnce(t *testing.T) {
	x := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 5)
	})

	aCalls, bCalls := 0, 0
	react.New(func(s *react.Signal) int {
		aCalls++
		return react.Get(s, x)
	})
	react.New(func(s *react.Signal) int {
		bCalls++
		return react.Get(s, x) + 1
	})
	aCalls, bCalls = 0, 0

	x.Die()
	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 1, bCalls)

	// dying twice changes nothing
	x.Die()
	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 1, bCalls)
}
