package react_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxludovicohofer/act-by-belief/react"
)

// a fresh belief derives once on construction, seeded by an empty input
func TestBeliefDerivesOnConstruction(t *testing.T) {
	calls := 0
	b := react.New(func(s *react.Signal) int {
		calls++
		return react.SensedOr(s, 42)
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 42, b.Value())
}

// sensing stores the raw input and recomputes synchronously
func TestSenseRecomputes(t *testing.T) {
	b := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 0) * 2
	})
	require.Equal(t, 0, b.Value())

	b.Sense(21)
	assert.Equal(t, 42, b.Value())

	v, ok := react.Sensed[int](b.Signal())
	assert.True(t, ok)
	assert.Equal(t, 21, v)
}

// reading through Get records an influence, so upstream changes propagate
func TestGetTracksInfluence(t *testing.T) {
	src := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 1)
	})

	dstCalls := 0
	dst := react.New(func(s *react.Signal) int {
		dstCalls++
		return react.Get(s, src) * 10
	})
	require.Equal(t, 10, dst.Value())
	require.Equal(t, 1, dstCalls)

	src.Sense(7)
	assert.Equal(t, 70, dst.Value())
	assert.Equal(t, 2, dstCalls)
}

// sensing the same effective input twice notifies subscribers at most once
func TestDedupLaw(t *testing.T) {
	src := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 0)
	})

	notified := 0
	react.New(func(s *react.Signal) int {
		notified++
		return react.Get(s, src)
	})
	notified = 0

	src.Sense(5)
	assert.Equal(t, 1, notified)
	src.Sense(5)
	assert.Equal(t, 1, notified)
}

// a derivation settling on an equal value stops the cascade right there
func TestDedupStopsCascade(t *testing.T) {
	// A -> B -> C, where B always derives the same thing
	a := react.New(func(s *react.Signal) string {
		return react.SensedOr(s, "a")
	})
	b := react.New(func(s *react.Signal) string {
		react.Get(s, a)
		return "constant"
	})

	cCalls := 0
	react.New(func(s *react.Signal) string {
		cCalls++
		return react.Get(s, b)
	})
	cCalls = 0

	a.Sense("aa")
	assert.Equal(t, 0, cCalls)
}

// slice values compare structurally, so rebuilding an equal slice is no change
func TestDedupComparesDeeply(t *testing.T) {
	src := react.New(func(s *react.Signal) []string {
		return react.SensedOr(s, []string{})
	})

	notified := 0
	react.New(func(s *react.Signal) int {
		notified++
		react.Get(s, src)
		return notified
	})
	notified = 0

	src.Sense([]string{"food", "rest"})
	assert.Equal(t, 1, notified)
	src.Sense([]string{"food", "rest"})
	assert.Equal(t, 1, notified)
}

// a delayed notifier postpones fan-out while direct reads stay fresh
func TestNotifierDefersFanOut(t *testing.T) {
	sched := react.NewManualScheduler()

	src := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 0)
	})
	src.SetNotifier(react.Debounced(sched, "src", 100*time.Millisecond))

	dstCalls := 0
	dst := react.New(func(s *react.Signal) int {
		dstCalls++
		return react.Get(s, src)
	})
	dstCalls = 0

	src.Sense(5)
	assert.Equal(t, 5, src.Value())
	assert.Equal(t, 0, dstCalls)

	sched.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, dstCalls)
	assert.Equal(t, 5, dst.Value())
}

// N rapid senses inside the window collapse to one notification, delay after
// the last one, carrying the last value
func TestDebounceLaw(t *testing.T) {
	sched := react.NewManualScheduler()

	src := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 0)
	})
	src.SetNotifier(react.Debounced(sched, "src", 100*time.Millisecond))

	dstCalls := 0
	dst := react.New(func(s *react.Signal) int {
		dstCalls++
		return react.Get(s, src)
	})
	dstCalls = 0

	src.Sense(1)
	sched.Advance(10 * time.Millisecond)
	src.Sense(2)
	sched.Advance(10 * time.Millisecond)
	src.Sense(3)
	require.Equal(t, 0, dstCalls)

	sched.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, dstCalls)

	sched.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, dstCalls)
	assert.Equal(t, 3, dst.Value())
}

// installing a reinterpret recomputes retroactively on the current input
func TestSetReinterpretRecomputes(t *testing.T) {
	b := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 10)
	})
	require.Equal(t, 10, b.Value())

	b.SetReinterpret(func(v int) int { return v * 3 })
	assert.Equal(t, 30, b.Value())

	b.Sense(2)
	assert.Equal(t, 6, b.Value())
}

// change hooks run synchronously on store, before any delayed notification
func TestOnChangeRunsBeforeNotification(t *testing.T) {
	sched := react.NewManualScheduler()

	var seen []int
	b := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 0)
	})
	b.SetNotifier(react.Debounced(sched, "b", time.Second))
	b.OnChange(func(v int) { seen = append(seen, v) })

	b.Sense(1)
	b.Sense(2)
	b.Sense(2)

	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 1, sched.Pending())
}

// a dead belief still answers Get with its last value but records no edge
func TestGetOnDeadTarget(t *testing.T) {
	src := react.New(func(s *react.Signal) int {
		return react.SensedOr(s, 0)
	})
	src.Sense(9)
	src.Die()

	dstCalls := 0
	dst := react.New(func(s *react.Signal) int {
		dstCalls++
		return react.Get(s, src)
	})
	require.Equal(t, 9, dst.Value())

	src.Sense(100)
	assert.Equal(t, 9, src.Value())
	assert.Equal(t, 9, dst.Value())
	assert.Equal(t, 1, dstCalls)
}
