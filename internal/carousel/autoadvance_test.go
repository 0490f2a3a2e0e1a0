package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoAdvanceRunsTheNextPath(t *testing.T) {
	f := newFixture(3, Loop{Auto: true}).mount()

	pending := f.timer.pending()
	require.Len(t, pending, 1)
	assert.Equal(t, DefaultInterval, pending[0].d)

	f.timer.fire()
	assert.Equal(t, 1, f.c.Snapshot().CurrentIndex)
	target, ok := f.container.lastScroll()
	require.True(t, ok)
	assert.Equal(t, 10, target)
	assert.Len(t, f.timer.pending(), 1, "re-armed after each tick")

	f.timer.fire()
	f.timer.fire()
	assert.Equal(t, 0, f.c.Snapshot().CurrentIndex, "wraps like a click on next")
}

func TestAutoAdvanceOnlyInAutoLoop(t *testing.T) {
	for _, mode := range []Mode{Stop{}, Loop{}} {
		f := newFixture(3, mode).mount()
		assert.Empty(t, f.timer.pending(), "mode %s", mode)
		assert.False(t, f.c.AutoAdvancing())
	}
}

func TestAutoAdvanceWaitsForMount(t *testing.T) {
	f := newFixture(3, Loop{Auto: true})
	assert.Empty(t, f.timer.pending())

	f.mount()
	assert.Len(t, f.timer.pending(), 1)

	f.c.Unmount()
	assert.Empty(t, f.timer.pending())
}

func TestAutoAdvanceRearmsOnIntervalChange(t *testing.T) {
	f := newFixture(3, Loop{Auto: true, Interval: time.Second}).mount()
	first := f.timer.pending()
	require.Len(t, first, 1)
	assert.Equal(t, time.Second, first[0].d)

	f.c.Configure(Options{ItemCount: 3, Mode: Loop{Auto: true, Interval: time.Second}})
	assert.Same(t, first[0], f.timer.pending()[0], "same interval keeps the pending tick")

	f.c.Configure(Options{ItemCount: 3, Mode: Loop{Auto: true, Interval: 5 * time.Second}})
	assert.True(t, first[0].cancelled)
	pending := f.timer.pending()
	require.Len(t, pending, 1)
	assert.Equal(t, 5*time.Second, pending[0].d)
}

func TestAutoAdvanceDisarmsWhenLeavingLoop(t *testing.T) {
	f := newFixture(3, Loop{Auto: true}).mount()
	f.c.Configure(Options{ItemCount: 3, Mode: Stop{}})

	assert.Empty(t, f.timer.pending())
	assert.False(t, f.c.AutoAdvancing())

	f.c.Configure(Options{ItemCount: 3, Mode: Loop{Auto: false}})
	assert.Empty(t, f.timer.pending())
}

func TestAutoAdvanceIgnoresStaleTicks(t *testing.T) {
	timer := &fakeTimer{}
	calls := 0
	a := NewAutoAdvance(timer, func() { calls++ })

	a.Configure(Loop{Auto: true, Interval: time.Second})
	stale := timer.pending()[0]
	a.Disarm()

	// a host that fires a tick after cancelling it
	stale.fn()
	assert.Zero(t, calls)

	a.Configure(Loop{Auto: true, Interval: time.Second})
	stale.fn()
	assert.Zero(t, calls, "a tick from an earlier arming never advances")
	timer.fire()
	assert.Equal(t, 1, calls)
}

func TestAutoAdvanceReconfiguredFromInsideTick(t *testing.T) {
	timer := &fakeTimer{}
	var a *AutoAdvance
	a = NewAutoAdvance(timer, func() {
		a.Configure(Loop{Auto: true, Interval: 3 * time.Second})
	})
	a.Configure(Loop{Auto: true, Interval: time.Second})

	timer.fire()

	pending := timer.pending()
	require.Len(t, pending, 1, "exactly one tick armed")
	assert.Equal(t, 3*time.Second, pending[0].d)
	assert.Equal(t, 3*time.Second, a.Interval())
}
