package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectJumpCommitsOnVisibility(t *testing.T) {
	f := newFixture(5, Stop{}).mount()

	f.c.ScrollToIndex(3)

	target, ok := f.container.lastScroll()
	require.True(t, ok)
	assert.Equal(t, 30, target)
	assert.Equal(t, 0, f.c.Snapshot().CurrentIndex, "index follows visibility, not the command")

	f.container.settle()
	f.c.HandleScroll()
	f.observer.cross(3, true)

	assert.Equal(t, 3, f.c.Snapshot().CurrentIndex)
	assert.True(t, f.items[3].Active())
	assert.False(t, f.items[0].Active())
}

func TestNextWrapsToStartUnderLoop(t *testing.T) {
	f := newFixture(4, Loop{}).mount()
	f.c.SetIndex(3)
	f.scrollTo(30)

	f.c.ScrollNext()

	target, _ := f.container.lastScroll()
	assert.Equal(t, 0, target)
	assert.Equal(t, 0, f.c.Snapshot().CurrentIndex)
}

func TestPrevWrapsToEndUnderLoop(t *testing.T) {
	f := newFixture(4, Loop{}).mount()

	f.c.ScrollPrev()

	target, _ := f.container.lastScroll()
	assert.Equal(t, 39, target)
	assert.Equal(t, 3, f.c.Snapshot().CurrentIndex)

	f.container.settle()
	f.c.HandleScroll()
	assert.Equal(t, EdgeEnd, f.c.Snapshot().Edge)
}

func TestAdjacentScrollUsesPhysicalOffset(t *testing.T) {
	f := newFixture(5, Stop{}).mount()
	// the user dragged half a page without the index moving yet
	f.scrollTo(15)

	f.c.ScrollNext()

	target, _ := f.container.lastScroll()
	assert.Equal(t, 25, target)
	assert.Equal(t, 1, f.c.Snapshot().CurrentIndex)
}

func TestStopModeControls(t *testing.T) {
	f := newFixture(4, Stop{}).mount()

	s := f.c.Snapshot()
	assert.Equal(t, EdgeStart, s.Edge)
	assert.True(t, s.PrevDisabled())
	assert.False(t, s.NextDisabled())

	for i := 0; i < 3; i++ {
		f.c.ScrollNext()
		f.container.settle()
		f.c.HandleScroll()
	}

	s = f.c.Snapshot()
	assert.Equal(t, 3, s.CurrentIndex)
	assert.Equal(t, EdgeEnd, s.Edge)
	assert.False(t, s.PrevDisabled())
	assert.True(t, s.NextDisabled())
}

func TestLoopControlsNeverDisabled(t *testing.T) {
	f := newFixture(4, Loop{}).mount()
	for _, offset := range []int{0, 10, 30} {
		f.scrollTo(offset)
		s := f.c.Snapshot()
		assert.False(t, s.PrevDisabled(), "offset %d", offset)
		assert.False(t, s.NextDisabled(), "offset %d", offset)
	}
}

func TestCommandsWithoutContainerAreNoops(t *testing.T) {
	f := newFixture(3, Loop{})

	f.c.ScrollToIndex(2)
	f.c.ScrollNext()
	f.c.HandleScroll()
	assert.Empty(t, f.container.scrolls)
	assert.Equal(t, 1, f.c.Snapshot().CurrentIndex, "the logical step still happens")

	f.mount()
	f.c.Unmount()
	f.c.ScrollNext()
	assert.Empty(t, f.container.scrolls)
	assert.False(t, f.c.Mounted())
}

func TestZeroItemsDegradeGracefully(t *testing.T) {
	f := newFixture(0, Loop{Auto: true}).mount()

	f.c.ScrollNext()
	f.c.ScrollPrev()
	f.c.ScrollToIndex(0)

	assert.Empty(t, f.container.scrolls)
	assert.Empty(t, f.observer.observations)
	s := f.c.Snapshot()
	assert.Equal(t, 0, s.ItemCount)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.False(t, s.IsActive(0))
}

func TestOutOfRangeIndexIsClamped(t *testing.T) {
	f := newFixture(5, Stop{}).mount()

	f.c.ScrollToIndex(9)
	target, _ := f.container.lastScroll()
	assert.Equal(t, 40, target)

	f.c.ScrollToIndex(-3)
	target, _ = f.container.lastScroll()
	assert.Equal(t, 0, target)

	f.c.SetIndex(12)
	assert.Equal(t, 4, f.c.Snapshot().CurrentIndex)
}

func TestItemsObservedOnceMounted(t *testing.T) {
	f := newFixture(3, Stop{})
	assert.Empty(t, f.observer.observations, "nothing to observe against before mount")

	f.mount()
	live := f.observer.live()
	require.Len(t, live, 3)
	for _, o := range live {
		assert.Equal(t, DefaultThreshold, o.opts.Threshold)
		assert.Equal(t, 0, o.opts.Margin)
	}
	for _, item := range f.items {
		assert.True(t, item.Observed())
	}
}

func TestItemAddedAfterMountIsObserved(t *testing.T) {
	f := newFixture(2, Stop{}).mount()
	f.c.Configure(Options{ItemCount: 3, Mode: Stop{}})

	item := f.c.AddItem(2, fakeElement(2))
	require.True(t, item.Observed())

	f.observer.cross(2, true)
	assert.Equal(t, 2, f.c.Snapshot().CurrentIndex)
}

func TestUnmountReleasesObservations(t *testing.T) {
	f := newFixture(3, Stop{}).mount()
	f.c.Unmount()

	assert.Empty(t, f.observer.live())

	f.observer.cross(2, true)
	assert.Equal(t, 0, f.c.Snapshot().CurrentIndex, "late callbacks against a released container are dropped")

	f.mount()
	assert.Len(t, f.observer.live(), 3, "remount re-establishes observation")
}

func TestItemDisposeReleasesObservation(t *testing.T) {
	f := newFixture(3, Stop{}).mount()
	f.items[1].Dispose()
	f.items[1].Dispose()

	assert.False(t, f.items[1].Observed())
	assert.Len(t, f.observer.live(), 2)

	f.observer.cross(1, true)
	assert.Equal(t, 0, f.c.Snapshot().CurrentIndex)
}

func TestVisibilityLastCrossingWins(t *testing.T) {
	f := newFixture(5, Loop{}).mount()

	f.observer.cross(2, true)
	f.observer.cross(4, true)
	f.observer.cross(1, false)

	assert.Equal(t, 4, f.c.Snapshot().CurrentIndex)
}

func TestVisibilityCorrectsDrift(t *testing.T) {
	f := newFixture(5, Stop{}).mount()
	f.c.ScrollNext()
	f.c.ScrollNext()
	require.Equal(t, 2, f.c.Snapshot().CurrentIndex)

	// the user flicked back to the first page before the animation finished
	f.scrollTo(0)
	f.observer.cross(0, true)

	s := f.c.Snapshot()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, EdgeStart, s.Edge)
}

func TestItemOutsideCountIsNotObserved(t *testing.T) {
	f := newFixture(2, Stop{}).mount()
	item := f.c.AddItem(5, fakeElement(5))
	assert.False(t, item.Observed())
	assert.False(t, item.Active())
}

func TestConfigureClampsIndexAndFollowsCount(t *testing.T) {
	f := newFixture(5, Loop{}).mount()
	f.c.SetIndex(4)

	f.c.Configure(Options{ItemCount: 3})

	s := f.c.Snapshot()
	assert.Equal(t, 3, s.ItemCount)
	assert.Equal(t, 2, s.CurrentIndex)
	assert.IsType(t, Loop{}, s.Mode, "mode is kept when not re-supplied")
	assert.Len(t, f.observer.live(), 3)
	assert.False(t, f.items[4].Observed())
}

func TestSnapshotActionsAreBound(t *testing.T) {
	f := newFixture(4, Stop{}).mount()

	f.c.Snapshot().ScrollNext()
	assert.Equal(t, 1, f.c.Snapshot().CurrentIndex)

	f.c.Snapshot().ScrollPrev()
	assert.Equal(t, 0, f.c.Snapshot().CurrentIndex)

	f.c.Snapshot().SetIndex(2)
	assert.Equal(t, 2, f.c.Snapshot().CurrentIndex)

	f.c.Snapshot().ScrollToIndex(3)
	target, _ := f.container.lastScroll()
	assert.Equal(t, 30, target)

	f.container.offset = 30
	f.c.Snapshot().HandleScroll()
	assert.Equal(t, EdgeEnd, f.c.Snapshot().Edge)
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	f := newFixture(3, Loop{}).mount()

	var seen []int
	unsubscribe := f.c.Subscribe(func(s Snapshot) { seen = append(seen, s.CurrentIndex) })

	f.c.ScrollNext()
	f.c.HandleScroll()
	f.c.HandleScroll()
	f.c.ScrollNext()
	unsubscribe()
	f.c.ScrollNext()

	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestDisposeIsFinal(t *testing.T) {
	f := newFixture(3, Loop{Auto: true}).mount()
	require.True(t, f.c.AutoAdvancing())

	f.c.Dispose()
	f.c.Dispose()

	assert.False(t, f.c.Mounted())
	assert.False(t, f.c.AutoAdvancing())
	assert.Empty(t, f.observer.live())
	assert.Nil(t, f.c.Mount(f.container))

	f.c.ScrollNext()
	assert.Empty(t, f.container.scrolls)
}

func TestRemountReleasesPreviousHandle(t *testing.T) {
	f := newFixture(2, Stop{})
	first := f.c.Mount(f.container)
	second := f.c.Mount(newFakeContainer(2, 10))

	_, ok := first.Container()
	assert.False(t, ok)
	_, ok = second.Container()
	assert.True(t, ok)
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Len(t, f.observer.live(), 2)
}
