package carousel

import "time"

// fakeContainer records scroll commands; the offset only moves on settle
type fakeContainer struct {
	offset   int
	viewport int
	count    int
	scrolls  []int
}

func newFakeContainer(count, viewport int) *fakeContainer {
	return &fakeContainer{count: count, viewport: viewport}
}

func (f *fakeContainer) ScrollOffset() int  { return f.offset }
func (f *fakeContainer) ViewportWidth() int { return f.viewport }
func (f *fakeContainer) ScrollWidth() int   { return f.viewport * f.count }
func (f *fakeContainer) ScrollTo(offset int) {
	f.scrolls = append(f.scrolls, offset)
}

func (f *fakeContainer) lastScroll() (int, bool) {
	if len(f.scrolls) == 0 {
		return 0, false
	}
	return f.scrolls[len(f.scrolls)-1], true
}

// settle finishes the last scroll the way a browser would, clamped to the range
func (f *fakeContainer) settle() {
	target, ok := f.lastScroll()
	if !ok {
		return
	}
	max := f.ScrollWidth() - f.viewport
	if target > max {
		target = max
	}
	if target < 0 {
		target = 0
	}
	f.offset = target
}

type fakeElement int

func (e fakeElement) Bounds() (int, int) { return int(e) * 10, 10 }

type fakeObservation struct {
	el           Element
	opts         ObserveOptions
	notify       func([]Crossing)
	disconnected bool
}

type fakeObserver struct {
	observations []*fakeObservation
}

func (f *fakeObserver) Observe(root Container, el Element, opts ObserveOptions, notify func([]Crossing)) func() {
	o := &fakeObservation{el: el, opts: opts, notify: notify}
	f.observations = append(f.observations, o)
	return func() { o.disconnected = true }
}

func (f *fakeObserver) live() []*fakeObservation {
	var out []*fakeObservation
	for _, o := range f.observations {
		if !o.disconnected {
			out = append(out, o)
		}
	}
	return out
}

// cross delivers a crossing for the element at index, like a late platform
// callback would, regardless of whether the observation was disconnected
func (f *fakeObserver) cross(index int, intersecting bool) {
	for _, o := range f.observations {
		if o.el == fakeElement(index) {
			o.notify([]Crossing{{Intersecting: intersecting, Ratio: 1}})
		}
	}
}

type fakeTick struct {
	d         time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

type fakeTimer struct {
	ticks []*fakeTick
}

func (f *fakeTimer) AfterFunc(d time.Duration, fn func()) func() {
	t := &fakeTick{d: d, fn: fn}
	f.ticks = append(f.ticks, t)
	return func() { t.cancelled = true }
}

func (f *fakeTimer) pending() []*fakeTick {
	var out []*fakeTick
	for _, t := range f.ticks {
		if !t.cancelled && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// fire runs every pending tick once
func (f *fakeTimer) fire() {
	for _, t := range f.pending() {
		t.fired = true
		t.fn()
	}
}

type fixture struct {
	c         *Carousel
	container *fakeContainer
	observer  *fakeObserver
	timer     *fakeTimer
	items     []*Item
}

func newFixture(count int, mode Mode) *fixture {
	f := &fixture{
		container: newFakeContainer(count, 10),
		observer:  &fakeObserver{},
		timer:     &fakeTimer{},
	}
	f.c = New(Options{ItemCount: count, Mode: mode}, Host{Observer: f.observer, Timer: f.timer})
	for i := 0; i < count; i++ {
		f.items = append(f.items, f.c.AddItem(i, fakeElement(i)))
	}
	return f
}

func (f *fixture) mount() *fixture {
	f.c.Mount(f.container)
	return f
}

// scrollTo moves the container as a user would and reports progress
func (f *fixture) scrollTo(offset int) {
	f.container.offset = offset
	f.c.HandleScroll()
}
