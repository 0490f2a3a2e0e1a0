package strip

import (
	"carousel/internal/carousel"
)

// scrollSource is implemented by roots that report scroll progress
type scrollSource interface {
	OnScroll(fn func()) (remove func())
}

type observation struct {
	root   carousel.Container
	el     carousel.Element
	opts   carousel.ObserveOptions
	notify func([]carousel.Crossing)

	known   bool
	above   bool
	pending []carousel.Crossing
	remove  func()
	live    bool
}

// Observer is the terminal visibility primitive. An element is intersecting
// while at least Threshold of its width lies inside the root's viewport.
// Crossings are queued and delivered together on the next scheduler turn.
type Observer struct {
	sched       *Scheduler
	obs         []*observation
	flushQueued bool
}

var _ carousel.VisibilityObserver = (*Observer)(nil)

// NewObserver creates an observer that flushes on sched
func NewObserver(sched *Scheduler) *Observer {
	return &Observer{sched: sched}
}

// Observe starts watching el. The initial state is always reported.
func (o *Observer) Observe(root carousel.Container, el carousel.Element, opts carousel.ObserveOptions, notify func([]carousel.Crossing)) func() {
	ob := &observation{root: root, el: el, opts: opts, notify: notify, live: true}
	o.obs = append(o.obs, ob)
	if src, ok := root.(scrollSource); ok {
		ob.remove = src.OnScroll(func() { o.check(ob) })
	}
	o.check(ob)
	return func() { o.disconnect(ob) }
}

// Observed returns the number of live observations
func (o *Observer) Observed() int { return len(o.obs) }

// Ratio is the visible fraction of el inside root, with the root widened by margin on both sides
func Ratio(root carousel.Container, el carousel.Element, margin int) float64 {
	left, width := el.Bounds()
	if width <= 0 {
		return 0
	}
	viewLeft := root.ScrollOffset() - margin
	viewRight := root.ScrollOffset() + root.ViewportWidth() + margin
	overlap := min(left+width, viewRight) - max(left, viewLeft)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(width)
}

func (o *Observer) check(ob *observation) {
	if !ob.live {
		return
	}
	ratio := Ratio(ob.root, ob.el, ob.opts.Margin)
	above := ratio > 0 && ratio >= ob.opts.Threshold
	if ob.known && above == ob.above {
		return
	}
	ob.known = true
	ob.above = above
	ob.pending = append(ob.pending, carousel.Crossing{Intersecting: above, Ratio: ratio})
	o.scheduleFlush()
}

func (o *Observer) scheduleFlush() {
	if o.flushQueued || o.sched == nil {
		return
	}
	o.flushQueued = true
	o.sched.AfterFunc(0, o.flush)
}

func (o *Observer) flush() {
	o.flushQueued = false
	for _, ob := range append([]*observation(nil), o.obs...) {
		if !ob.live || len(ob.pending) == 0 {
			continue
		}
		batch := ob.pending
		ob.pending = nil
		ob.notify(batch)
	}
}

func (o *Observer) disconnect(ob *observation) {
	if !ob.live {
		return
	}
	ob.live = false
	ob.pending = nil
	if ob.remove != nil {
		ob.remove()
	}
	for i, x := range o.obs {
		if x == ob {
			o.obs = append(o.obs[:i:i], o.obs[i+1:]...)
			break
		}
	}
}
