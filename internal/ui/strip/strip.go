// Package strip hosts the carousel core in a terminal: a horizontally scrolled
// row of equally sized pages, its visibility observer, and the timer primitive.
// Offsets and widths are measured in terminal cells.
package strip

import (
	"log"
	"math"
	"time"

	"carousel/internal/carousel"
)

const frameInterval = time.Second / 60

// DefaultDuration is the scroll animation length
const DefaultDuration = 300 * time.Millisecond

// Option configures a Strip
type Option func(*Strip)

// WithClock sets the animation time source
func WithClock(c Clock) Option { return func(s *Strip) { s.clock = c } }

// WithDuration sets the animation length; zero jumps immediately
func WithDuration(d time.Duration) Option { return func(s *Strip) { s.duration = d } }

// WithEasing sets the animation curve
func WithEasing(f func(float64) float64) Option { return func(s *Strip) { s.ease = f } }

type listener struct {
	id int
	fn func()
}

type animation struct {
	from   int
	to     int
	start  time.Time
	cancel func()
}

// Strip is the scroll container. It implements carousel.Container.
type Strip struct {
	sched    *Scheduler
	clock    Clock
	duration time.Duration
	ease     func(float64) float64

	viewport int
	count    int
	offset   int

	anim      *animation
	listeners []listener
	nextID    int
}

var _ carousel.Container = (*Strip)(nil)

// New creates a strip that schedules its animation frames on sched
func New(sched *Scheduler, opts ...Option) *Strip {
	s := &Strip{
		sched:    sched,
		clock:    realClock{},
		duration: DefaultDuration,
		ease:     EaseInOut,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Strip) ScrollOffset() int  { return s.offset }
func (s *Strip) ViewportWidth() int { return s.viewport }
func (s *Strip) ScrollWidth() int   { return s.viewport * s.count }

// Count returns the number of pages
func (s *Strip) Count() int { return s.count }

// MaxOffset is the largest reachable offset
func (s *Strip) MaxOffset() int {
	return max(0, s.ScrollWidth()-s.viewport)
}

// Page returns the offset in pages, fractional while between pages
func (s *Strip) Page() float64 {
	if s.viewport == 0 {
		return 0
	}
	return float64(s.offset) / float64(s.viewport)
}

// Animating reports whether a programmatic scroll is in flight
func (s *Strip) Animating() bool { return s.anim != nil }

// Target returns where the strip is heading, or the current offset when idle
func (s *Strip) Target() int {
	if s.anim != nil {
		return s.anim.to
	}
	return s.offset
}

// SetDuration changes the animation length for subsequent scrolls
func (s *Strip) SetDuration(d time.Duration) { s.duration = d }

// ScrollTo animates towards offset, clamped to the scrollable range.
// A new call re-targets an in-flight animation from wherever it currently is.
func (s *Strip) ScrollTo(offset int) {
	target := s.clamp(offset)
	s.stop()
	if target == s.offset {
		return
	}
	if s.duration <= 0 || s.sched == nil {
		s.moveTo(target)
		return
	}
	s.anim = &animation{from: s.offset, to: target, start: s.clock.Now()}
	s.scheduleFrame(s.anim)
}

// ScrollBy moves the strip by delta cells immediately, like a wheel or drag.
// It cancels any programmatic animation.
func (s *Strip) ScrollBy(delta int) {
	s.stop()
	s.moveTo(s.clamp(s.offset + delta))
}

// Resize sets the viewport width, keeping the same fractional page in view
func (s *Strip) Resize(viewport int) {
	if viewport < 0 {
		viewport = 0
	}
	if viewport == s.viewport {
		return
	}

	page := s.Page()
	if s.anim != nil && s.viewport > 0 {
		// snap to where the animation was heading
		page = float64(s.anim.to) / float64(s.viewport)
	}
	s.stop()

	log.Printf("strip: resize %d -> %d cells (page %.2f)", s.viewport, viewport, page)
	s.viewport = viewport
	s.offset = s.clamp(int(math.Round(page * float64(viewport))))
	s.notify()
}

// SetCount changes the number of pages and clamps the offset
func (s *Strip) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	if count == s.count {
		return
	}
	s.count = count
	if s.anim != nil && s.anim.to > s.MaxOffset() {
		s.stop()
	}
	s.offset = s.clamp(s.offset)
	s.notify()
}

// OnScroll registers fn to run after every offset or geometry change
func (s *Strip) OnScroll(fn func()) (remove func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Slot returns the element for page index
func (s *Strip) Slot(index int) carousel.Element {
	return slot{strip: s, index: index}
}

type slot struct {
	strip *Strip
	index int
}

func (e slot) Bounds() (int, int) {
	return e.index * e.strip.viewport, e.strip.viewport
}

func (s *Strip) clamp(offset int) int {
	return min(max(offset, 0), s.MaxOffset())
}

func (s *Strip) moveTo(offset int) {
	if offset == s.offset {
		return
	}
	s.offset = offset
	s.notify()
}

func (s *Strip) notify() {
	// listeners may unsubscribe while being notified
	ls := append([]listener(nil), s.listeners...)
	for _, l := range ls {
		l.fn()
	}
}

func (s *Strip) stop() {
	if s.anim == nil {
		return
	}
	if s.anim.cancel != nil {
		s.anim.cancel()
	}
	s.anim = nil
}

func (s *Strip) scheduleFrame(a *animation) {
	a.cancel = s.sched.AfterFunc(frameInterval, func() { s.frame(a) })
}

func (s *Strip) frame(a *animation) {
	if s.anim != a {
		return
	}

	p := 1.0
	if s.duration > 0 {
		p = float64(s.clock.Now().Sub(a.start)) / float64(s.duration)
	}
	if p >= 1 {
		s.anim = nil
		s.moveTo(s.clamp(a.to))
		return
	}

	pos := a.from + int(math.Round(float64(a.to-a.from)*s.ease(p)))
	s.moveTo(s.clamp(pos))
	s.scheduleFrame(a)
}
