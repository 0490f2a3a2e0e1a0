package carousel

import (
	"log"
	"time"
)

// Timer is the host's one-shot timer primitive
type Timer interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// AutoAdvance periodically runs the same path a next click does.
// At most one timer is armed at any time.
type AutoAdvance struct {
	timer    Timer
	advance  func()
	interval time.Duration
	cancel   func()
	armed    bool
	gen      int
}

// NewAutoAdvance creates a disarmed auto-advance driving advance
func NewAutoAdvance(timer Timer, advance func()) *AutoAdvance {
	return &AutoAdvance{timer: timer, advance: advance}
}

// Configure arms or disarms according to mode. Changing the interval re-arms.
func (a *AutoAdvance) Configure(mode Mode) {
	interval, ok := autoAdvancing(mode)
	if !ok {
		a.Disarm()
		return
	}
	if a.armed && interval == a.interval {
		return
	}
	a.Disarm()
	a.interval = interval
	a.arm()
}

// Armed reports whether a tick is pending
func (a *AutoAdvance) Armed() bool { return a.armed }

// Interval returns the active period, zero when disarmed
func (a *AutoAdvance) Interval() time.Duration {
	if !a.armed {
		return 0
	}
	return a.interval
}

// Disarm cancels the pending tick
func (a *AutoAdvance) Disarm() {
	if !a.armed {
		return
	}
	a.armed = false
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	log.Printf("carousel: auto-advance disarmed")
}

func (a *AutoAdvance) arm() {
	if a.timer == nil {
		return
	}
	a.armed = true
	a.gen++
	a.schedule()
	log.Printf("carousel: auto-advance armed every %s", a.interval)
}

func (a *AutoAdvance) schedule() {
	gen := a.gen
	a.cancel = a.timer.AfterFunc(a.interval, func() { a.tick(gen) })
}

func (a *AutoAdvance) tick(gen int) {
	if !a.armed || gen != a.gen {
		return
	}
	a.advance()
	// advance may have re-armed or disarmed us
	if a.armed && gen == a.gen {
		a.schedule()
	}
}
