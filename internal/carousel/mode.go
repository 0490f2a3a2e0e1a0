package carousel

import (
	"fmt"
	"strings"
	"time"
)

// DefaultInterval is the auto-advance period used when none is configured
const DefaultInterval = 2000 * time.Millisecond

// Mode governs wrap-around behavior at the two boundaries.
// It is either Stop or Loop.
type Mode interface {
	// Looping reports whether advancing past a boundary wraps to the opposite end
	Looping() bool
	String() string
	isMode()
}

// Stop saturates at the first and last item
type Stop struct{}

func (Stop) Looping() bool  { return false }
func (Stop) String() string { return "stop" }
func (Stop) isMode()        {}

// Loop wraps around at both ends and may auto-advance
type Loop struct {
	Auto     bool
	Interval time.Duration
}

func (Loop) Looping() bool { return true }

func (l Loop) String() string {
	if l.Auto {
		return fmt.Sprintf("loop(auto %s)", l.Period())
	}
	return "loop"
}

func (Loop) isMode() {}

// Period returns the configured interval, falling back to DefaultInterval
func (l Loop) Period() time.Duration {
	if l.Interval <= 0 {
		return DefaultInterval
	}
	return l.Interval
}

// ParseMode builds a Mode from its configuration form.
// auto and intervalMs are ignored for "stop".
func ParseMode(name string, auto bool, intervalMs int) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "loop":
		if intervalMs < 0 {
			return nil, fmt.Errorf("invalid interval %dms: must not be negative", intervalMs)
		}
		return Loop{Auto: auto, Interval: time.Duration(intervalMs) * time.Millisecond}, nil
	case "stop":
		return Stop{}, nil
	default:
		return nil, fmt.Errorf("unknown carousel mode %q (want \"stop\" or \"loop\")", name)
	}
}

// autoAdvancing reports whether m asks for periodic advancing
func autoAdvancing(m Mode) (time.Duration, bool) {
	l, ok := m.(Loop)
	if !ok || !l.Auto {
		return 0, false
	}
	return l.Period(), true
}

// Direction is the intent of an adjacent move
type Direction int

const (
	Prev Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Edge classifies the physical scroll offset of the container
type Edge int

const (
	EdgeStart Edge = iota
	EdgeMiddle
	EdgeEnd
)

func (e Edge) String() string {
	switch e {
	case EdgeStart:
		return "start"
	case EdgeMiddle:
		return "middle"
	case EdgeEnd:
		return "end"
	default:
		return "unknown"
	}
}
