package carousel

import "log"

// DefaultThreshold is the share of an item that must be inside the viewport
// for the item to count as visible
const DefaultThreshold = 0.8

// Element is an item's rendered node as the host lays it out
type Element interface {
	// Bounds returns the left edge and width in container coordinates
	Bounds() (left, width int)
}

// ObserveOptions configures one visibility observation
type ObserveOptions struct {
	Margin    int
	Threshold float64
}

// Crossing is one threshold-crossing notification for an observed element
type Crossing struct {
	Intersecting bool
	Ratio        float64
}

// VisibilityObserver is the host primitive reporting when an element crosses
// the threshold inside root. Notifications may arrive later and batched.
type VisibilityObserver interface {
	Observe(root Container, el Element, opts ObserveOptions, notify func([]Crossing)) (disconnect func())
}

// Reconciler feeds visibility back into the current index.
// A newly visible item wins regardless of what the index says.
type Reconciler struct {
	observer  VisibilityObserver
	threshold float64
	commit    func(index int)
}

// NewReconciler creates a reconciler committing through commit
func NewReconciler(observer VisibilityObserver, threshold float64, commit func(index int)) *Reconciler {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Reconciler{observer: observer, threshold: threshold, commit: commit}
}

// Observation is a live visibility subscription for one item
type Observation struct {
	index      int
	handle     *Handle
	disconnect func()
	released   bool
}

// Observe starts watching el for the item at index, rooted at the container
// held by h. It returns nil when there is nothing to observe against.
func (r *Reconciler) Observe(index int, el Element, h *Handle) *Observation {
	if r.observer == nil || el == nil {
		return nil
	}
	root, ok := h.Container()
	if !ok {
		return nil
	}
	o := &Observation{index: index, handle: h}
	o.disconnect = r.observer.Observe(root, el, ObserveOptions{Threshold: r.threshold}, func(entries []Crossing) {
		for _, entry := range entries {
			if !entry.Intersecting {
				continue
			}
			if o.released {
				log.Printf("carousel: dropping visibility for released item %d", o.index)
				return
			}
			r.commit(o.index)
		}
	})
	return o
}

// Release stops the observation. It is safe to call more than once and on nil.
func (o *Observation) Release() {
	if o == nil || o.released {
		return
	}
	o.released = true
	if o.disconnect != nil {
		o.disconnect()
	}
}

// Active reports whether the observation still delivers notifications
func (o *Observation) Active() bool {
	return o != nil && !o.released
}
