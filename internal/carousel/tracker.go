package carousel

// Tracker owns the discrete current index and the edge classification.
// It never scrolls anything itself.
type Tracker struct {
	count int
	index int
	mode  Mode
	edge  Edge
}

// NewTracker creates a tracker positioned on the first item at the start edge
func NewTracker(count int, mode Mode) *Tracker {
	if count < 0 {
		count = 0
	}
	if mode == nil {
		mode = Loop{}
	}
	return &Tracker{count: count, mode: mode, edge: EdgeStart}
}

// Index returns the current index
func (t *Tracker) Index() int { return t.index }

// Count returns the number of pageable items
func (t *Tracker) Count() int { return t.count }

// Mode returns the wrap-around mode
func (t *Tracker) Mode() Mode { return t.mode }

// Edge returns the last computed edge
func (t *Tracker) Edge() Edge { return t.edge }

// SetIndex sets the current index as given. Range checks are the caller's job.
func (t *Tracker) SetIndex(i int) {
	t.index = i
}

// Advance moves one step in dir according to the mode and returns the new index
func (t *Tracker) Advance(dir Direction) int {
	if t.count == 0 {
		return t.index
	}
	last := t.count - 1
	switch dir {
	case Next:
		switch {
		case t.index < last:
			t.index++
		case t.mode.Looping():
			t.index = 0
		}
	case Prev:
		switch {
		case t.index > 0:
			t.index--
		case t.mode.Looping():
			t.index = last
		}
	}
	return t.index
}

// RecomputeEdge reclassifies the edge from the container's geometry
func (t *Tracker) RecomputeEdge(offset, viewport, scrollable int) Edge {
	t.edge = ClassifyEdge(offset, viewport, scrollable)
	return t.edge
}

// reset re-supplies count and mode, clamping the index into the new range
func (t *Tracker) reset(count int, mode Mode) {
	if count < 0 {
		count = 0
	}
	t.count = count
	t.mode = mode
	t.index = clampIndex(t.index, count)
}

// ClassifyEdge is start at offset 0, end at the maximum offset and middle otherwise.
// When both hold (nothing to scroll) the result is end.
func ClassifyEdge(offset, viewport, scrollable int) Edge {
	edge := EdgeStart
	if offset > 0 {
		edge = EdgeMiddle
	}
	if offset == scrollable-viewport {
		edge = EdgeEnd
	}
	return edge
}

func clampIndex(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
