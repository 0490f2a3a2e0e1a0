package parts

import (
	"fmt"

	"carousel/internal/carousel"
)

// Control is a clickable part. ZoneID names its click target.
type Control interface {
	ZoneID() string
	Disabled(s carousel.Snapshot) bool
	// Activate runs the control's action and reports whether anything was done
	Activate(s carousel.Snapshot) bool
}

// Prev steps back one item
type Prev struct{}

func (Prev) ZoneID() string { return "carousel-prev" }

func (Prev) Disabled(s carousel.Snapshot) bool { return s.PrevDisabled() }

func (p Prev) Activate(s carousel.Snapshot) bool {
	if p.Disabled(s) || s.ScrollPrev == nil {
		return false
	}
	s.ScrollPrev()
	return true
}

// Next steps forward one item
type Next struct{}

func (Next) ZoneID() string { return "carousel-next" }

func (Next) Disabled(s carousel.Snapshot) bool { return s.NextDisabled() }

func (n Next) Activate(s carousel.Snapshot) bool {
	if n.Disabled(s) || s.ScrollNext == nil {
		return false
	}
	s.ScrollNext()
	return true
}

// IndexJump scrolls straight to one item
type IndexJump struct {
	Index int
}

func (j IndexJump) ZoneID() string { return fmt.Sprintf("carousel-jump-%d", j.Index) }

func (IndexJump) Disabled(carousel.Snapshot) bool { return false }

// Active reports whether the jump target is the current item
func (j IndexJump) Active(s carousel.Snapshot) bool { return s.IsActive(j.Index) }

func (j IndexJump) Activate(s carousel.Snapshot) bool {
	if s.ScrollToIndex == nil {
		return false
	}
	s.ScrollToIndex(j.Index)
	return true
}

// Jumps returns one IndexJump per item
func Jumps(s carousel.Snapshot) []IndexJump {
	out := make([]IndexJump, s.ItemCount)
	for i := range out {
		out[i] = IndexJump{Index: i}
	}
	return out
}
