package input

import (
	"carousel/internal/carousel"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Carousel *carousel.Carousel
}

// CurrentIndex returns the index of the page in view
func (c *ModelContext) CurrentIndex() int {
	if c.Carousel == nil {
		return 0
	}
	return c.Carousel.Snapshot().CurrentIndex
}

// ItemCount returns the number of slides
func (c *ModelContext) ItemCount() int {
	if c.Carousel == nil {
		return 0
	}
	return c.Carousel.Snapshot().ItemCount
}

// Looping reports whether navigation wraps around
func (c *ModelContext) Looping() bool {
	if c.Carousel == nil {
		return false
	}
	m := c.Carousel.Snapshot().Mode
	return m != nil && m.Looping()
}
