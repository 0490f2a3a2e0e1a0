package parts

import (
	"carousel/internal/carousel"
	"carousel/internal/ui/strip"
)

// ItemList registers one carousel item per strip page and forwards the
// strip's scroll progress to the carousel
type ItemList struct {
	c      *carousel.Carousel
	strip  *strip.Strip
	items  []*carousel.Item
	remove func()
}

// NewItemList binds c to s
func NewItemList(c *carousel.Carousel, s *strip.Strip) *ItemList {
	l := &ItemList{c: c, strip: s}
	l.remove = s.OnScroll(l.handleScroll)
	return l
}

func (l *ItemList) handleScroll() {
	if fn := l.c.Snapshot().HandleScroll; fn != nil {
		fn()
	}
}

// Sync makes the list hold exactly count items, indexed 0..count-1
func (l *ItemList) Sync(count int) {
	if count < 0 {
		count = 0
	}
	for len(l.items) > count {
		last := l.items[len(l.items)-1]
		last.Dispose()
		l.items = l.items[:len(l.items)-1]
	}
	for i := len(l.items); i < count; i++ {
		l.items = append(l.items, l.c.AddItem(i, l.strip.Slot(i)))
	}
}

// Items returns the registered items in index order
func (l *ItemList) Items() []*carousel.Item { return l.items }

// Dispose releases every item and stops forwarding scroll progress
func (l *ItemList) Dispose() {
	for _, it := range l.items {
		it.Dispose()
	}
	l.items = nil
	if l.remove != nil {
		l.remove()
		l.remove = nil
	}
}
