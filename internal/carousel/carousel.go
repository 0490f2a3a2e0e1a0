// Package carousel implements a paged horizontal scroll container.
//
// A Carousel keeps three sources of truth in step: the logical current index
// (Tracker), the physical scroll offset of the host container (driven only by
// the Commander) and item visibility reported by the host (Reconciler).
// Consumers never touch those parts; they read a Snapshot published through
// a Broadcast and call the actions bound into it.
//
// The package is host independent. A host supplies a Container on Mount and a
// VisibilityObserver and Timer at construction. All methods must be called
// from a single goroutine, typically the UI event loop.
package carousel

import (
	"log"
	"sort"
)

// Options is the owner-supplied configuration of a carousel
type Options struct {
	ItemCount int
	Mode      Mode
	// Threshold is the visible share that makes an item current; zero means DefaultThreshold
	Threshold float64
}

// Host bundles the platform services a carousel consumes
type Host struct {
	Observer VisibilityObserver
	Timer    Timer
}

// Carousel wires the tracker, commander, reconciler, broadcast and auto-advance together
type Carousel struct {
	tracker    *Tracker
	commander  *Commander
	reconciler *Reconciler
	broadcast  *Broadcast
	auto       *AutoAdvance

	handle   *Handle
	items    map[*Item]struct{}
	disposed bool
}

// New creates an unmounted carousel
func New(opts Options, host Host) *Carousel {
	mode := opts.Mode
	if mode == nil {
		mode = Loop{}
	}
	count := opts.ItemCount
	if count < 0 {
		log.Printf("carousel: negative item count %d treated as 0", count)
		count = 0
	}

	c := &Carousel{
		tracker:   NewTracker(count, mode),
		commander: NewCommander(count, mode),
		broadcast: NewBroadcast(),
		items:     make(map[*Item]struct{}),
	}
	c.reconciler = NewReconciler(host.Observer, opts.Threshold, c.commitVisible)
	c.auto = NewAutoAdvance(host.Timer, c.ScrollNext)
	c.publish()
	return c
}

// Snapshot returns the current merged state
func (c *Carousel) Snapshot() Snapshot { return c.broadcast.Snapshot() }

// Subscribe registers fn for every state change and returns an unsubscribe func
func (c *Carousel) Subscribe(fn func(Snapshot)) func() { return c.broadcast.Subscribe(fn) }

// Mounted reports whether a container handle is held
func (c *Carousel) Mounted() bool {
	_, ok := c.handle.Container()
	return ok
}

// AutoAdvancing reports whether the auto-advance timer is armed
func (c *Carousel) AutoAdvancing() bool { return c.auto.Armed() }

// Mount takes ownership of container. Items registered earlier start being
// observed now. Mounting again releases the previous container first.
func (c *Carousel) Mount(container Container) *Handle {
	if c.disposed || container == nil {
		return nil
	}
	if c.Mounted() {
		c.Unmount()
	}
	c.handle = acquireHandle(container)
	c.commander.Attach(c.handle)
	c.observeAll()
	c.auto.Configure(c.tracker.Mode())
	c.HandleScroll()
	c.publish()
	return c.handle
}

// Unmount releases the container and everything scoped to it
func (c *Carousel) Unmount() {
	if !c.Mounted() {
		return
	}
	c.auto.Disarm()
	for item := range c.items {
		item.release()
	}
	c.commander.Detach()
	c.handle.Release()
}

// Dispose tears the carousel down. Further calls are no-ops.
func (c *Carousel) Dispose() {
	if c.disposed {
		return
	}
	c.Unmount()
	c.auto.Disarm()
	for item := range c.items {
		item.disposed = true
	}
	c.items = make(map[*Item]struct{})
	c.disposed = true
}

// Configure re-supplies count and mode. The index is clamped into the new
// range, observations follow the new range and auto-advance is re-armed.
func (c *Carousel) Configure(opts Options) {
	if c.disposed {
		return
	}
	mode := opts.Mode
	if mode == nil {
		mode = c.tracker.Mode()
	}
	count := opts.ItemCount
	if count < 0 {
		count = 0
	}
	c.tracker.reset(count, mode)
	c.commander.reset(count, mode)
	if c.Mounted() {
		c.observeAll()
		c.auto.Configure(mode)
	}
	c.HandleScroll()
	c.publish()
}

// SetIndex commits index directly, clamping out-of-range values
func (c *Carousel) SetIndex(index int) {
	if c.disposed {
		return
	}
	c.tracker.SetIndex(c.checkIndex("set index", index))
	c.publish()
}

// ScrollToIndex scrolls to item index. The index itself follows once the
// item becomes visible.
func (c *Carousel) ScrollToIndex(index int) {
	if c.disposed {
		return
	}
	c.commander.ScrollToIndex(c.checkIndex("scroll to index", index))
}

// ScrollNext advances and scrolls one page forward
func (c *Carousel) ScrollNext() { c.scrollAdjacent(Next) }

// ScrollPrev retreats and scrolls one page back
func (c *Carousel) ScrollPrev() { c.scrollAdjacent(Prev) }

func (c *Carousel) scrollAdjacent(dir Direction) {
	if c.disposed || c.tracker.Count() == 0 {
		return
	}
	from := c.tracker.Index()
	c.tracker.Advance(dir)
	c.commander.ScrollAdjacent(dir, from)
	c.publish()
}

// HandleScroll recomputes the edge from the container's current geometry.
// Hosts call it on every scroll-progress notification.
func (c *Carousel) HandleScroll() {
	container, ok := c.handle.Container()
	if !ok {
		return
	}
	c.tracker.RecomputeEdge(container.ScrollOffset(), container.ViewportWidth(), container.ScrollWidth())
	c.publish()
}

func (c *Carousel) commitVisible(index int) {
	if c.disposed {
		return
	}
	c.tracker.SetIndex(index)
	c.publish()
}

func (c *Carousel) checkIndex(op string, index int) int {
	clamped := clampIndex(index, c.tracker.Count())
	if clamped != index {
		log.Printf("carousel: %s %d out of range [0,%d), clamped to %d", op, index, c.tracker.Count(), clamped)
	}
	return clamped
}

func (c *Carousel) publish() {
	c.broadcast.Publish(Snapshot{
		ItemCount:     c.tracker.Count(),
		CurrentIndex:  c.tracker.Index(),
		Mode:          c.tracker.Mode(),
		Edge:          c.tracker.Edge(),
		SetIndex:      c.SetIndex,
		ScrollToIndex: c.ScrollToIndex,
		ScrollPrev:    c.ScrollPrev,
		ScrollNext:    c.ScrollNext,
		HandleScroll:  c.HandleScroll,
	})
}

// observeAll brings every item's observation in line with the current
// handle and item count
func (c *Carousel) observeAll() {
	items := make([]*Item, 0, len(c.items))
	for item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].index < items[j].index })
	for _, item := range items {
		item.observe()
	}
}

// Item is one pageable child. It only reports visibility upward.
type Item struct {
	c        *Carousel
	index    int
	el       Element
	obs      *Observation
	disposed bool
}

// AddItem registers the item at index rendered as el. If the carousel is
// mounted the item is observed immediately, otherwise on Mount.
func (c *Carousel) AddItem(index int, el Element) *Item {
	item := &Item{c: c, index: index, el: el}
	if c.disposed {
		item.disposed = true
		return item
	}
	c.items[item] = struct{}{}
	item.observe()
	return item
}

// Index returns the item's position
func (i *Item) Index() int { return i.index }

// Active reports whether the item is the current one
func (i *Item) Active() bool {
	if i.disposed {
		return false
	}
	return i.c.Snapshot().IsActive(i.index)
}

// Observed reports whether a visibility observation is live
func (i *Item) Observed() bool { return i.obs.Active() }

// Dispose stops observing and unregisters the item
func (i *Item) Dispose() {
	if i.disposed {
		return
	}
	i.release()
	delete(i.c.items, i)
	i.disposed = true
}

func (i *Item) observe() {
	count := i.c.tracker.Count()
	if i.index < 0 || i.index >= count {
		if i.obs.Active() || count > 0 {
			log.Printf("carousel: item %d outside [0,%d) is not observed", i.index, count)
		}
		i.release()
		return
	}
	if i.obs.Active() && i.obs.handle == i.c.handle {
		return
	}
	i.release()
	i.obs = i.c.reconciler.Observe(i.index, i.el, i.c.handle)
}

func (i *Item) release() {
	i.obs.Release()
	i.obs = nil
}
