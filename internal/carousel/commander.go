package carousel

// Commander is the only component that issues physical scroll commands.
// Commands are fire-and-forget; reconciliation happens later through
// scroll progress and visibility notifications.
type Commander struct {
	handle *Handle
	count  int
	mode   Mode
}

// NewCommander creates a commander with no container attached
func NewCommander(count int, mode Mode) *Commander {
	return &Commander{count: count, mode: mode}
}

// Attach routes subsequent commands through h
func (c *Commander) Attach(h *Handle) { c.handle = h }

// Detach drops the handle; commands become no-ops
func (c *Commander) Detach() { c.handle = nil }

// ScrollToIndex scrolls so item i fills the viewport.
// It returns the target offset and whether a command was issued.
func (c *Commander) ScrollToIndex(i int) (int, bool) {
	container, ok := c.container()
	if !ok {
		return 0, false
	}
	target := i * container.ViewportWidth()
	container.ScrollTo(target)
	return target, true
}

// ScrollAdjacent scrolls one page in dir relative to the physical offset.
// fromIndex is the logical index before advancing and only decides whether
// a loop boundary is being crossed.
func (c *Commander) ScrollAdjacent(dir Direction, fromIndex int) (int, bool) {
	container, ok := c.container()
	if !ok {
		return 0, false
	}
	width := container.ViewportWidth()
	looping := c.mode != nil && c.mode.Looping()

	var target int
	switch dir {
	case Next:
		target = container.ScrollOffset() + width
		if looping && fromIndex == c.count-1 {
			target = 0
		}
	case Prev:
		target = container.ScrollOffset() - width
		if looping && fromIndex == 0 {
			// one unit short of the full width so the host clamps to the last page
			target = width*c.count - 1
		}
	}
	container.ScrollTo(target)
	return target, true
}

func (c *Commander) container() (Container, bool) {
	if c.count == 0 {
		return nil, false
	}
	return c.handle.Container()
}

func (c *Commander) reset(count int, mode Mode) {
	c.count = count
	c.mode = mode
}
