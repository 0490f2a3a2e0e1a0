package carousel

import (
	"log"

	"github.com/oklog/ulid/v2"
)

// Container is the host's scrollable region
type Container interface {
	// ScrollOffset is the current horizontal offset
	ScrollOffset() int
	// ViewportWidth is the visible width, one page
	ViewportWidth() int
	// ScrollWidth is the total scrollable width
	ScrollWidth() int
	// ScrollTo starts an animated scroll toward offset and returns immediately
	ScrollTo(offset int)
}

// Handle is the exclusive ownership token for a mounted container.
// A released handle (or a nil one) yields no container.
type Handle struct {
	id        ulid.ULID
	container Container
}

func acquireHandle(c Container) *Handle {
	h := &Handle{id: ulid.Make(), container: c}
	log.Printf("carousel: acquired container handle %s", h.id)
	return h
}

// ID identifies the handle in logs
func (h *Handle) ID() ulid.ULID {
	if h == nil {
		return ulid.ULID{}
	}
	return h.id
}

// Container returns the owned container while the handle is held
func (h *Handle) Container() (Container, bool) {
	if h == nil || h.container == nil {
		return nil, false
	}
	return h.container, true
}

// Release gives up the container. Releasing twice is harmless.
func (h *Handle) Release() {
	if h == nil || h.container == nil {
		return
	}
	h.container = nil
	log.Printf("carousel: released container handle %s", h.id)
}
