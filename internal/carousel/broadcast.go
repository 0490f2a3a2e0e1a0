package carousel

// Snapshot is the merged state every consumer reads from.
// The action funcs are bound to the carousel that published it.
type Snapshot struct {
	ItemCount    int
	CurrentIndex int
	Mode         Mode
	Edge         Edge

	SetIndex      func(index int)
	ScrollToIndex func(index int)
	ScrollPrev    func()
	ScrollNext    func()
	HandleScroll  func()
}

// IsActive reports whether the item at index is the current one
func (s Snapshot) IsActive(index int) bool {
	return s.ItemCount > 0 && index == s.CurrentIndex
}

// PrevDisabled reports whether a prev control should render disabled
func (s Snapshot) PrevDisabled() bool {
	return s.Mode != nil && !s.Mode.Looping() && s.Edge == EdgeStart
}

// NextDisabled reports whether a next control should render disabled
func (s Snapshot) NextDisabled() bool {
	return s.Mode != nil && !s.Mode.Looping() && s.Edge == EdgeEnd
}

func (s Snapshot) sameState(o Snapshot) bool {
	return s.ItemCount == o.ItemCount &&
		s.CurrentIndex == o.CurrentIndex &&
		s.Edge == o.Edge &&
		sameMode(s.Mode, o.Mode)
}

func sameMode(a, b Mode) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// Broadcast publishes snapshots to subscribers.
// Publishing an unchanged state is a no-op, so repeated notifications
// from the host never cascade.
type Broadcast struct {
	current     Snapshot
	published   bool
	subscribers map[int]func(Snapshot)
	nextID      int
}

// NewBroadcast creates an empty broadcast
func NewBroadcast() *Broadcast {
	return &Broadcast{subscribers: make(map[int]func(Snapshot))}
}

// Snapshot returns the last published snapshot
func (b *Broadcast) Snapshot() Snapshot { return b.current }

// Subscribe registers fn and immediately hands it the current snapshot.
// It returns an unsubscribe function.
func (b *Broadcast) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn
	if b.published {
		fn(b.current)
	}
	return func() {
		delete(b.subscribers, id)
	}
}

// Publish replaces the snapshot and notifies subscribers when state changed.
// It reports whether anything was delivered.
func (b *Broadcast) Publish(s Snapshot) bool {
	if b.published && b.current.sameState(s) {
		b.current = s
		return false
	}
	b.current = s
	b.published = true
	for _, fn := range b.subscribers {
		fn(s)
	}
	return true
}
