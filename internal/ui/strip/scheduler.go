package strip

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg delivers a scheduled callback back into the Update loop
type TickMsg struct {
	ID int
}

// Scheduler turns one-shot timers into tea commands.
// Callbacks always run inside Update, so everything they touch stays single-threaded.
type Scheduler struct {
	nextID  int
	pending map[int]func()
	queued  []tea.Cmd
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[int]func())}
}

// AfterFunc queues fn to run after d. The returned func cancels it.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn

	if d <= 0 {
		s.queued = append(s.queued, func() tea.Msg { return TickMsg{ID: id} })
	} else {
		s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg { return TickMsg{ID: id} }))
	}

	return func() { delete(s.pending, id) }
}

// Handle runs the callback for msg. It reports false for cancelled or unknown ids.
func (s *Scheduler) Handle(msg TickMsg) bool {
	fn, ok := s.pending[msg.ID]
	if !ok {
		return false
	}
	delete(s.pending, msg.ID)
	fn()
	return true
}

// Drain returns the commands queued since the last call
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of callbacks waiting to run
func (s *Scheduler) Pending() int { return len(s.pending) }
