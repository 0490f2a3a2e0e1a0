package state

import (
	"carousel/internal/carousel"
	"carousel/internal/domain"
)

// AppState contains all the application state outside the carousel itself
type AppState struct {
	// Deck data
	Deck       domain.Deck
	ConfigPath string

	// Presentation settings
	PadStart       int
	ShowDots       bool
	ShowHelpFooter bool

	// UI state
	Width         int
	Height        int
	StatusMessage string
	StatusIsError bool
	InPagerMode   bool

	// Last published position, used to emit change events
	LastIndex int
	LastEdge  carousel.Edge
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		PadStart:       1,
		ShowDots:       true,
		ShowHelpFooter: true,
	}
}

// SetStatus shows msg in the status bar
func (s *AppState) SetStatus(msg string, isErr bool) {
	s.StatusMessage = msg
	s.StatusIsError = isErr
}

// ClearStatus empties the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// CurrentSlide returns the slide at index
func (s *AppState) CurrentSlide(index int) (domain.Slide, bool) {
	return s.Deck.Slide(index)
}
