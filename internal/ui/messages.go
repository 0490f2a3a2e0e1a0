package ui

import (
	"carousel/internal/config"
	"carousel/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ConfigReloadedMsg carries a re-read deck file
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// clearStatusMsg clears the status bar if nothing newer was shown since
type clearStatusMsg struct {
	id int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
