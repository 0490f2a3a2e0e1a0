package handlers

import (
	"fmt"
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/eventbus"
	"carousel/internal/ui/state"
)

// EventHandler handles domain events forwarded from the bus and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			log.Printf("%s: %v", e.Message, e.Err)
		}
		h.state.SetStatus(e.Message, true)

	case eventbus.ConfigSavedEvent:
		name := filepath.Base(e.Path)
		if h.state.StatusMessage != "" && !h.state.StatusIsError {
			// Keep the message of the change that caused the save
			h.state.SetStatus(fmt.Sprintf("%s · saved %s", h.state.StatusMessage, name), false)
			return nil
		}
		h.state.SetStatus(fmt.Sprintf("Saved %s", name), false)
	}

	return nil
}
