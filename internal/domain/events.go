package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIndexChanged  EventType = "IndexChanged"
	EventEdgeChanged   EventType = "EdgeChanged"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventConfigChanged EventType = "ConfigChanged"
	EventSlideCopied   EventType = "SlideCopied"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IndexChangedEvent is emitted when the current slide changes
type IndexChangedEvent struct {
	From  int
	To    int
	Count int
}

func (e IndexChangedEvent) Type() EventType { return EventIndexChanged }

// EdgeChangedEvent is emitted when the strip reaches or leaves a boundary
type EdgeChangedEvent struct {
	Edge string
}

func (e EdgeChangedEvent) Type() EventType { return EventEdgeChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Slides int
	Mode   string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a setting changed in the UI and needs to be saved
type ConfigChangedEvent struct {
	Mode string
	Auto bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// SlideCopiedEvent is emitted after a slide was copied to the clipboard
type SlideCopiedEvent struct {
	Index int
	Title string
}

func (e SlideCopiedEvent) Type() EventType { return EventSlideCopied }
