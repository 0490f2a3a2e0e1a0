package config

import (
	"errors"
	"log"
	"sync"

	"carousel/internal/eventbus"
)

// ErrNotPersisted is returned when a setting change cannot be written
// because the deck on screen is not the one in the file.
var ErrNotPersisted = errors.New("deck file invalid; setting not saved")

// DeckStore holds the deck being presented and writes settings changed in
// the UI back to the deck file. It is safe for concurrent use.
type DeckStore struct {
	mu      sync.Mutex
	svc     ConfigService
	bus     eventbus.EventBus
	cfg     *Config
	persist bool
}

// OpenDeck loads the deck bound to svc. When the file cannot be loaded the
// default deck is presented instead and setting changes are not saved until
// a later Load succeeds, so the user's file is never overwritten.
func OpenDeck(svc ConfigService, bus eventbus.EventBus) (*DeckStore, error) {
	s := &DeckStore{svc: svc, bus: bus}
	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Failed to load %s, showing the default deck: %v", svc.Path(), err)
		s.cfg = DefaultConfig()
		return s, err
	}
	s.cfg = cfg
	s.persist = true
	return s, nil
}

// Config returns a copy of the current deck
func (s *DeckStore) Config() *Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// Persisting reports whether setting changes are written to the file
func (s *DeckStore) Persisting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist
}

// Path returns the deck file path
func (s *DeckStore) Path() string { return s.svc.Path() }

// Load re-reads the deck file. A failed load keeps the current deck.
func (s *DeckStore) Load() (*Config, error) {
	cfg, err := s.svc.Load()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.persist = true
	s.mu.Unlock()
	return cfg.Clone(), nil
}

// ApplyChange records a mode change made in the UI and saves it
func (s *DeckStore) ApplyChange(event eventbus.ConfigChangedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Carousel.Mode = event.Mode
	s.cfg.Carousel.Auto = event.Auto
	if !s.persist {
		log.Printf("Not saving %s: the file did not load", s.svc.Path())
		s.publishError("Deck file invalid; setting not saved", ErrNotPersisted)
		return ErrNotPersisted
	}
	if err := s.svc.Save(s.cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
		s.publishError("Failed to save deck", err)
		return err
	}
	return nil
}

func (s *DeckStore) publishError(msg string, err error) {
	if s.bus != nil {
		s.bus.Publish(eventbus.ErrorEvent{Message: msg, Err: err})
	}
}
