package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"carousel/internal/carousel"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
)

// DefaultFileName is the deck file looked up in the working directory
const DefaultFileName = ".carousel.toml"

// Config represents a deck and the settings used to present it
type Config struct {
	Version  int              `toml:"version" yaml:"version"`
	Title    string           `toml:"title,omitempty" yaml:"title,omitempty"`
	Carousel CarouselSettings `toml:"carousel" yaml:"carousel"`
	UI       UISettings       `toml:"ui" yaml:"ui"`
	Slides   []SlideConfig    `toml:"slides" yaml:"slides"`
}

// CarouselSettings configures the paging behavior
type CarouselSettings struct {
	Mode        string  `toml:"mode" yaml:"mode"`
	Auto        bool    `toml:"auto" yaml:"auto"`
	IntervalMs  int     `toml:"interval_ms" yaml:"interval_ms"`
	PadStart    int     `toml:"pad_start" yaml:"pad_start"`
	AnimationMs int     `toml:"animation_ms" yaml:"animation_ms"`
	Threshold   float64 `toml:"threshold" yaml:"threshold"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpFooter bool `toml:"show_help_footer" yaml:"show_help_footer"`
	ShowDots       bool `toml:"show_dots" yaml:"show_dots"`
}

// SlideConfig is one [[slides]] entry
type SlideConfig struct {
	Title string `toml:"title" yaml:"title"`
	Body  string `toml:"body" yaml:"body"`
}

// Validate checks the settings that cannot be repaired with a default
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Mode(); err != nil {
		errs = append(errs, err)
	}
	if c.Carousel.Threshold <= 0 || c.Carousel.Threshold > 1 {
		errs = append(errs, fmt.Errorf("threshold %v out of range (0, 1]", c.Carousel.Threshold))
	}
	if c.Carousel.PadStart < 0 {
		errs = append(errs, fmt.Errorf("pad_start %d must not be negative", c.Carousel.PadStart))
	}
	if c.Carousel.AnimationMs < 0 {
		errs = append(errs, fmt.Errorf("animation_ms %d must not be negative", c.Carousel.AnimationMs))
	}
	return errors.Join(errs...)
}

// Mode returns the carousel mode described by the settings
func (c *Config) Mode() (carousel.Mode, error) {
	return carousel.ParseMode(c.Carousel.Mode, c.Carousel.Auto, c.Carousel.IntervalMs)
}

// Animation returns the scroll animation duration
func (c *Config) Animation() time.Duration {
	return time.Duration(c.Carousel.AnimationMs) * time.Millisecond
}

// Deck converts the configured slides into the domain model
func (c *Config) Deck() domain.Deck {
	deck := domain.Deck{Name: c.Title, Slides: make([]domain.Slide, 0, len(c.Slides))}
	for _, s := range c.Slides {
		deck.Slides = append(deck.Slides, domain.Slide{Title: s.Title, Body: s.Body})
	}
	return deck
}

// Clone returns a deep copy of c
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Slides = append([]SlideConfig(nil), c.Slides...)
	return &out
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to path
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string { return cs.filePath }

// Load loads the bound file, falling back to the default deck when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded("", cfg)
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the bound file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	codec, err := codecFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{Carousel: defaultCarousel(), UI: defaultUI()}
	if err := codec.decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	codec, err := codecFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := codec.encode(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Path:   path,
		Slides: len(cfg.Slides),
		Mode:   cfg.Carousel.Mode,
	})
}

func defaultCarousel() CarouselSettings {
	return CarouselSettings{
		Mode:        "loop",
		IntervalMs:  int(carousel.DefaultInterval / time.Millisecond),
		PadStart:    2,
		AnimationMs: 300,
		Threshold:   carousel.DefaultThreshold,
	}
}

func defaultUI() UISettings {
	return UISettings{ShowHelpFooter: true, ShowDots: true}
}

// DefaultConfig returns the welcome deck shown when no file exists
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Title:    "carousel",
		Carousel: defaultCarousel(),
		UI:       defaultUI(),
		Slides: []SlideConfig{
			{
				Title: "Welcome",
				Body:  "Use ← and → (or h and l) to move between slides.\nThe strip wraps around in loop mode.",
			},
			{
				Title: "Jumping",
				Body:  "Press 1-9 or click a dot to jump straight to a slide.\nPress : to type a slide number.",
			},
			{
				Title: "Your own deck",
				Body:  "Write a " + DefaultFileName + " file with [[slides]] entries.\nEdits are picked up while the viewer runs.",
			},
		},
	}
}
