//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DeckOption is a function that configures deck creation
type DeckOption func(*deckOptions)

type deckOptions struct {
	mode       string
	auto       bool
	intervalMs int
	slides     int
	title      string
}

// WithMode sets the carousel mode ("loop" or "stop")
func WithMode(mode string) DeckOption {
	return func(opts *deckOptions) {
		opts.mode = mode
	}
}

// WithAuto enables auto-advance with the given interval
func WithAuto(intervalMs int) DeckOption {
	return func(opts *deckOptions) {
		opts.auto = true
		opts.intervalMs = intervalMs
	}
}

// WithSlides sets how many numbered slides the deck has
func WithSlides(n int) DeckOption {
	return func(opts *deckOptions) {
		opts.slides = n
	}
}

// WithTitle sets the deck title shown in the header
func WithTitle(title string) DeckOption {
	return func(opts *deckOptions) {
		opts.title = title
	}
}

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateDeck writes a deck file into the workspace and returns its path.
// Slides are titled "Slide 1", "Slide 2", ... with a matching body.
func (tf *TUITestFramework) CreateDeck(name string, options ...DeckOption) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}

	opts := &deckOptions{mode: "stop", slides: 3, title: "E2E deck", intervalMs: 2000}
	for _, opt := range options {
		opt(opts)
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(renderDeck(opts)), 0644); err != nil {
		return "", fmt.Errorf("failed to write deck: %w", err)
	}
	return path, nil
}

// RewriteDeck replaces an existing deck file in place
func (tf *TUITestFramework) RewriteDeck(path string, options ...DeckOption) error {
	opts := &deckOptions{mode: "stop", slides: 3, title: "E2E deck", intervalMs: 2000}
	for _, opt := range options {
		opt(opts)
	}
	return os.WriteFile(path, []byte(renderDeck(opts)), 0644)
}

func renderDeck(opts *deckOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "version = 1\ntitle = %q\n\n", opts.title)
	fmt.Fprintf(&b, "[carousel]\nmode = %q\nauto = %t\ninterval_ms = %d\nanimation_ms = 0\nthreshold = 0.6\npad_start = 2\n\n",
		opts.mode, opts.auto, opts.intervalMs)
	b.WriteString("[ui]\nshow_help_footer = true\nshow_dots = true\n\n")
	for i := 1; i <= opts.slides; i++ {
		fmt.Fprintf(&b, "[[slides]]\ntitle = \"Slide %d\"\nbody = \"Body of slide %d\"\n\n", i, i)
	}
	return b.String()
}
