package domain

import "strings"

// Slide is a single page of a deck
type Slide struct {
	Title string
	Body  string
}

// Text returns the slide as plain text, title first
func (s Slide) Text() string {
	if s.Title == "" {
		return strings.TrimSpace(s.Body)
	}
	if strings.TrimSpace(s.Body) == "" {
		return s.Title
	}
	return s.Title + "\n\n" + strings.TrimSpace(s.Body)
}

// Deck is an ordered collection of slides
type Deck struct {
	Name   string
	Slides []Slide
}

// Len returns the number of slides
func (d Deck) Len() int { return len(d.Slides) }

// Slide returns the slide at index i
func (d Deck) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(d.Slides) {
		return Slide{}, false
	}
	return d.Slides[i], true
}
