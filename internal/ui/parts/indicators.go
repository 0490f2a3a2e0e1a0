// Package parts holds the carousel's composable consumers: the item list,
// position indicators and the prev/next and index-jump controls.
// Every part reads only the shared snapshot.
package parts

import (
	"fmt"

	"carousel/internal/carousel"
)

// FormatCount renders the one-based current position, or 0 without items,
// zero-padded to padStart digits
func FormatCount(s carousel.Snapshot, padStart int) string {
	n := s.CurrentIndex + 1
	if s.ItemCount == 0 {
		n = 0
	}
	return padNumber(n, padStart)
}

// FormatMax renders the item count zero-padded to padStart digits
func FormatMax(s carousel.Snapshot, padStart int) string {
	return padNumber(s.ItemCount, padStart)
}

func padNumber(n, width int) string {
	return fmt.Sprintf("%0*d", max(width, 1), n)
}
