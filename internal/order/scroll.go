package order

import "time"

// ScrollCooldown is how long block moves stay suspended after the view
// auto-scrolls during a drag.
const ScrollCooldown = 500 * time.Millisecond

// EdgeScroll tells a UI which way to scroll when the pointer is dragged near
// the edge of a view of height rows. It returns -1 within margin rows of the
// top, +1 within margin rows of the bottom, and 0 elsewhere.
func EdgeScroll(y, height, margin int) int {
	if height <= 0 {
		return 0
	}
	switch {
	case y >= height-margin:
		return 1
	case y < margin:
		return -1
	default:
		return 0
	}
}
