// Package pager implements the windowed circular pager that drives
// swipe navigation over a finite ordered catalog. A fixed odd number of
// slots (the window) renders a sliding view of the catalog; wraparound
// makes the catalog topologically a ring, so there is no boundary
// content, only ring position.
package pager

// Wrap maps any integer onto the ring [0, n). It is the single
// primitive every other position computation composes. n <= 0 yields 0
// so callers never index an empty catalog.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Center returns the center ordinal of a window of the given size.
func Center(size int) int {
	return size / 2
}

// SlotIndex computes which absolute index a slot ordinal displays, given
// the absolute index anchored at the center ordinal.
func SlotIndex(slot, centerIndex, size, n int) int {
	return Wrap(centerIndex+(slot-Center(size)), n)
}
