package state

import "github.com/verse-mate/versemate-tui/internal/picker"

// Level encapsulates one picker level: its items, cursor, filter, and
// viewport offset.
type Level struct {
	ID             string
	Title          string
	Items          []picker.Item
	Full           []picker.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level from the provided items.
func NewLevel(id, title string, items []picker.Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Cursor:     -1,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems refreshes the level items, reapplying the active filter
// and preserving the viewport when possible.
func (l *Level) UpdateItems(items []picker.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
