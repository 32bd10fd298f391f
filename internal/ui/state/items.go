package state

import "github.com/verse-mate/versemate-tui/internal/picker"

// CloneItems produces a shallow copy of the provided picker items.
func CloneItems(items []picker.Item) []picker.Item {
	dup := make([]picker.Item, len(items))
	copy(dup, items)
	return dup
}
