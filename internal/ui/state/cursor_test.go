package state

import (
	"testing"

	"github.com/verse-mate/versemate-tui/internal/picker"
)

func newTestLevel(ids ...string) *Level {
	items := make([]picker.Item, len(ids))
	for i, id := range ids {
		items[i] = picker.Item{ID: id, Label: id}
	}
	return NewLevel("test", "Test", items)
}

func TestMoveCursorUpDownWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 0
	if !l.MoveCursorUp() {
		t.Fatalf("expected movement")
	}
	if l.Cursor != 2 {
		t.Fatalf("cursor = %d, want wrap to 2", l.Cursor)
	}
	if !l.MoveCursorDown() {
		t.Fatalf("expected movement")
	}
	if l.Cursor != 0 {
		t.Fatalf("cursor = %d, want wrap to 0", l.Cursor)
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 1
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("cursor = %d", l.Cursor)
	}
	if !l.MoveCursorHome() {
		t.Fatalf("expected movement home")
	}
	if l.Cursor != 0 {
		t.Fatalf("cursor = %d", l.Cursor)
	}
	empty := newTestLevel()
	if empty.MoveCursorEnd() || empty.MoveCursorHome() {
		t.Fatalf("empty level should not move")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 0
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", l.Cursor)
	}
	if !l.MoveCursorPageDown(10) {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 4 {
		t.Fatalf("cursor = %d, want 4", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no movement past end")
	}
	if !l.MoveCursorPageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if l.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("offset = %d, want 3", l.ViewportOffset)
	}
	l.Cursor = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 0 {
		t.Fatalf("offset = %d, want 0", l.ViewportOffset)
	}
	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("cursor normalized to %d, want 0", l.Cursor)
	}
}
