package ui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/pager"
	"github.com/verse-mate/versemate-tui/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "versemate.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// collectMsgs executes a command tree synchronously and returns the
// leaf messages without routing them back through the model.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestSwipePersistsPositionAfterDebounce(t *testing.T) {
	st := openTestStore(t)
	m, _ := newTestModel(Options{Store: st})
	seedMetadata(m)
	h := NewHarness(m)

	h.Send(key(tea.KeyRight))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	pos, ok, err := st.LastPosition(ctx, SurfaceChapters)
	if err != nil {
		t.Fatalf("load position: %v", err)
	}
	if !ok {
		t.Fatalf("no position persisted after debounce")
	}
	if pos.Book != 1 || pos.Chapter != 2 {
		t.Fatalf("persisted position = %+v, want Genesis 2", pos)
	}
}

func TestRapidSwipesCommitOnlyFinalPosition(t *testing.T) {
	st := openTestStore(t)
	m, _ := newTestModel(Options{Store: st})
	seedMetadata(m)

	// Two swipes before either debounce tick lands. The first tick is
	// stale by sequence and must not reach the store.
	_, cmd1 := m.Update(key(tea.KeyRight))
	_, cmd2 := m.Update(key(tea.KeyRight))
	msgs := append(collectMsgs(cmd1), collectMsgs(cmd2)...)

	h := NewHarness(m)
	for _, msg := range msgs {
		if _, ok := msg.(pager.CommitMsg); ok {
			h.Send(msg)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	pos, ok, err := st.LastPosition(ctx, SurfaceChapters)
	if err != nil || !ok {
		t.Fatalf("load position: ok=%v err=%v", ok, err)
	}
	if pos.Chapter != 3 {
		t.Fatalf("persisted chapter = %d, want only the final position 3", pos.Chapter)
	}
}

func TestTopicSwipePersistsTopicKey(t *testing.T) {
	st := openTestStore(t)
	m, _ := newTestModel(Options{Store: st})
	seedMetadata(m)
	h := NewHarness(m)

	h.Send(key(tea.KeyTab))
	h.Send(key(tea.KeyRight))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	pos, ok, err := st.LastPosition(ctx, SurfaceTopics)
	if err != nil || !ok {
		t.Fatalf("load position: ok=%v err=%v", ok, err)
	}
	if pos.Topic != "t2" {
		t.Fatalf("persisted topic = %q, want t2", pos.Topic)
	}
}

func TestBookmarkToggleRoundTrip(t *testing.T) {
	st := openTestStore(t)
	m, _ := newTestModel(Options{Store: st})
	seedMetadata(m)
	h := NewHarness(m)
	ref := catalog.ChapterRef{Book: 1, Chapter: 1}

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if !h.Model().bookmarks[ref] {
		t.Fatalf("bookmark not set after toggle")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	refs, err := st.Bookmarks(ctx)
	if err != nil || len(refs) != 1 || refs[0] != ref {
		t.Fatalf("bookmarks = %v, err = %v", refs, err)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if h.Model().bookmarks[ref] {
		t.Fatalf("bookmark still set after second toggle")
	}
	refs, err = st.Bookmarks(ctx)
	if err != nil || len(refs) != 0 {
		t.Fatalf("bookmarks after removal = %v, err = %v", refs, err)
	}
}

func TestPickerJumpDoesNotPersistPosition(t *testing.T) {
	st := openTestStore(t)
	m, _ := newTestModel(Options{Store: st})
	seedMetadata(m)
	h := NewHarness(m)

	h.Send(key(tea.KeyEnter))
	lvl := h.Model().currentLevel()
	lvl.Cursor = lvl.IndexOf("book:43")
	h.Send(key(tea.KeyEnter))
	lvl = h.Model().currentLevel()
	lvl.Cursor = lvl.IndexOf("chapter:43:3")
	h.Send(key(tea.KeyEnter))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, ok, err := st.LastPosition(ctx, SurfaceChapters); err != nil || ok {
		t.Fatalf("picker jump persisted a position: ok=%v err=%v", ok, err)
	}
}
