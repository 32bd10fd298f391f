package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/backend"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/pager"
)

type feedbackCounter struct {
	count int
}

func (f *feedbackCounter) fire() {
	f.count++
}

func newTestModel(opts Options) (*Model, *feedbackCounter) {
	pager.Shared().Reset()
	counter := &feedbackCounter{}
	if opts.Feedback == nil {
		opts.Feedback = counter.fire
	}
	if opts.Width == 0 {
		opts.Width = 80
	}
	if opts.Height == 0 {
		opts.Height = 24
	}
	m := NewModel(opts)
	return m, counter
}

func seedMetadata(m *Model) {
	m.applyBackendEvent(backend.Event{Kind: backend.KindBooks, Data: backend.BookSnapshot{
		Translation: "NASB1995",
		Books: []catalog.Book{
			{ID: 1, Name: "Genesis", Chapters: 50},
			{ID: 19, Name: "Psalms", Chapters: 150},
			{ID: 43, Name: "John", Chapters: 21},
			{ID: 66, Name: "Revelation", Chapters: 22},
		},
	}})
	m.applyBackendEvent(backend.Event{Kind: backend.KindTopics, Data: backend.TopicSnapshot{
		Language:   "en",
		Categories: []string{"Faith", "Hope"},
		Topics: []catalog.Topic{
			{ID: "t1", Name: "Belief", Category: "Faith", SortOrder: 1},
			{ID: "t2", Name: "Trust", Category: "Faith", SortOrder: 2},
			{ID: "t3", Name: "Endurance", Category: "Hope", SortOrder: 1},
		},
	}})
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestSwipeAdvancesAndFiresFeedback(t *testing.T) {
	m, counter := newTestModel(Options{})
	seedMetadata(m)
	m.Update(key(tea.KeyRight))
	if got := m.chapterPager.Index(); got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}
	if counter.count != 1 {
		t.Fatalf("feedback fired %d times, want 1", counter.count)
	}
	pos := pager.Shared().Current()
	if pos.Primary != "Genesis" || pos.Secondary != "Chapter 2" {
		t.Fatalf("display = %+v", pos)
	}
}

func TestSwipeBackwardWrapsToLastChapter(t *testing.T) {
	m, _ := newTestModel(Options{})
	seedMetadata(m)
	m.Update(key(tea.KeyLeft))
	want := m.chapters.Len() - 1
	if got := m.chapterPager.Index(); got != want {
		t.Fatalf("index = %d, want wrap to %d", got, want)
	}
	pos := pager.Shared().Current()
	if pos.Primary != "Revelation" || pos.Secondary != "Chapter 22" {
		t.Fatalf("display = %+v", pos)
	}
}

func TestTabSwitchesSurface(t *testing.T) {
	m, _ := newTestModel(Options{})
	seedMetadata(m)
	m.Update(key(tea.KeyTab))
	if m.surface != SurfaceTopics {
		t.Fatalf("surface = %q", m.surface)
	}
	pos := pager.Shared().Current()
	if pos.Primary != "Belief" || pos.Secondary != "Faith" {
		t.Fatalf("display = %+v", pos)
	}
	m.Update(key(tea.KeyTab))
	if m.surface != SurfaceChapters {
		t.Fatalf("surface = %q after second tab", m.surface)
	}
}

func TestTopicSurfaceHasSmallerWindow(t *testing.T) {
	m, _ := newTestModel(Options{})
	if m.chapterPager.Size() != 7 {
		t.Fatalf("chapter window = %d, want 7", m.chapterPager.Size())
	}
	if m.topicPager.Size() != 5 {
		t.Fatalf("topic window = %d, want 5", m.topicPager.Size())
	}
}

func TestMetadataReloadReResolvesFromDomainKey(t *testing.T) {
	m, _ := newTestModel(Options{})
	seedMetadata(m)
	m.jumpToChapter(catalog.ChapterRef{Book: 43, Chapter: 1})
	before := m.chapterPager.Index()

	// Psalms shrinks to 100 chapters, shifting every later index.
	m.applyBackendEvent(backend.Event{Kind: backend.KindBooks, Data: backend.BookSnapshot{
		Translation: "NASB1995",
		Books: []catalog.Book{
			{ID: 1, Name: "Genesis", Chapters: 50},
			{ID: 19, Name: "Psalms", Chapters: 100},
			{ID: 43, Name: "John", Chapters: 21},
			{ID: 66, Name: "Revelation", Chapters: 22},
		},
	}})
	after := m.chapterPager.Index()
	if after != before-50 {
		t.Fatalf("index = %d after reload, want %d", after, before-50)
	}
	if ref, ok := m.chapters.Ref(after); !ok || ref != (catalog.ChapterRef{Book: 43, Chapter: 1}) {
		t.Fatalf("index %d resolves to %v", after, ref)
	}
}

func TestMetadataReloadFallsBackToFirstChapter(t *testing.T) {
	m, _ := newTestModel(Options{})
	seedMetadata(m)
	m.jumpToChapter(catalog.ChapterRef{Book: 66, Chapter: 22})

	m.applyBackendEvent(backend.Event{Kind: backend.KindBooks, Data: backend.BookSnapshot{
		Translation: "NASB1995",
		Books: []catalog.Book{
			{ID: 1, Name: "Genesis", Chapters: 50},
		},
	}})
	if got := m.chapterPager.Index(); got != 0 {
		t.Fatalf("index = %d, want fallback to 0", got)
	}
	if m.lastChapter != (catalog.ChapterRef{Book: 1, Chapter: 1}) {
		t.Fatalf("lastChapter = %v", m.lastChapter)
	}
}

func TestBackendErrorKeepsCatalog(t *testing.T) {
	m, _ := newTestModel(Options{})
	seedMetadata(m)
	length := m.chapters.Len()
	m.applyBackendEvent(backend.Event{Kind: backend.KindBooks, Err: errFake})
	if m.chapters.Len() != length {
		t.Fatalf("catalog length changed on error event")
	}
	if warn, _ := m.hasBackendIssue(); !warn {
		t.Fatalf("expected backend issue to be reported")
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "metadata load failed" }
