package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/logging/events"
	"github.com/verse-mate/versemate-tui/internal/pager"
	"github.com/verse-mate/versemate-tui/internal/store"
	"github.com/verse-mate/versemate-tui/internal/ui/command"
)

const loadTimeout = 5 * time.Second

func bellFeedback() {
	os.Stderr.WriteString("\a")
}

func (m *Model) handleReaderKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return tea.Quit
	case "left", "h":
		return m.swipe(-1)
	case "right", "l":
		return m.swipe(1)
	case "up", "k":
		m.scrollBody(-1)
		return nil
	case "down", "j":
		m.scrollBody(1)
		return nil
	case "pgup":
		m.scrollBody(-m.bodyHeight())
		return nil
	case "pgdown":
		m.scrollBody(m.bodyHeight())
		return nil
	case "tab":
		m.switchSurface()
		return nil
	case "enter", "g":
		m.openPicker()
		return nil
	case "b":
		return m.toggleBookmark()
	}
	return nil
}

// swipe reports a settle one ordinal away from the rest position, the
// same event a flick on the touch surface would deliver.
func (m *Model) swipe(delta int) tea.Cmd {
	ctrl := m.activePager()
	before := ctrl.Index()
	cmd := ctrl.Select(float64(ctrl.Rest() + delta))
	if ctrl.Index() == before {
		return cmd
	}
	m.rememberCurrent()
	m.bodyScroll = 0
	load := m.loadCurrentBodyCmd()
	if load == nil {
		return cmd
	}
	if cmd == nil {
		return load
	}
	return tea.Batch(cmd, load)
}

func (m *Model) switchSurface() {
	if m.surface == SurfaceChapters {
		m.surface = SurfaceTopics
	} else {
		m.surface = SurfaceChapters
	}
	events.UI.Surface(m.surface)
	m.bodyScroll = 0
	m.syncDisplay()
}

// syncDisplay pushes the active surface's current item into the display
// channel, so a surface switch updates the header immediately.
func (m *Model) syncDisplay() {
	if m.surface == SurfaceTopics {
		m.displayTopic(m.topicPager.Index())
		return
	}
	m.displayChapter(m.chapterPager.Index())
}

// rememberCurrent refreshes the last-known domain key for the active
// surface. Keys, not absolute indices, survive metadata changes.
func (m *Model) rememberCurrent() {
	if m.surface == SurfaceTopics {
		if t, ok := m.topics.At(m.topicPager.Index()); ok {
			m.lastTopic = t.ID
		}
		return
	}
	if ref, ok := m.chapters.Ref(m.chapterPager.Index()); ok {
		m.lastChapter = ref
	}
}

func (m *Model) feedbackSink() {
	if m.feedback != nil {
		m.feedback()
	}
}

func (m *Model) displayChapter(index int) {
	ref, ok := m.chapters.Ref(index)
	if !ok {
		ref = m.chapters.First()
	}
	book := catalog.BookName(ref.Book)
	if b, found := m.chapters.Book(ref.Book); found {
		book = b.Name
	}
	pager.Shared().Set(book, fmt.Sprintf("Chapter %d", ref.Chapter))
}

func (m *Model) displayTopic(index int) {
	t, ok := m.topics.At(index)
	if !ok {
		t = m.topics.First()
	}
	pager.Shared().Set(t.Name, t.Category)
}

func (m *Model) notifyChapter(index int) tea.Cmd {
	ref, ok := m.chapters.Ref(index)
	if !ok {
		ref = m.chapters.First()
	}
	m.lastChapter = ref
	events.Nav.Commit(SurfaceChapters, ref.String(), index)
	if m.st == nil {
		return nil
	}
	st := m.st
	return m.bus.Execute(command.Request{
		ID:    "position:save",
		Label: ref.String(),
		Run: func(ctx context.Context) tea.Msg {
			err := st.SavePosition(ctx, store.Position{
				Surface: SurfaceChapters,
				Book:    ref.Book,
				Chapter: ref.Chapter,
			})
			return positionSavedMsg{surface: SurfaceChapters, key: ref.String(), err: err}
		},
	})
}

func (m *Model) notifyTopic(index int) tea.Cmd {
	t, ok := m.topics.At(index)
	if !ok {
		t = m.topics.First()
	}
	m.lastTopic = t.ID
	events.Nav.Commit(SurfaceTopics, t.ID, index)
	if m.st == nil {
		return nil
	}
	st := m.st
	return m.bus.Execute(command.Request{
		ID:    "position:save",
		Label: t.Name,
		Run: func(ctx context.Context) tea.Msg {
			err := st.SavePosition(ctx, store.Position{
				Surface: SurfaceTopics,
				Topic:   t.ID,
			})
			return positionSavedMsg{surface: SurfaceTopics, key: t.ID, err: err}
		},
	})
}

func (m *Model) handleCommitMsg(msg tea.Msg) tea.Cmd {
	commit, ok := msg.(pager.CommitMsg)
	if !ok {
		return nil
	}
	if cmd := m.chapterPager.HandleCommit(commit); cmd != nil {
		return cmd
	}
	return m.topicPager.HandleCommit(commit)
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(pager.FrameMsg)
	if !ok {
		return nil
	}
	if !m.chapterPager.HandleFrame(frame) {
		m.topicPager.HandleFrame(frame)
	}
	return nil
}

type positionSavedMsg struct {
	surface string
	key     string
	err     error
}

func (m *Model) handlePositionSavedMsg(msg tea.Msg) tea.Cmd {
	saved, ok := msg.(positionSavedMsg)
	if !ok {
		return nil
	}
	if saved.err != nil {
		m.errMsg = saved.err.Error()
		events.Action.Error(saved.err)
		return nil
	}
	events.Action.Success("saved " + saved.key)
	if m.verbose {
		m.setInfo(fmt.Sprintf("Position saved: %s", saved.key))
	}
	return nil
}

type chapterLoadedMsg struct {
	ref     catalog.ChapterRef
	verses  []store.Verse
	summary string
	err     error
}

type topicLoadedMsg struct {
	id      string
	content store.TopicContent
	err     error
}

// loadCurrentBodyCmd fetches the text for the item the active surface
// is on. The pager never waits on this; stale responses are dropped by
// the handlers.
func (m *Model) loadCurrentBodyCmd() tea.Cmd {
	if m.st == nil {
		return nil
	}
	if m.surface == SurfaceTopics {
		t, ok := m.topics.At(m.topicPager.Index())
		if !ok {
			return nil
		}
		m.loadingBody = true
		st, language := m.st, m.language
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
			defer cancel()
			content, err := st.Topic(ctx, language, t.ID)
			return topicLoadedMsg{id: t.ID, content: content, err: err}
		}
	}
	ref, ok := m.chapters.Ref(m.chapterPager.Index())
	if !ok {
		return nil
	}
	m.loadingBody = true
	st, translation, language := m.st, m.translation, m.language
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		verses, err := st.Chapter(ctx, translation, ref)
		// The commentary snippet is optional; its absence is not an error.
		summary, serr := st.ChapterSummary(ctx, language, ref)
		if serr != nil {
			summary = ""
		}
		return chapterLoadedMsg{ref: ref, verses: verses, summary: summary, err: err}
	}
}

func (m *Model) handleChapterLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(chapterLoadedMsg)
	if !ok {
		return nil
	}
	if ref, found := m.chapters.Ref(m.chapterPager.Index()); !found || ref != loaded.ref {
		return nil
	}
	m.loadingBody = false
	if loaded.err != nil {
		m.chapterBody = nil
		m.chapterSummary = ""
		m.chapterFor = loaded.ref
		if errors.Is(loaded.err, store.ErrNotFound) {
			return nil
		}
		m.errMsg = loaded.err.Error()
		return nil
	}
	m.chapterBody = loaded.verses
	m.chapterSummary = loaded.summary
	m.chapterFor = loaded.ref
	m.errMsg = ""
	return nil
}

func (m *Model) handleTopicLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(topicLoadedMsg)
	if !ok {
		return nil
	}
	if t, found := m.topics.At(m.topicPager.Index()); !found || t.ID != loaded.id {
		return nil
	}
	m.loadingBody = false
	if loaded.err != nil {
		m.topicBody = store.TopicContent{}
		m.topicFor = loaded.id
		if errors.Is(loaded.err, store.ErrNotFound) {
			return nil
		}
		m.errMsg = loaded.err.Error()
		return nil
	}
	m.topicBody = loaded.content
	m.topicFor = loaded.id
	m.errMsg = ""
	return nil
}

type bookmarksLoadedMsg struct {
	refs []catalog.ChapterRef
	err  error
}

type bookmarkToggledMsg struct {
	ref catalog.ChapterRef
	on  bool
	err error
}

func (m *Model) loadBookmarksCmd() tea.Cmd {
	st := m.st
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		refs, err := st.Bookmarks(ctx)
		return bookmarksLoadedMsg{refs: refs, err: err}
	}
}

func (m *Model) handleBookmarksLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(bookmarksLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.err != nil {
		events.Store.Error("bookmarks", loaded.err)
		return nil
	}
	m.bookmarks = make(map[catalog.ChapterRef]bool, len(loaded.refs))
	for _, ref := range loaded.refs {
		m.bookmarks[ref] = true
	}
	m.refreshChapterLevel()
	return nil
}

func (m *Model) toggleBookmark() tea.Cmd {
	if m.surface != SurfaceChapters || m.st == nil {
		return nil
	}
	ref, ok := m.chapters.Ref(m.chapterPager.Index())
	if !ok {
		return nil
	}
	st := m.st
	return m.bus.Execute(command.Request{
		ID:    "bookmark:toggle",
		Label: ref.String(),
		Run: func(ctx context.Context) tea.Msg {
			on, err := st.ToggleBookmark(ctx, ref)
			return bookmarkToggledMsg{ref: ref, on: on, err: err}
		},
	})
}

func (m *Model) handleBookmarkToggledMsg(msg tea.Msg) tea.Cmd {
	toggled, ok := msg.(bookmarkToggledMsg)
	if !ok {
		return nil
	}
	if toggled.err != nil {
		m.errMsg = toggled.err.Error()
		events.Action.Error(toggled.err)
		return nil
	}
	if toggled.on {
		m.bookmarks[toggled.ref] = true
		m.setInfo(fmt.Sprintf("Bookmarked %s", toggled.ref))
	} else {
		delete(m.bookmarks, toggled.ref)
		m.setInfo(fmt.Sprintf("Removed bookmark %s", toggled.ref))
	}
	events.Action.Success(toggled.ref.String())
	m.refreshChapterLevel()
	return nil
}
