package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/logging/events"
	"github.com/verse-mate/versemate-tui/internal/picker"
	uistate "github.com/verse-mate/versemate-tui/internal/ui/state"
)

func newLevel(id, title string, items []picker.Item) *level {
	return uistate.NewLevel(id, title, items)
}

// openPicker enters picker mode on the level matching the active
// surface, with the cursor on the current item.
func (m *Model) openPicker() {
	var root *level
	if m.surface == SurfaceTopics {
		root = newLevel(picker.LevelCategories, "Categories", picker.CategoryItems(m.topics))
		if len(root.Items) > 0 {
			root.Cursor = 0
		}
		if t, ok := m.topics.At(m.topicPager.Index()); ok {
			if idx := root.IndexOf("category:" + t.Category); idx >= 0 {
				root.Cursor = idx
			}
		}
	} else {
		root = newLevel(picker.LevelBooks, "Books", picker.BookItems(m.chapters))
		if len(root.Items) > 0 {
			root.Cursor = 0
		}
		if ref, ok := m.chapters.Ref(m.chapterPager.Index()); ok {
			if idx := root.IndexOf(fmt.Sprintf("book:%d", ref.Book)); idx >= 0 {
				root.Cursor = idx
			}
		}
	}
	m.syncViewport(root)
	m.stack = []*level{root}
	m.mode = ModePicker
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) closePicker() {
	m.stack = nil
	m.mode = ModeReader
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.handleTextInput(msg); handled {
		return cmd
	}
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		m.closePicker()
		return nil
	}
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	if parent != nil {
		if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
			parent.Cursor = parent.LastCursor
		} else if idx := parent.IndexOf(current.ID); idx >= 0 {
			parent.Cursor = idx
		} else if len(parent.Items) > 0 {
			parent.Cursor = len(parent.Items) - 1
		}
		parent.LastCursor = -1
		m.syncViewport(parent)
	}
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(current.Items) == 0 {
		return nil
	}
	if current.Cursor < 0 || current.Cursor >= len(current.Items) {
		return nil
	}
	item := current.Items[current.Cursor]
	events.UI.PickerEnter(current.ID, item.ID, item.Label, current.Filter)
	beforeCursor := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, beforeCursor)

	switch current.ID {
	case picker.LevelBooks:
		if bookID, ok := picker.ParseBook(item.ID); ok {
			return m.descendToChapters(current, bookID, item.Label)
		}
	case picker.LevelChapters:
		if ref, ok := picker.ParseChapter(item.ID); ok {
			m.jumpToChapter(ref)
			return m.loadCurrentBodyCmd()
		}
	case picker.LevelCategories:
		if category, ok := picker.ParseCategory(item.ID); ok {
			return m.descendToTopics(current, category)
		}
	case picker.LevelTopics:
		if topicID, ok := picker.ParseTopic(item.ID); ok {
			m.jumpToTopic(topicID)
			return m.loadCurrentBodyCmd()
		}
	}
	return nil
}

func (m *Model) descendToChapters(parent *level, bookID int, title string) tea.Cmd {
	book, ok := m.chapters.Book(bookID)
	if !ok {
		m.errMsg = fmt.Sprintf("Unknown book %d", bookID)
		return nil
	}
	parent.LastCursor = parent.Cursor
	lvl := newLevel(picker.LevelChapters, title, picker.ChapterItems(book, m.bookmarks))
	if len(lvl.Items) > 0 {
		lvl.Cursor = 0
	}
	if ref, found := m.chapters.Ref(m.chapterPager.Index()); found && ref.Book == bookID {
		if idx := lvl.IndexOf(fmt.Sprintf("chapter:%d:%d", ref.Book, ref.Chapter)); idx >= 0 {
			lvl.Cursor = idx
		}
	}
	m.syncViewport(lvl)
	m.stack = append(m.stack, lvl)
	return nil
}

func (m *Model) descendToTopics(parent *level, category string) tea.Cmd {
	parent.LastCursor = parent.Cursor
	lvl := newLevel(picker.LevelTopics, category, picker.TopicItems(m.topics, category))
	if len(lvl.Items) > 0 {
		lvl.Cursor = 0
	}
	if t, ok := m.topics.At(m.topicPager.Index()); ok && t.Category == category {
		if idx := lvl.IndexOf("topic:" + t.ID); idx >= 0 {
			lvl.Cursor = idx
		}
	}
	m.syncViewport(lvl)
	m.stack = append(m.stack, lvl)
	return nil
}

// jumpToChapter repositions the chapter pager silently: no feedback,
// no debounce burst, no nav event.
func (m *Model) jumpToChapter(ref catalog.ChapterRef) {
	idx := m.chapters.Index(ref)
	if idx == catalog.NotFound {
		m.errMsg = fmt.Sprintf("Chapter %s is not available offline", ref)
		return
	}
	m.chapterPager.Jump(idx)
	m.lastChapter = ref
	m.bodyScroll = 0
	m.closePicker()
}

func (m *Model) jumpToTopic(id string) {
	idx := m.topics.Index(id)
	if idx == catalog.NotFound {
		m.errMsg = "Topic is not available offline"
		return
	}
	m.topicPager.Jump(idx)
	m.lastTopic = id
	m.bodyScroll = 0
	m.closePicker()
}

// refreshChapterLevel reapplies bookmark markers to an open chapter
// level after a bookmark change.
func (m *Model) refreshChapterLevel() {
	lvl := m.findLevelByID(picker.LevelChapters)
	if lvl == nil {
		return
	}
	var bookID int
	if len(lvl.Full) > 0 {
		if ref, ok := picker.ParseChapter(lvl.Full[0].ID); ok {
			bookID = ref.Book
		}
	}
	book, ok := m.chapters.Book(bookID)
	if !ok {
		return
	}
	lvl.UpdateItems(picker.ChapterItems(book, m.bookmarks))
	m.syncViewport(lvl)
}

func (m *Model) findLevelByID(id string) *level {
	for _, lvl := range m.stack {
		if lvl.ID == id {
			return lvl
		}
	}
	return nil
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorUp() {
			events.UI.PickerCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorDown() {
			events.UI.PickerCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorPageUp(m.maxVisibleItems()) {
			events.UI.PickerCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorPageDown(m.maxVisibleItems()) {
			events.UI.PickerCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorHome() {
			events.UI.PickerCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorEnd() {
			events.UI.PickerCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}
