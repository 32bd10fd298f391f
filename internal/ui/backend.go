package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/backend"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/picker"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent installs a metadata snapshot. The absolute index is
// never trusted across snapshots: each surface re-resolves its position
// from the last-known domain key, falling back to the first item.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return nil
	}

	res := m.dispatcher.Handle(evt)
	var loadCmd tea.Cmd

	if res.BooksUpdated {
		m.chapters = catalog.NewChapters(m.books.Entries())
		idx := m.chapters.Index(m.lastChapter)
		if idx == catalog.NotFound {
			m.lastChapter = m.chapters.First()
			idx = m.chapters.Index(m.lastChapter)
			if idx == catalog.NotFound {
				idx = 0
			}
		}
		m.chapterPager.Reset(idx, m.chapters.Len())
		if lvl := m.findLevelByID(picker.LevelBooks); lvl != nil {
			lvl.UpdateItems(picker.BookItems(m.chapters))
			m.syncViewport(lvl)
		}
		m.refreshChapterLevel()
		if m.surface == SurfaceChapters {
			loadCmd = m.loadCurrentBodyCmd()
		}
	}

	if res.TopicsUpdated {
		m.topics = catalog.NewTopics(m.topicStore.Entries(), m.topicStore.Categories())
		idx := m.topics.Index(m.lastTopic)
		if idx == catalog.NotFound {
			m.lastTopic = m.topics.First().ID
			idx = m.topics.Index(m.lastTopic)
			if idx == catalog.NotFound {
				idx = 0
			}
		}
		m.topicPager.Reset(idx, m.topics.Len())
		if lvl := m.findLevelByID(picker.LevelCategories); lvl != nil {
			lvl.UpdateItems(picker.CategoryItems(m.topics))
			m.syncViewport(lvl)
		}
		if lvl := m.findLevelByID(picker.LevelTopics); lvl != nil {
			lvl.UpdateItems(picker.TopicItems(m.topics, lvl.Title))
			m.syncViewport(lvl)
		}
		if m.surface == SurfaceTopics {
			loadCmd = m.loadCurrentBodyCmd()
		}
	}

	if res.BooksUpdated || res.TopicsUpdated {
		// A Reset on the inactive surface also wrote to the shared
		// display channel; put the active surface back.
		m.syncDisplay()
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
	return loadCmd
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
