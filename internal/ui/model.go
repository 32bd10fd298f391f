package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/backend"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/data/dispatcher"
	"github.com/verse-mate/versemate-tui/internal/pager"
	"github.com/verse-mate/versemate-tui/internal/state"
	"github.com/verse-mate/versemate-tui/internal/store"
	"github.com/verse-mate/versemate-tui/internal/theme"
	"github.com/verse-mate/versemate-tui/internal/ui/command"
	uistate "github.com/verse-mate/versemate-tui/internal/ui/state"
)

type level = uistate.Level

// Mode selects between the reading surface and the jump picker.
type Mode int

const (
	ModeReader Mode = iota
	ModePicker
)

// Surface names route pager messages to the right controller.
const (
	SurfaceChapters = "chapters"
	SurfaceTopics   = "topics"
)

const (
	chapterWindowSize = 7
	topicWindowSize   = 5
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries everything the model needs at construction time.
type Options struct {
	Store       *store.Store
	Watcher     *backend.Watcher
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	Translation string
	Language    string
	// Chapter/Topic are the starting domain keys. A zero Chapter means
	// "first chapter once metadata arrives"; an empty Topic likewise.
	Chapter catalog.ChapterRef
	Topic   string
	// Feedback fires once per accepted navigation step. Defaults to the
	// terminal bell.
	Feedback func()
}

// Model implements the Bubble Tea model for the reading application.
type Model struct {
	mode    Mode
	surface string

	chapterPager *pager.Controller
	topicPager   *pager.Controller

	chapters *catalog.Chapters
	topics   *catalog.Topics

	lastChapter catalog.ChapterRef
	lastTopic   string

	bookmarks map[catalog.ChapterRef]bool

	chapterBody    []store.Verse
	chapterSummary string
	chapterFor     catalog.ChapterRef
	topicBody      store.TopicContent
	topicFor       string
	loadingBody    bool
	bodyScroll     int

	stack []*level

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	st             *store.Store
	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string
	books          state.BookStore
	topicStore     state.TopicStore
	dispatcher     *dispatcher.Dispatcher
	bus            *command.Bus
	translation    string
	language       string
	feedback       func()

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with both pager surfaces and the
// metadata plumbing. Catalogs start empty; the first backend event
// populates them and resets the controllers.
func NewModel(opts Options) *Model {
	books := state.NewBookStore()
	topics := state.NewTopicStore()
	m := &Model{
		mode:         ModeReader,
		surface:      SurfaceChapters,
		lastChapter:  opts.Chapter,
		lastTopic:    opts.Topic,
		bookmarks:    map[catalog.ChapterRef]bool{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		st:           opts.Store,
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		books:        books,
		topicStore:   topics,
		dispatcher:   dispatcher.New(books, topics),
		bus:          command.New(),
		translation:  opts.Translation,
		language:     opts.Language,
		feedback:     opts.Feedback,
	}
	if m.feedback == nil {
		m.feedback = bellFeedback
	}
	m.chapterPager = pager.NewController(SurfaceChapters, chapterWindowSize, pager.DefaultCommitDelay, pager.Sinks{
		Feedback: m.feedbackSink,
		Display:  m.displayChapter,
		Notify:   m.notifyChapter,
	})
	m.topicPager = pager.NewController(SurfaceTopics, topicWindowSize, pager.DefaultCommitDelay, pager.Sinks{
		Feedback: m.feedbackSink,
		Display:  m.displayTopic,
		Notify:   m.notifyTopic,
	})
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if m.st != nil {
		cmds = append(cmds, m.loadBookmarksCmd())
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(pager.CommitMsg{}):    m.handleCommitMsg,
		reflect.TypeOf(pager.FrameMsg{}):     m.handleFrameMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
		reflect.TypeOf(chapterLoadedMsg{}):   m.handleChapterLoadedMsg,
		reflect.TypeOf(topicLoadedMsg{}):     m.handleTopicLoadedMsg,
		reflect.TypeOf(bookmarksLoadedMsg{}): m.handleBookmarksLoadedMsg,
		reflect.TypeOf(bookmarkToggledMsg{}): m.handleBookmarkToggledMsg,
		reflect.TypeOf(positionSavedMsg{}):   m.handlePositionSavedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode == ModePicker {
		return m.handlePickerKey(keyMsg)
	}
	return m.handleReaderKey(keyMsg)
}

// activePager returns the controller for the surface the user is on.
func (m *Model) activePager() *pager.Controller {
	if m.surface == SurfaceTopics {
		return m.topicPager
	}
	return m.chapterPager
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
