// Package backend loads catalog metadata from the offline database and
// keeps it fresh: one initial load at startup, then a reload whenever
// the database file changes on disk (the seed file can be replaced by a
// content update while the app is running).
package backend

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/logging"
	"github.com/verse-mate/versemate-tui/internal/logging/events"
	"github.com/verse-mate/versemate-tui/internal/store"
)

// Kind identifies the metadata carried by an event.
type Kind int

const (
	KindBooks Kind = iota
	KindTopics
)

// BookSnapshot is a fresh read of the chapter metadata.
type BookSnapshot struct {
	Translation string
	Books       []catalog.Book
}

// TopicSnapshot is a fresh read of the topic metadata.
type TopicSnapshot struct {
	Language   string
	Topics     []catalog.Topic
	Categories []string
}

// Event conveys updated metadata or a load error.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher publishes metadata events. It performs one load immediately
// and re-loads (throttled) when the database file is written or
// replaced.
type Watcher struct {
	st          *store.Store
	translation string
	language    string

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	kick chan struct{}
}

// NewWatcher starts the metadata watcher.
func NewWatcher(st *store.Store, translation, language string) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		st:          st,
		translation: translation,
		language:    language,
		ctx:         ctx,
		cancel:      cancel,
		events:      make(chan Event, 8),
		kick:        make(chan struct{}, 1),
	}

	w.startLoader()
	w.startFileWatcher()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the metadata event channel. It closes after Stop once
// all goroutines have drained.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all watcher goroutines have exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

// Reload requests an out-of-band metadata refresh.
func (w *Watcher) Reload() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *Watcher) startLoader() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loadOnce()
		for {
			select {
			case <-w.ctx.Done():
				return
			case <-w.kick:
				throttle.wait()
				w.loadOnce()
			}
		}
	}()
}

func (w *Watcher) loadOnce() {
	books, err := w.st.Books(w.ctx, w.translation)
	if err != nil {
		events.Store.Error("books", err)
		w.emit(Event{Kind: KindBooks, Err: err})
	} else {
		events.Store.Loaded("books", len(books))
		w.emit(Event{Kind: KindBooks, Data: BookSnapshot{Translation: w.translation, Books: books}})
	}

	topics, categories, err := w.st.Topics(w.ctx, w.language)
	if err != nil {
		events.Store.Error("topics", err)
		w.emit(Event{Kind: KindTopics, Err: err})
	} else {
		events.Store.Loaded("topics", len(topics))
		w.emit(Event{Kind: KindTopics, Data: TopicSnapshot{
			Language:   w.language,
			Topics:     topics,
			Categories: categories,
		}})
	}
}

func (w *Watcher) emit(evt Event) {
	select {
	case w.events <- evt:
	case <-w.ctx.Done():
	}
}

func (w *Watcher) startFileWatcher() {
	path := w.st.Path()
	if path == "" {
		return
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Error(err)
		return
	}
	// Watch the directory rather than the file: content updates replace
	// the file wholesale, which unregisters a direct file watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		logging.Error(err)
		fw.Close()
		return
	}
	base := filepath.Base(path)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer fw.Close()
		for {
			select {
			case <-w.ctx.Done():
				return
			case evt, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != base {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				events.Store.Watch(evt.Name, evt.Op.String())
				w.Reload()
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logging.Error(err)
			}
		}
	}()
}
