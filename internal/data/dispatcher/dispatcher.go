// Package dispatcher fans backend metadata events out to the state
// stores.
package dispatcher

import (
	"github.com/verse-mate/versemate-tui/internal/backend"
	"github.com/verse-mate/versemate-tui/internal/state"
)

// Result reports which stores a handled event refreshed.
type Result struct {
	BooksUpdated  bool
	TopicsUpdated bool
}

type Dispatcher struct {
	books  state.BookStore
	topics state.TopicStore
}

func New(books state.BookStore, topics state.TopicStore) *Dispatcher {
	return &Dispatcher{books: books, topics: topics}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindBooks:
		if snapshot, ok := evt.Data.(backend.BookSnapshot); ok {
			d.books.SetEntries(snapshot.Books)
			d.books.SetTranslation(snapshot.Translation)
			res.BooksUpdated = true
		}
	case backend.KindTopics:
		if snapshot, ok := evt.Data.(backend.TopicSnapshot); ok {
			d.topics.SetEntries(snapshot.Topics)
			d.topics.SetCategories(snapshot.Categories)
			d.topics.SetLanguage(snapshot.Language)
			res.TopicsUpdated = true
		}
	}
	return res
}
