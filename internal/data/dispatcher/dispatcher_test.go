package dispatcher

import (
	"errors"
	"testing"

	"github.com/verse-mate/versemate-tui/internal/backend"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/state"
)

func TestHandleBooksUpdatesStore(t *testing.T) {
	books := state.NewBookStore()
	topics := state.NewTopicStore()
	d := New(books, topics)

	res := d.Handle(backend.Event{Kind: backend.KindBooks, Data: backend.BookSnapshot{
		Translation: "NASB1995",
		Books:       []catalog.Book{{ID: 1, Name: "Genesis", Chapters: 50}},
	}})
	if !res.BooksUpdated || res.TopicsUpdated {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !books.Loaded() || len(books.Entries()) != 1 {
		t.Fatalf("book store not updated")
	}
	if books.Translation() != "NASB1995" {
		t.Fatalf("translation = %q", books.Translation())
	}
}

func TestHandleTopicsUpdatesStore(t *testing.T) {
	books := state.NewBookStore()
	topics := state.NewTopicStore()
	d := New(books, topics)

	res := d.Handle(backend.Event{Kind: backend.KindTopics, Data: backend.TopicSnapshot{
		Language:   "en",
		Topics:     []catalog.Topic{{ID: "faith", Name: "Faith", Category: "doctrine"}},
		Categories: []string{"doctrine"},
	}})
	if !res.TopicsUpdated {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(topics.Entries()) != 1 || topics.Language() != "en" {
		t.Fatalf("topic store not updated")
	}
}

func TestHandleErrorLeavesStores(t *testing.T) {
	books := state.NewBookStore()
	topics := state.NewTopicStore()
	d := New(books, topics)

	res := d.Handle(backend.Event{Kind: backend.KindBooks, Err: errors.New("boom")})
	if res.BooksUpdated || books.Loaded() {
		t.Fatalf("error event must not touch stores")
	}
}
