// Package state holds the metadata stores the dispatcher keeps in sync
// with the offline database, so the UI always reads a current snapshot.
package state

import "github.com/verse-mate/versemate-tui/internal/catalog"

type BookStore interface {
	Entries() []catalog.Book
	SetEntries([]catalog.Book)
	Translation() string
	SetTranslation(string)
	Loaded() bool
}

type bookStore struct {
	entries     []catalog.Book
	translation string
	loaded      bool
}

func NewBookStore() BookStore {
	return &bookStore{}
}

func (s *bookStore) Entries() []catalog.Book {
	return cloneBooks(s.entries)
}

func (s *bookStore) SetEntries(entries []catalog.Book) {
	s.entries = cloneBooks(entries)
	s.loaded = true
}

func (s *bookStore) Translation() string {
	return s.translation
}

func (s *bookStore) SetTranslation(translation string) {
	s.translation = translation
}

func (s *bookStore) Loaded() bool {
	return s.loaded
}

func cloneBooks(entries []catalog.Book) []catalog.Book {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]catalog.Book, len(entries))
	copy(dup, entries)
	return dup
}
