// Package catalog maps domain keys (book+chapter, topic id) to dense
// absolute indices and back. A catalog is an immutable snapshot: every
// index in [0, Len) corresponds to exactly one key and vice versa.
// Resolvers never cache across snapshots; when metadata changes, callers
// build a fresh catalog and re-resolve their last-known key against it.
package catalog

import "fmt"

// NotFound is returned by Index lookups for unknown keys or when the
// catalog has not been loaded yet.
const NotFound = -1

// ChapterRef addresses a single chapter.
type ChapterRef struct {
	Book    int
	Chapter int
}

func (r ChapterRef) String() string {
	if name := BookName(r.Book); name != "" {
		return fmt.Sprintf("%s %d", name, r.Chapter)
	}
	return fmt.Sprintf("book %d chapter %d", r.Book, r.Chapter)
}

// Chapters is the chapter catalog: all books in canonical order with
// their chapters flattened into one dense index space.
type Chapters struct {
	books   []Book
	byID    map[int]int
	offsets []int
	total   int
}

// NewChapters builds a chapter catalog from an ordered book list. Books
// with no chapters are skipped so the index space stays dense.
func NewChapters(books []Book) *Chapters {
	c := &Chapters{byID: make(map[int]int, len(books))}
	for _, b := range books {
		if b.Chapters <= 0 {
			continue
		}
		c.byID[b.ID] = len(c.books)
		c.books = append(c.books, b)
		c.offsets = append(c.offsets, c.total)
		c.total += b.Chapters
	}
	return c
}

// Len reports the total number of chapters. A nil catalog has length 0.
func (c *Chapters) Len() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Books returns the ordered book list backing this snapshot.
func (c *Chapters) Books() []Book {
	if c == nil {
		return nil
	}
	dup := make([]Book, len(c.books))
	copy(dup, c.books)
	return dup
}

// Book looks up a book by id within this snapshot.
func (c *Chapters) Book(id int) (Book, bool) {
	if c == nil {
		return Book{}, false
	}
	pos, ok := c.byID[id]
	if !ok {
		return Book{}, false
	}
	return c.books[pos], true
}

// Index resolves a chapter reference to its absolute index, or NotFound
// for unknown books, out-of-range chapters, or an unloaded catalog.
func (c *Chapters) Index(ref ChapterRef) int {
	if c == nil || c.total == 0 {
		return NotFound
	}
	pos, ok := c.byID[ref.Book]
	if !ok {
		return NotFound
	}
	if ref.Chapter < 1 || ref.Chapter > c.books[pos].Chapters {
		return NotFound
	}
	return c.offsets[pos] + ref.Chapter - 1
}

// Ref resolves an absolute index back to its chapter reference. The
// index must already be wrapped into [0, Len); out-of-range values
// report ok=false.
func (c *Chapters) Ref(index int) (ChapterRef, bool) {
	if c == nil || index < 0 || index >= c.total {
		return ChapterRef{}, false
	}
	// offsets is ascending; a linear scan over 66 entries is fine.
	pos := len(c.offsets) - 1
	for i := 1; i < len(c.offsets); i++ {
		if c.offsets[i] > index {
			pos = i - 1
			break
		}
	}
	return ChapterRef{Book: c.books[pos].ID, Chapter: index - c.offsets[pos] + 1}, true
}

// First returns the deterministic default position: the first chapter of
// the first book, or the zero ref when the catalog is empty.
func (c *Chapters) First() ChapterRef {
	if c == nil || len(c.books) == 0 {
		return ChapterRef{}
	}
	return ChapterRef{Book: c.books[0].ID, Chapter: 1}
}
