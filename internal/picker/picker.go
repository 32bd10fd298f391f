// Package picker defines the jump-navigation entries: books and their
// chapters, topic categories and their topics. Selecting a leaf entry
// repositions the pager programmatically, outside the swipe path.
package picker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verse-mate/versemate-tui/internal/catalog"
)

// Item is a selectable picker entry.
type Item struct {
	ID    string
	Label string
}

// Level ids used by the UI stack.
const (
	LevelBooks      = "books"
	LevelChapters   = "chapters"
	LevelCategories = "categories"
	LevelTopics     = "topics"
)

// BookItems lists all books of a chapter catalog.
func BookItems(c *catalog.Chapters) []Item {
	books := c.Books()
	items := make([]Item, 0, len(books))
	for _, b := range books {
		items = append(items, Item{
			ID:    fmt.Sprintf("book:%d", b.ID),
			Label: b.Name,
		})
	}
	return items
}

// ChapterItems lists the chapters of one book. Bookmarked chapters are
// marked in the label.
func ChapterItems(b catalog.Book, bookmarked map[catalog.ChapterRef]bool) []Item {
	items := make([]Item, 0, b.Chapters)
	for ch := 1; ch <= b.Chapters; ch++ {
		label := fmt.Sprintf("Chapter %d", ch)
		if bookmarked[catalog.ChapterRef{Book: b.ID, Chapter: ch}] {
			label += " ◆"
		}
		items = append(items, Item{
			ID:    fmt.Sprintf("chapter:%d:%d", b.ID, ch),
			Label: label,
		})
	}
	return items
}

// CategoryItems lists the topic categories in catalog order.
func CategoryItems(t *catalog.Topics) []Item {
	categories := t.Categories()
	items := make([]Item, 0, len(categories))
	for _, cat := range categories {
		items = append(items, Item{
			ID:    "category:" + cat,
			Label: cat,
		})
	}
	return items
}

// TopicItems lists the topics of one category in catalog order.
func TopicItems(t *catalog.Topics, category string) []Item {
	topics := t.InCategory(category)
	items := make([]Item, 0, len(topics))
	for _, topic := range topics {
		items = append(items, Item{
			ID:    "topic:" + topic.ID,
			Label: topic.Name,
		})
	}
	return items
}

// ParseBook extracts the book id from a book item id.
func ParseBook(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "book:")
	if !ok {
		return 0, false
	}
	book, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return book, true
}

// ParseChapter extracts the chapter reference from a chapter item id.
func ParseChapter(id string) (catalog.ChapterRef, bool) {
	rest, ok := strings.CutPrefix(id, "chapter:")
	if !ok {
		return catalog.ChapterRef{}, false
	}
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return catalog.ChapterRef{}, false
	}
	book, err := strconv.Atoi(parts[0])
	if err != nil {
		return catalog.ChapterRef{}, false
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil {
		return catalog.ChapterRef{}, false
	}
	return catalog.ChapterRef{Book: book, Chapter: chapter}, true
}

// ParseCategory extracts the category from a category item id.
func ParseCategory(id string) (string, bool) {
	return strings.CutPrefix(id, "category:")
}

// ParseTopic extracts the topic id from a topic item id.
func ParseTopic(id string) (string, bool) {
	return strings.CutPrefix(id, "topic:")
}
