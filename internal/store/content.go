package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/verse-mate/versemate-tui/internal/catalog"
)

// ErrNotFound is returned when the requested content is absent from the
// offline database.
var ErrNotFound = errors.New("content not found")

// Verse is one verse of a chapter.
type Verse struct {
	Number int
	Text   string
}

// TopicContent is a topical article with its scripture references.
type TopicContent struct {
	ID         string
	Name       string
	Category   string
	Content    string
	References string
}

// Books derives the chapter metadata for one translation: every book
// present in the offline verses table with its highest chapter number.
// Display names come from the canon table.
func (s *Store) Books(ctx context.Context, versionKey string) ([]catalog.Book, error) {
	if s == nil {
		return nil, errors.New("store not open")
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT book_id, MAX(chapter_number)
		FROM offline_verses
		WHERE version_key = ?
		GROUP BY book_id
		ORDER BY book_id`, versionKey)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	defer rows.Close()
	var books []catalog.Book
	for rows.Next() {
		var b catalog.Book
		if err := rows.Scan(&b.ID, &b.Chapters); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		b.Name = catalog.BookName(b.ID)
		if b.Name == "" {
			b.Name = fmt.Sprintf("Book %d", b.ID)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// Topics loads all topical articles for a language, along with the
// category sequence in first-seen order.
func (s *Store) Topics(ctx context.Context, language string) ([]catalog.Topic, []string, error) {
	if s == nil {
		return nil, nil, errors.New("store not open")
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT topic_id, name, category, COALESCE(sort_order, 0)
		FROM offline_topics
		WHERE language_code = ?
		ORDER BY category, COALESCE(sort_order, 0), name`, language)
	if err != nil {
		return nil, nil, fmt.Errorf("load topics: %w", err)
	}
	defer rows.Close()
	var topics []catalog.Topic
	var categories []string
	seen := make(map[string]struct{})
	for rows.Next() {
		var t catalog.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.SortOrder); err != nil {
			return nil, nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
		if _, ok := seen[t.Category]; !ok {
			seen[t.Category] = struct{}{}
			categories = append(categories, t.Category)
		}
	}
	return topics, categories, rows.Err()
}

// Chapter returns the verses of one chapter in verse order.
func (s *Store) Chapter(ctx context.Context, versionKey string, ref catalog.ChapterRef) ([]Verse, error) {
	if s == nil {
		return nil, errors.New("store not open")
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT verse_number, text
		FROM offline_verses
		WHERE version_key = ? AND book_id = ? AND chapter_number = ?
		ORDER BY verse_number`, versionKey, ref.Book, ref.Chapter)
	if err != nil {
		return nil, fmt.Errorf("load chapter %s: %w", ref, err)
	}
	defer rows.Close()
	var verses []Verse
	for rows.Next() {
		var v Verse
		if err := rows.Scan(&v.Number, &v.Text); err != nil {
			return nil, fmt.Errorf("scan verse: %w", err)
		}
		verses = append(verses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, fmt.Errorf("chapter %s: %w", ref, ErrNotFound)
	}
	return verses, nil
}

// ChapterSummary returns the whole-chapter commentary snippet when one
// exists. Absence is not an error; an empty string is returned.
func (s *Store) ChapterSummary(ctx context.Context, language string, ref catalog.ChapterRef) (string, error) {
	if s == nil {
		return "", errors.New("store not open")
	}
	var summary string
	err := s.db.QueryRowContext(ctx, `
		SELECT explanation
		FROM offline_explanations
		WHERE language_code = ? AND book_id = ? AND chapter_number = ?
			AND verse_start IS NULL
		ORDER BY explanation_id
		LIMIT 1`, language, ref.Book, ref.Chapter).Scan(&summary)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load summary %s: %w", ref, err)
	}
	return summary, nil
}

// Topic returns one topical article with its references.
func (s *Store) Topic(ctx context.Context, language, topicID string) (TopicContent, error) {
	if s == nil {
		return TopicContent{}, errors.New("store not open")
	}
	var t TopicContent
	err := s.db.QueryRowContext(ctx, `
		SELECT t.topic_id, t.name, t.category, t.content, COALESCE(r.reference_content, '')
		FROM offline_topics t
		LEFT JOIN offline_topic_references r ON r.topic_id = t.topic_id
		WHERE t.language_code = ? AND t.topic_id = ?`, language, topicID).
		Scan(&t.ID, &t.Name, &t.Category, &t.Content, &t.References)
	if errors.Is(err, sql.ErrNoRows) {
		return TopicContent{}, fmt.Errorf("topic %s: %w", topicID, ErrNotFound)
	}
	if err != nil {
		return TopicContent{}, fmt.Errorf("load topic %s: %w", topicID, err)
	}
	return t, nil
}
