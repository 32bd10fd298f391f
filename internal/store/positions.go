package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/verse-mate/versemate-tui/internal/catalog"
)

// Position is a persisted reading position for one surface.
type Position struct {
	Surface string
	Book    int
	Chapter int
	Topic   string
}

// SavePosition upserts the committed position for a surface. This is
// the sink behind the debounced navigation commit.
func (s *Store) SavePosition(ctx context.Context, p Position) error {
	if s == nil {
		return errors.New("store not open")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reading_positions (surface, book_id, chapter_number, topic_id, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(surface) DO UPDATE SET
			book_id = excluded.book_id,
			chapter_number = excluded.chapter_number,
			topic_id = excluded.topic_id,
			updated_at = excluded.updated_at`,
		p.Surface, p.Book, p.Chapter, p.Topic, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	return nil
}

// LastPosition returns the persisted position for a surface, reporting
// ok=false when none has been saved yet.
func (s *Store) LastPosition(ctx context.Context, surface string) (Position, bool, error) {
	if s == nil {
		return Position{}, false, errors.New("store not open")
	}
	p := Position{Surface: surface}
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(book_id, 0), COALESCE(chapter_number, 0), COALESCE(topic_id, '')
		FROM reading_positions
		WHERE surface = ?`, surface).Scan(&p.Book, &p.Chapter, &p.Topic)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, false, nil
	}
	if err != nil {
		return Position{}, false, fmt.Errorf("load position: %w", err)
	}
	return p, true, nil
}

// ToggleBookmark flips the bookmark for a chapter and reports the new
// state.
func (s *Store) ToggleBookmark(ctx context.Context, ref catalog.ChapterRef) (bool, error) {
	if s == nil {
		return false, errors.New("store not open")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM offline_bookmarks
		WHERE book_id = ? AND chapter_number = ?`, ref.Book, ref.Chapter)
	if err != nil {
		return false, fmt.Errorf("toggle bookmark %s: %w", ref, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return false, nil
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO offline_bookmarks (book_id, chapter_number, created_at)
		VALUES (?, ?, ?)`,
		ref.Book, ref.Chapter, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("add bookmark %s: %w", ref, err)
	}
	return true, nil
}

// Bookmarks lists all bookmarked chapters.
func (s *Store) Bookmarks(ctx context.Context) ([]catalog.ChapterRef, error) {
	if s == nil {
		return nil, errors.New("store not open")
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT book_id, chapter_number
		FROM offline_bookmarks
		ORDER BY book_id, chapter_number`)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	defer rows.Close()
	var refs []catalog.ChapterRef
	for rows.Next() {
		var ref catalog.ChapterRef
		if err := rows.Scan(&ref.Book, &ref.Chapter); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
