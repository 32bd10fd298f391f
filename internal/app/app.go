package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/backend"
	"github.com/verse-mate/versemate-tui/internal/catalog"
	"github.com/verse-mate/versemate-tui/internal/logging"
	"github.com/verse-mate/versemate-tui/internal/logging/events"
	"github.com/verse-mate/versemate-tui/internal/store"
	"github.com/verse-mate/versemate-tui/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	DBPath      string
	Translation string
	Language    string
	Book        int
	Chapter     int
	Topic       string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer st.Close()

	startChapter, startTopic := startPositions(st, cfg)

	watcher := backend.NewWatcher(st, cfg.Translation, cfg.Language)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Store:       st,
		Watcher:     watcher,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		Verbose:     cfg.Verbose,
		Translation: cfg.Translation,
		Language:    cfg.Language,
		Chapter:     startChapter,
		Topic:       startTopic,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// startPositions picks the starting domain keys: explicit flags win,
// otherwise the persisted reading positions are restored.
func startPositions(st *store.Store, cfg Config) (catalog.ChapterRef, string) {
	var ref catalog.ChapterRef
	topic := cfg.Topic
	if cfg.Book > 0 && cfg.Chapter > 0 {
		ref = catalog.ChapterRef{Book: cfg.Book, Chapter: cfg.Chapter}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if ref == (catalog.ChapterRef{}) {
		if pos, ok, err := st.LastPosition(ctx, ui.SurfaceChapters); err != nil {
			logging.Error(err)
		} else if ok {
			ref = catalog.ChapterRef{Book: pos.Book, Chapter: pos.Chapter}
			events.Nav.Restore(ui.SurfaceChapters, ref.String())
		}
	}
	if topic == "" {
		if pos, ok, err := st.LastPosition(ctx, ui.SurfaceTopics); err != nil {
			logging.Error(err)
		} else if ok {
			topic = pos.Topic
			events.Nav.Restore(ui.SurfaceTopics, topic)
		}
	}
	return ref, topic
}
