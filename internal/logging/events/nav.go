package events

import "github.com/verse-mate/versemate-tui/internal/logging"

// NavTracer covers committed navigation and the debounce machinery.
type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Commit(surface, key string, index int) {
	logging.Trace("nav.commit", map[string]interface{}{
		"surface": surface,
		"key":     key,
		"index":   index,
	})
}

// Stale records a debounce tick superseded by a later navigation event.
func (NavTracer) Stale(surface string, index int) {
	logging.Trace("nav.stale", map[string]interface{}{"surface": surface, "index": index})
}

func (NavTracer) Restore(surface, key string) {
	logging.Trace("nav.restore", map[string]interface{}{"surface": surface, "key": key})
}
