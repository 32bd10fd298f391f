package events

import "github.com/verse-mate/versemate-tui/internal/logging"

// PagerTracer emits structured trace entries for the windowed pager.
type PagerTracer struct{}

var Pager = PagerTracer{}

func (PagerTracer) Selected(surface string, ordinal, offset, index int) {
	logging.Trace("pager.selected", map[string]interface{}{
		"surface": surface,
		"ordinal": ordinal,
		"offset":  offset,
		"index":   index,
	})
}

// Dropped records an event suppressed by the recenter guard.
func (PagerTracer) Dropped(surface string, ordinal int) {
	logging.Trace("pager.dropped", map[string]interface{}{"surface": surface, "ordinal": ordinal})
}

// OutOfRange records an ordinal outside the window, which indicates an
// integration bug in the swipe surface rather than a user action.
func (PagerTracer) OutOfRange(surface string, ordinal int) {
	logging.Trace("pager.out-of-range", map[string]interface{}{"surface": surface, "ordinal": ordinal})
}

func (PagerTracer) Recenter(surface string, index int) {
	logging.Trace("pager.recenter", map[string]interface{}{"surface": surface, "index": index})
}

func (PagerTracer) Settled(surface string) {
	logging.Trace("pager.settled", map[string]interface{}{"surface": surface})
}

func (PagerTracer) Jump(surface string, index int) {
	logging.Trace("pager.jump", map[string]interface{}{"surface": surface, "index": index})
}

func (PagerTracer) Reset(surface string, index, length int) {
	logging.Trace("pager.reset", map[string]interface{}{
		"surface": surface,
		"index":   index,
		"length":  length,
	})
}
