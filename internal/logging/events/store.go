package events

import "github.com/verse-mate/versemate-tui/internal/logging"

// StoreTracer covers the offline content store and metadata watcher.
type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Loaded(kind string, count int) {
	logging.Trace("store.loaded", map[string]interface{}{"kind": kind, "count": count})
}

func (StoreTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"op": op, "error": err.Error()})
}

func (StoreTracer) Watch(path, op string) {
	logging.Trace("store.watch", map[string]interface{}{"path": path, "op": op})
}
