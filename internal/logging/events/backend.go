package events

import "github.com/atomicstack/burrow/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) Request(kind string) {
	logging.Trace("backend.request", map[string]interface{}{"msg": kind})
}

func (BackendTracer) Fetch(address, kind, query string) {
	logging.Trace("backend.fetch", map[string]interface{}{"address": address, "kind": kind, "query": query})
}

func (BackendTracer) Done(address string, bytes int) {
	logging.Trace("backend.done", map[string]interface{}{"address": address, "bytes": bytes})
}

func (BackendTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"op": op, "error": err.Error()})
}

func (BackendTracer) BookmarksChanged(path string) {
	logging.Trace("backend.bookmarks.changed", map[string]interface{}{"path": path})
}
