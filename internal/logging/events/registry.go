package events

import "github.com/atomicstack/burrow/internal/logging"

type RegistryTracer struct{}

var Registry = RegistryTracer{}

func (RegistryTracer) History(title, url string, dynamic int) {
	logging.Trace("registry.history.add", map[string]interface{}{"title": title, "url": url, "dynamic": dynamic})
}

func (RegistryTracer) ClearHistory() {
	logging.Trace("registry.history.clear", nil)
}

func (RegistryTracer) Bookmark(title, url string, dynamic int) {
	logging.Trace("registry.bookmark.add", map[string]interface{}{"title": title, "url": url, "dynamic": dynamic})
}

func (RegistryTracer) ReloadBookmarks(count int) {
	logging.Trace("registry.bookmark.reload", map[string]interface{}{"count": count})
}
