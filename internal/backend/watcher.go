package backend

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/burrow/internal/logging"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// defaultSettle is how long the bookmark file must stay quiet before it is
// re-read. Saves arrive as a burst of create/rename events.
const defaultSettle = 150 * time.Millisecond

// watchBookmarks re-reads the bookmark file whenever it changes on disk,
// including edits made by another burrow process or a text editor. The
// parent directory is watched because the store replaces the file by
// renaming a temp file over it.
func (c *Controller) watchBookmarks(ctx context.Context) error {
	if c.bookmarks == nil {
		return nil
	}
	path := filepath.Clean(c.bookmarks.Path())
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logging.Error(err)
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Error(err)
		return nil
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		logging.Error(err)
		return nil
	}

	settle := c.settle
	if settle <= 0 {
		settle = defaultSettle
	}
	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			timer.Reset(settle)
		case <-timer.C:
			events.Backend.BookmarksChanged(path)
			c.postBookmarks()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.Error(err)
		}
	}
}
