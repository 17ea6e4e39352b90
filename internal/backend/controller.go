// Package backend performs the network and disk work requested by the UI.
// It reads message.Outbound requests in order from one channel and answers
// by posting message.Inbound results onto the UI queue.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicstack/burrow/internal/gopher"
	"github.com/atomicstack/burrow/internal/logging"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/atomicstack/burrow/internal/menu"
	"github.com/atomicstack/burrow/internal/message"
	"github.com/atomicstack/burrow/internal/store"
	"github.com/skratchdot/open-golang/open"
	"golang.org/x/sync/errgroup"
)

const (
	requestBuffer   = 16
	defaultThrottle = 250 * time.Millisecond
)

// ErrNoPage is reported when a request needs a current page and none has
// been shown yet.
var ErrNoPage = errors.New("no page loaded")

// Options configures a Controller.
type Options struct {
	Queue       *message.Queue
	Bookmarks   *store.Bookmarks
	History     *store.History
	DownloadDir string
	Homepage    string
	Client      *gopher.Client
	// Throttle is the minimum gap between network fetches. Negative disables
	// it; zero uses the default.
	Throttle time.Duration
	// Opener hands addresses to the desktop. Defaults to open.Run.
	Opener func(string) error
}

type page struct {
	url     *url.URL
	kind    gopher.Kind
	content string
}

// Controller owns the navigation stack and performs fetches for the UI.
type Controller struct {
	queue       *message.Queue
	bookmarks   *store.Bookmarks
	history     *store.History
	downloadDir string
	homepage    string
	client      *gopher.Client
	throttle    *throttle
	opener      func(string) error
	settle      time.Duration

	requests chan message.Outbound
	done     chan struct{}

	back    []page
	current *page
}

// NewController builds a controller. Run must be called to start it.
func NewController(opts Options) *Controller {
	client := opts.Client
	if client == nil {
		client = gopher.NewClient(0)
	}
	interval := opts.Throttle
	if interval == 0 {
		interval = defaultThrottle
	}
	opener := opts.Opener
	if opener == nil {
		opener = open.Run
	}
	return &Controller{
		queue:       opts.Queue,
		bookmarks:   opts.Bookmarks,
		history:     opts.History,
		downloadDir: opts.DownloadDir,
		homepage:    opts.Homepage,
		client:      client,
		throttle:    newThrottle(interval),
		opener:      opener,
		requests:    make(chan message.Outbound, requestBuffer),
		done:        make(chan struct{}),
	}
}

// Requests returns the channel the UI sends requests on.
func (c *Controller) Requests() chan<- message.Outbound {
	return c.requests
}

// Done is closed once Run has returned.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Run restores the stored menus, opens the home page and then serves
// requests until ctx ends.
func (c *Controller) Run(ctx context.Context) error {
	defer close(c.done)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.watchBookmarks(ctx)
	})
	g.Go(func() error {
		return c.serve(ctx)
	})
	return g.Wait()
}

func (c *Controller) serve(ctx context.Context) error {
	c.restore()
	if c.homepage != "" {
		c.openHome(ctx)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-c.requests:
			c.handle(ctx, req)
		}
	}
}

func (c *Controller) handle(ctx context.Context, req message.Outbound) {
	events.Backend.Request(fmt.Sprintf("%T", req))
	switch r := req.(type) {
	case message.FetchURL:
		c.fetchPage(ctx, r.URL, r.Kind, r.Query)
	case message.FetchBinary:
		c.fetchBinary(ctx, r.URL, r.Path)
	case message.NavigateBack:
		c.navigateBack()
	case message.RequestSaveAsDialog:
		if c.current == nil {
			c.status(ErrNoPage.Error())
			return
		}
		c.post(message.ShowSaveAsDialog{URL: c.current.url})
	case message.RequestAddBookmarkDialog:
		if c.current == nil {
			c.status(ErrNoPage.Error())
			return
		}
		c.post(message.ShowAddBookmarkDialog{URL: c.current.url})
	case message.SavePageAs:
		c.savePage(r.Filename)
	case message.AddBookmark:
		c.addBookmark(r)
	case message.ClearHistory:
		c.clearHistory()
	case message.OpenExternal:
		if err := c.opener(r.Target); err != nil {
			events.Backend.Error("open", err)
			c.status(fmt.Sprintf("Could not open %s: %v", r.Target, err))
		}
	default:
		logging.Warn("backend: unhandled request %T", req)
	}
}

func (c *Controller) openHome(ctx context.Context) {
	u, err := gopher.NormalizeAddress(c.homepage)
	if err != nil {
		c.status(fmt.Sprintf("Invalid URL: %v", err))
		return
	}
	kind := gopher.KindForURL(u)
	if kind == gopher.KindBinary {
		kind = gopher.KindListing
	}
	c.fetchPage(ctx, u, kind, "")
}

func (c *Controller) fetch(ctx context.Context, u *url.URL, kind gopher.Kind, query string) ([]byte, error) {
	if err := c.throttle.wait(ctx); err != nil {
		return nil, err
	}
	events.Backend.Fetch(u.String(), kind.String(), query)
	body, err := c.client.Fetch(ctx, u, query)
	if err != nil {
		events.Backend.Error("fetch", err)
		return nil, err
	}
	events.Backend.Done(u.String(), len(body))
	return body, nil
}

// fetchPage loads a listing or text page, makes it current and records the
// visit.
func (c *Controller) fetchPage(ctx context.Context, u *url.URL, kind gopher.Kind, query string) {
	if u == nil {
		return
	}
	body, err := c.fetch(ctx, u, kind, query)
	if err != nil {
		c.post(message.FetchFailed{URL: u, Err: err})
		return
	}
	content := gopher.DecodeText(body)
	if c.current != nil {
		c.back = append(c.back, *c.current)
	}
	c.current = &page{url: u, kind: kind, content: content}
	c.post(message.ContentReady{URL: u, Content: content, Kind: kind})
	c.recordVisit(pageTitle(u, kind, content), u.String())
}

func pageTitle(u *url.URL, kind gopher.Kind, content string) string {
	if kind == gopher.KindListing {
		if title := gopher.ParseListing(content).Title; title != "" {
			return title
		}
	}
	return u.String()
}

func (c *Controller) recordVisit(title, address string) {
	if c.history != nil {
		if _, err := c.history.Add(title, address); err != nil {
			logging.Error(err)
		}
	}
	c.post(message.HistoryAdded{Entry: message.HistoryEntry{Title: title, URL: address}})
}

func (c *Controller) fetchBinary(ctx context.Context, u *url.URL, path string) {
	if u == nil {
		return
	}
	body, err := c.fetch(ctx, u, gopher.KindBinary, "")
	if err != nil {
		c.post(message.FetchFailed{URL: u, Err: err})
		return
	}
	if err := writeFile(path, body); err != nil {
		events.Backend.Error("download", err)
		c.post(message.FetchFailed{URL: u, Err: err})
		return
	}
	c.post(message.BinaryWritten{Filename: path, Bytes: int64(len(body))})
}

// navigateBack re-displays the previous page from memory without a refetch.
func (c *Controller) navigateBack() {
	if len(c.back) == 0 {
		c.status("No previous page")
		return
	}
	prev := c.back[len(c.back)-1]
	c.back = c.back[:len(c.back)-1]
	c.current = &prev
	c.post(message.ContentReady{URL: prev.url, Content: prev.content, Kind: prev.kind})
}

func (c *Controller) savePage(filename string) {
	if c.current == nil {
		c.status(ErrNoPage.Error())
		return
	}
	if c.downloadDir == "" {
		c.status("Could not find download dir")
		return
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return
	}
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.downloadDir, path)
	}
	if err := writeFile(path, []byte(c.current.content)); err != nil {
		events.Backend.Error("save", err)
		c.status(fmt.Sprintf("Could not save page: %v", err))
		return
	}
	c.post(message.PageSaved{URL: c.current.url, Kind: c.current.kind, Filename: path})
}

func (c *Controller) addBookmark(req message.AddBookmark) {
	if req.URL == nil {
		return
	}
	address := req.URL.String()
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = address
	}
	if c.bookmarks == nil {
		c.post(message.BookmarkAdded{Bookmark: message.Bookmark{Title: title, URL: address, Tags: store.SplitTags(req.Tags)}})
		return
	}
	bm, err := c.bookmarks.Add(title, address, req.Tags)
	if err != nil {
		events.Backend.Error("bookmark", err)
		c.status(fmt.Sprintf("Could not save bookmark: %v", err))
		return
	}
	c.post(message.BookmarkAdded{Bookmark: toMessageBookmark(bm)})
}

func (c *Controller) clearHistory() {
	if c.history != nil {
		if err := c.history.Clear(); err != nil {
			events.Backend.Error("history", err)
			c.status(fmt.Sprintf("Could not clear history: %v", err))
			return
		}
	}
	c.post(message.HistoryCleared{})
}

// restore fills the History and Bookmarks menus from disk.
func (c *Controller) restore() {
	c.postBookmarks()
	if c.history == nil {
		return
	}
	visits, err := c.history.List()
	if err != nil {
		logging.Error(err)
		return
	}
	if over := len(visits) - menu.HistoryLimit; over > 0 {
		visits = visits[over:]
	}
	for _, v := range visits {
		c.post(message.HistoryAdded{Entry: message.HistoryEntry{Title: v.Title, URL: v.URL}})
	}
}

func (c *Controller) postBookmarks() {
	if c.bookmarks == nil {
		return
	}
	list, err := c.bookmarks.List()
	if err != nil {
		logging.Error(err)
		c.status(fmt.Sprintf("Could not read bookmarks: %v", err))
		return
	}
	out := make([]message.Bookmark, len(list))
	for i, bm := range list {
		out[i] = toMessageBookmark(bm)
	}
	c.post(message.BookmarksReloaded{Bookmarks: out})
}

func toMessageBookmark(bm store.Bookmark) message.Bookmark {
	return message.Bookmark{ID: bm.ID, Title: bm.Title, URL: bm.URL, Tags: bm.Tags}
}

func (c *Controller) status(text string) {
	c.post(message.Status{Text: text})
}

func (c *Controller) post(msg message.Inbound) {
	if c.queue == nil {
		return
	}
	if err := c.queue.Post(msg); err != nil {
		logging.Warn("backend: dropping %T: %v", msg, err)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
