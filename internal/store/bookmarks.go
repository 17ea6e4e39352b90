package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Bookmark is one persisted bookmark.
type Bookmark struct {
	ID    string    `toml:"id"`
	Title string    `toml:"title"`
	URL   string    `toml:"url"`
	Tags  []string  `toml:"tags"`
	Added time.Time `toml:"added"`
}

type bookmarkFile struct {
	Bookmarks []Bookmark `toml:"bookmark"`
}

// Bookmarks is the bookmark file, shared between processes.
type Bookmarks struct {
	path        string
	lockTimeout time.Duration
	now         func() time.Time
}

// NewBookmarks opens the bookmark store at path. The file is created lazily.
func NewBookmarks(path string) *Bookmarks {
	return &Bookmarks{path: path, lockTimeout: defaultLockTimeout, now: time.Now}
}

// Path returns the file backing the store.
func (b *Bookmarks) Path() string {
	return b.path
}

// List returns all bookmarks, oldest first.
func (b *Bookmarks) List() ([]Bookmark, error) {
	var out []Bookmark
	err := withLock(b.path, b.lockTimeout, func() error {
		file, err := b.read()
		if err != nil {
			return err
		}
		out = file.Bookmarks
		return nil
	})
	return out, err
}

// Add appends a bookmark. tags is a comma separated list; blanks are dropped.
func (b *Bookmarks) Add(title, url, tags string) (Bookmark, error) {
	bm := Bookmark{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(title),
		URL:   url,
		Tags:  SplitTags(tags),
		Added: b.now().UTC().Truncate(time.Second),
	}
	err := withLock(b.path, b.lockTimeout, func() error {
		file, err := b.read()
		if err != nil {
			return err
		}
		file.Bookmarks = append(file.Bookmarks, bm)
		return b.write(file)
	})
	if err != nil {
		return Bookmark{}, err
	}
	return bm, nil
}

// Remove deletes the bookmark with id and reports whether it existed.
func (b *Bookmarks) Remove(id string) (bool, error) {
	removed := false
	err := withLock(b.path, b.lockTimeout, func() error {
		file, err := b.read()
		if err != nil {
			return err
		}
		kept := file.Bookmarks[:0]
		for _, bm := range file.Bookmarks {
			if bm.ID == id {
				removed = true
				continue
			}
			kept = append(kept, bm)
		}
		if !removed {
			return nil
		}
		file.Bookmarks = kept
		return b.write(file)
	})
	return removed, err
}

func (b *Bookmarks) read() (bookmarkFile, error) {
	var file bookmarkFile
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, fmt.Errorf("read bookmarks: %w", err)
	}
	if _, err := toml.Decode(string(data), &file); err != nil {
		return file, fmt.Errorf("parse bookmarks %s: %w", b.path, err)
	}
	return file, nil
}

func (b *Bookmarks) write(file bookmarkFile) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	return writeAtomic(b.path, buf.Bytes())
}

// SplitTags turns "a, b,,c" into [a b c].
func SplitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
