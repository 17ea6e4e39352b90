package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultHistoryLimit bounds the number of persisted visits.
const DefaultHistoryLimit = 100

// Visit is one persisted history entry.
type Visit struct {
	Title     string    `toml:"title"`
	URL       string    `toml:"url"`
	VisitedAt time.Time `toml:"visited_at"`
}

type historyFile struct {
	Visits []Visit `toml:"visit"`
}

// History is the persisted navigation history, oldest first.
type History struct {
	path        string
	limit       int
	lockTimeout time.Duration
	now         func() time.Time
}

// NewHistory opens the history store at path keeping at most limit visits.
func NewHistory(path string, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{path: path, limit: limit, lockTimeout: defaultLockTimeout, now: time.Now}
}

// List returns the stored visits, oldest first.
func (h *History) List() ([]Visit, error) {
	var out []Visit
	err := withLock(h.path, h.lockTimeout, func() error {
		file, err := h.read()
		if err != nil {
			return err
		}
		out = file.Visits
		return nil
	})
	return out, err
}

// Add records a visit, trimming the oldest entries past the limit.
func (h *History) Add(title, url string) (Visit, error) {
	v := Visit{Title: title, URL: url, VisitedAt: h.now().UTC().Truncate(time.Second)}
	err := withLock(h.path, h.lockTimeout, func() error {
		file, err := h.read()
		if err != nil {
			return err
		}
		file.Visits = append(file.Visits, v)
		if over := len(file.Visits) - h.limit; over > 0 {
			file.Visits = file.Visits[over:]
		}
		return h.write(file)
	})
	if err != nil {
		return Visit{}, err
	}
	return v, nil
}

// Clear removes every visit.
func (h *History) Clear() error {
	return withLock(h.path, h.lockTimeout, func() error {
		return h.write(historyFile{})
	})
}

func (h *History) read() (historyFile, error) {
	var file historyFile
	data, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, fmt.Errorf("read history: %w", err)
	}
	if _, err := toml.Decode(string(data), &file); err != nil {
		return file, fmt.Errorf("parse history %s: %w", h.path, err)
	}
	return file, nil
}

func (h *History) write(file historyFile) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return writeAtomic(h.path, buf.Bytes())
}
