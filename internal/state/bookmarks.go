package state

import "github.com/atomicstack/burrow/internal/message"

type BookmarkStore interface {
	Entries() []message.Bookmark
	SetEntries([]message.Bookmark)
	Append(message.Bookmark)
}

type bookmarkStore struct {
	entries []message.Bookmark
}

func NewBookmarkStore() BookmarkStore {
	return &bookmarkStore{}
}

func (s *bookmarkStore) Entries() []message.Bookmark {
	return cloneBookmarks(s.entries)
}

func (s *bookmarkStore) SetEntries(entries []message.Bookmark) {
	s.entries = cloneBookmarks(entries)
}

func (s *bookmarkStore) Append(b message.Bookmark) {
	s.entries = append(s.entries, b)
}

func cloneBookmarks(entries []message.Bookmark) []message.Bookmark {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]message.Bookmark, len(entries))
	copy(dup, entries)
	return dup
}
