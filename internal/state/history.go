package state

import "github.com/atomicstack/burrow/internal/message"

// HistoryStore keeps every history entry reported during the session, in
// the order received. The History menu only shows the newest few.
type HistoryStore interface {
	Entries() []message.HistoryEntry
	Append(message.HistoryEntry)
	Clear()
}

type historyStore struct {
	entries []message.HistoryEntry
}

func NewHistoryStore() HistoryStore {
	return &historyStore{}
}

func (s *historyStore) Entries() []message.HistoryEntry {
	return cloneHistory(s.entries)
}

func (s *historyStore) Append(entry message.HistoryEntry) {
	s.entries = append(s.entries, entry)
}

func (s *historyStore) Clear() {
	s.entries = nil
}

func cloneHistory(entries []message.HistoryEntry) []message.HistoryEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]message.HistoryEntry, len(entries))
	copy(dup, entries)
	return dup
}
