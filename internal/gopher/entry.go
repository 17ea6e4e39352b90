package gopher

import (
	"net"
	"net/url"
	"strings"
)

// Entry is one classified line of a listing.
type Entry struct {
	Type     ItemType
	Label    string
	Selector string
	Host     string
	Port     string
	// URL is nil for entries that carry no resource address.
	URL *url.URL
}

// ParseEntry classifies a single listing line. It never fails: lines that do
// not carry the four tab separated fields become Unknown entries whose label
// is the raw line.
func ParseEntry(line string) Entry {
	line = strings.TrimRight(line, "\r")
	fields := strings.Split(line, "\t")
	if len(fields) < 4 || fields[0] == "" {
		return Entry{Type: Unknown, Label: line}
	}
	code, label := splitCode(fields[0])
	entry := Entry{
		Type:     ParseItemType(code),
		Label:    label,
		Selector: fields[1],
		Host:     strings.TrimSpace(fields[2]),
		Port:     strings.TrimSpace(fields[3]),
	}
	if entry.Type != Info && entry.Type != Unknown && entry.Host != "" {
		entry.URL = EntryURL(entry.Type, entry.Selector, entry.Host, entry.Port)
	}
	return entry
}

func splitCode(field string) (rune, string) {
	for i, r := range field {
		return r, field[i+len(string(r)):]
	}
	return 0, ""
}

// EntryURL builds gopher://host:port/<type><selector>.
func EntryURL(t ItemType, selector, host, port string) *url.URL {
	if port == "" {
		port = DefaultPort
	}
	return &url.URL{
		Scheme: Scheme,
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + t.Code() + selector,
	}
}

// Address returns the entry URL as a string, or "" when the entry has none.
func (e Entry) Address() string {
	if e.URL == nil {
		return ""
	}
	return e.URL.String()
}

// Display renders the tag and label as shown in a listing.
func (e Entry) Display() string {
	return e.Type.Tag() + e.Label
}
