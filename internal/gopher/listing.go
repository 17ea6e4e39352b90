package gopher

import "strings"

// Listing is a classified directory payload.
type Listing struct {
	Title   string
	Entries []Entry
}

// ParseListing classifies every line of payload up to the "." terminator.
// When the first line starts with "/", its first field also becomes the
// listing title; the line itself is still kept as an entry so that entry i
// always corresponds to payload line i.
func ParseListing(payload string) Listing {
	lines := splitLines(payload)
	var listing Listing
	listing.Entries = make([]Entry, 0, len(lines))
	for i, line := range lines {
		if line == "." {
			break
		}
		if i == 0 && strings.HasPrefix(line, "/") {
			listing.Title = titleFrom(line)
		}
		listing.Entries = append(listing.Entries, ParseEntry(line))
	}
	return listing
}

func titleFrom(line string) string {
	if idx := strings.IndexByte(line, '\t'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// splitLines breaks payload on LF, tolerating CRLF, and drops the empty
// remainder after a trailing newline.
func splitLines(payload string) []string {
	if payload == "" {
		return nil
	}
	payload = strings.ReplaceAll(payload, "\r\n", "\n")
	payload = strings.TrimSuffix(payload, "\n")
	return strings.Split(payload, "\n")
}

// TextLines splits a text payload for display, honouring the "." terminator
// and undoing dot-stuffing.
func TextLines(payload string) []string {
	lines := splitLines(payload)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "." {
			break
		}
		if strings.HasPrefix(line, "..") {
			line = line[1:]
		}
		out = append(out, line)
	}
	return out
}
