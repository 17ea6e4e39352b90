package gopher

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"
)

const (
	Scheme      = "gopher"
	DefaultPort = "70"
)

// ErrNoHost is returned for addresses that parse but name no server.
var ErrNoHost = errors.New("missing host")

// Kind selects how fetched content is presented.
type Kind int

const (
	KindListing Kind = iota
	KindText
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindListing:
		return "listing"
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NormalizeAddress turns user input into a gopher URL. Input without a
// scheme gets gopher:// prepended.
func NormalizeAddress(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrNoHost
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = Scheme + "://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, err
	}
	if u.Hostname() == "" {
		return nil, ErrNoHost
	}
	return u, nil
}

// TypeOf returns the item type encoded as the first path character, or Dir
// when the path is empty.
func TypeOf(u *url.URL) ItemType {
	if u == nil {
		return Unknown
	}
	p := strings.TrimPrefix(u.Path, "/")
	if p == "" {
		return Dir
	}
	r, _ := utf8.DecodeRuneInString(p)
	return ParseItemType(r)
}

// KindForURL infers the presentation kind from the address path.
func KindForURL(u *url.URL) Kind {
	t := TypeOf(u)
	switch {
	case t == File || t == Document || t == Html:
		return KindText
	case t.Download():
		return KindBinary
	default:
		return KindListing
	}
}

// Selector extracts the selector a server expects from a gopher URL: the
// path after the leading type character.
func Selector(u *url.URL) string {
	if u == nil {
		return ""
	}
	p := strings.TrimPrefix(u.Path, "/")
	if p == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(p)
	return p[size:]
}

// HostPort returns the dial address for u, defaulting the port.
func HostPort(u *url.URL) string {
	port := u.Port()
	if port == "" {
		port = DefaultPort
	}
	return net.JoinHostPort(u.Hostname(), port)
}

// FilenameFromURL returns the last path segment of u, or "download.bin"
// when the path has no segments.
func FilenameFromURL(u *url.URL) string {
	if name := selectorBase(u); name != "" {
		return name
	}
	return "download.bin"
}

func selectorBase(u *url.URL) string {
	p := strings.TrimRight(Selector(u), "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// SaveAsName proposes a local filename for saving the page at u.
func SaveAsName(u *url.URL) string {
	name := selectorBase(u)
	if name == "" || name == "/" {
		name = "download"
	}
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	return name
}
