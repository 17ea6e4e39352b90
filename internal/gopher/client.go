package gopher

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"time"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxBytes = 64 << 20
)

// Client fetches resources from gopher servers.
type Client struct {
	Timeout  time.Duration
	MaxBytes int64
	dialer   net.Dialer
}

// NewClient returns a client with the given per-request timeout. Zero uses
// the default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{Timeout: timeout, MaxBytes: defaultMaxBytes}
}

// Fetch sends the selector of u (plus a tab separated query when non-empty)
// and reads the response until the server closes the connection.
func (c *Client) Fetch(ctx context.Context, u *url.URL, query string) ([]byte, error) {
	if u == nil || u.Hostname() == "" {
		return nil, ErrNoHost
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(ctx, "tcp", HostPort(u))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.Host, err)
	}
	defer conn.Close()
	// Unblock reads when the caller gives up before the deadline.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	request := Selector(u)
	if query != "" {
		request += "\t" + query
	}
	if _, err := io.WriteString(conn, request+"\r\n"); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	limit := c.MaxBytes
	if limit <= 0 {
		limit = defaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(conn, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", u.Host, limit)
	}
	return body, nil
}
