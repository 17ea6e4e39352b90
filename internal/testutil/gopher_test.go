package testutil

import (
	"bufio"
	"io"
	"net"
	"testing"
)

func TestGopherServerAnswersKnownAndUnknownSelectors(t *testing.T) {
	srv := NewGopherServer(t, map[string]string{"/hello": "hi\r\n.\r\n"})
	for _, tc := range []struct {
		request string
		prefix  string
	}{
		{"/hello", "hi"},
		{"/missing", "3"},
	} {
		conn, err := net.Dial("tcp", srv.Addr())
		if err != nil {
			t.Fatalf("dial failed: %v", err)
		}
		if _, err := conn.Write([]byte(tc.request + "\r\n")); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		body, err := io.ReadAll(bufio.NewReader(conn))
		conn.Close()
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(body) < len(tc.prefix) || string(body[:len(tc.prefix)]) != tc.prefix {
			t.Fatalf("unexpected response for %s: %q", tc.request, body)
		}
	}
	if got := srv.Requests(); len(got) != 2 || got[0] != "/hello" {
		t.Fatalf("unexpected request log %#v", got)
	}
}
