package testutil

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"testing"
)

// GopherServer is a loopback gopher server answering from a fixed route table.
type GopherServer struct {
	Host string
	Port string

	listener net.Listener
	mu       sync.Mutex
	routes   map[string]string
	requests []string
	wg       sync.WaitGroup
}

// NewGopherServer starts a server on 127.0.0.1 that replies to each
// request line with routes[request]. Unknown selectors get a type 3 error
// listing. The server stops when the test finishes.
func NewGopherServer(t *testing.T, routes map[string]string) *GopherServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	host, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("failed to split listener address: %v", err)
	}
	srv := &GopherServer{
		Host:     host,
		Port:     port,
		listener: ln,
		routes:   make(map[string]string, len(routes)),
	}
	for k, v := range routes {
		srv.routes[k] = v
	}
	srv.wg.Add(1)
	go srv.serve()
	t.Cleanup(func() {
		_ = ln.Close()
		srv.wg.Wait()
	})
	return srv
}

// Addr returns host:port.
func (s *GopherServer) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// URL returns a gopher URL for a type code and selector on this server.
func (s *GopherServer) URL(code, selector string) string {
	return "gopher://" + s.Addr() + "/" + code + selector
}

// Requests returns every request line received so far.
func (s *GopherServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Set replaces the response for a request line.
func (s *GopherServer) Set(request, response string) {
	s.mu.Lock()
	s.routes[request] = response
	s.mu.Unlock()
}

func (s *GopherServer) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		go s.handle(conn)
	}
}

func (s *GopherServer) handle(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return
	}
	request := strings.TrimRight(line, "\r\n")
	s.mu.Lock()
	s.requests = append(s.requests, request)
	response, ok := s.routes[request]
	s.mu.Unlock()
	if !ok {
		response = "3'" + request + "' not found\terror\terror.host\t1\r\n.\r\n"
	}
	_, _ = conn.Write([]byte(response))
}
