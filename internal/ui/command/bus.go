package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/atomicstack/burrow/internal/message"
)

// ErrBackendGone is returned once the backend has stopped accepting requests.
var ErrBackendGone = errors.New("backend is no longer accepting requests")

// ErrBackendBusy is returned when the backend's request queue is full. The
// request is dropped and the caller may retry later.
var ErrBackendBusy = errors.New("backend busy")

// Bus delivers outbound requests to the backend in the order they are sent.
type Bus struct {
	requests chan<- message.Outbound
	done     <-chan struct{}
}

// New wraps the backend's request channel. A nil channel yields a bus whose
// sends always fail.
func New(requests chan<- message.Outbound) *Bus {
	return &Bus{requests: requests}
}

// WithDone returns a copy of the bus that gives up once done is closed.
func (b *Bus) WithDone(done <-chan struct{}) *Bus {
	return &Bus{requests: b.requests, done: done}
}

// Send hands req to the backend without waiting. A full queue yields
// ErrBackendBusy; a stopped backend yields ErrBackendGone.
func (b *Bus) Send(req message.Outbound) error {
	kind := fmt.Sprintf("%T", req)
	if b == nil || b.requests == nil {
		events.Command.Fail(kind, ErrBackendGone)
		return ErrBackendGone
	}
	select {
	case <-b.done:
		events.Command.Fail(kind, ErrBackendGone)
		return ErrBackendGone
	default:
	}
	select {
	case b.requests <- req:
		events.Command.Send(kind)
		return nil
	default:
		events.Command.Fail(kind, ErrBackendBusy)
		return ErrBackendBusy
	}
}
