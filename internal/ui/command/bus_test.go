package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/burrow/internal/message"
)

func TestSendPreservesOrder(t *testing.T) {
	ch := make(chan message.Outbound, 4)
	bus := New(ch)
	if err := bus.Send(message.NavigateBack{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bus.Send(message.ClearHistory{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := (<-ch).(message.NavigateBack); !ok {
		t.Fatal("expected NavigateBack first")
	}
	if _, ok := (<-ch).(message.ClearHistory); !ok {
		t.Fatal("expected ClearHistory second")
	}
}

func TestSendWithoutBackendFails(t *testing.T) {
	if err := New(nil).Send(message.NavigateBack{}); !errors.Is(err, ErrBackendGone) {
		t.Fatalf("expected ErrBackendGone, got %v", err)
	}
	var bus *Bus
	if err := bus.Send(message.NavigateBack{}); !errors.Is(err, ErrBackendGone) {
		t.Fatalf("expected ErrBackendGone from nil bus, got %v", err)
	}
}

func TestSendReportsBusyWithoutBlocking(t *testing.T) {
	ch := make(chan message.Outbound, 1)
	ch <- message.NavigateBack{}
	bus := New(ch).WithDone(make(chan struct{}))
	if err := bus.Send(message.ClearHistory{}); !errors.Is(err, ErrBackendBusy) {
		t.Fatalf("expected ErrBackendBusy, got %v", err)
	}
	if len(ch) != 1 {
		t.Fatalf("expected the queued request untouched, got %d", len(ch))
	}
}

func TestSendGivesUpWhenBackendStops(t *testing.T) {
	ch := make(chan message.Outbound)
	done := make(chan struct{})
	close(done)
	bus := New(ch).WithDone(done)
	if err := bus.Send(message.NavigateBack{}); !errors.Is(err, ErrBackendGone) {
		t.Fatalf("expected ErrBackendGone, got %v", err)
	}
}
