package ui

import (
	"testing"

	"github.com/atomicstack/burrow/internal/message"
)

type fakeLoop struct {
	running bool
	steps   int
}

func (l *fakeLoop) Running() bool { return l.running }
func (l *fakeLoop) Step()         { l.steps++ }

func TestPumpDrainsInArrivalOrderThenStepsOnce(t *testing.T) {
	q := message.NewQueue(8)
	loop := &fakeLoop{running: true}
	var applied []string
	p := NewPump(q, func(msg message.Inbound) {
		if s, ok := msg.(message.Status); ok {
			applied = append(applied, s.Text)
		}
	}, loop)

	for _, text := range []string{"one", "two", "three"} {
		if err := q.Post(message.Status{Text: text}); err != nil {
			t.Fatalf("post: %v", err)
		}
	}
	if !p.Tick() {
		t.Fatalf("expected tick to report a running loop")
	}
	if loop.steps != 1 {
		t.Fatalf("expected exactly one step, got %d", loop.steps)
	}
	if len(applied) != 3 || applied[0] != "one" || applied[2] != "three" {
		t.Fatalf("unexpected apply order: %v", applied)
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
}

func TestPumpTickOnEmptyQueueStillSteps(t *testing.T) {
	loop := &fakeLoop{running: true}
	p := NewPump(message.NewQueue(1), func(message.Inbound) {}, loop)
	if !p.Tick() {
		t.Fatalf("expected running tick")
	}
	if loop.steps != 1 {
		t.Fatalf("expected a step on an empty queue, got %d", loop.steps)
	}
}

func TestPumpStopsForGoodOnceLoopEnds(t *testing.T) {
	q := message.NewQueue(4)
	loop := &fakeLoop{running: false}
	applied := 0
	p := NewPump(q, func(message.Inbound) { applied++ }, loop)
	_ = q.Post(message.Status{Text: "late"})

	if p.Tick() {
		t.Fatalf("expected tick to fail after the loop stopped")
	}
	if !p.Stopped() {
		t.Fatalf("expected pump to be stopped")
	}
	loop.running = true
	if p.Tick() {
		t.Fatalf("stopped pump must not resume")
	}
	if applied != 0 || loop.steps != 0 {
		t.Fatalf("stopped pump applied %d messages and stepped %d times", applied, loop.steps)
	}
}

func TestWaitForInboundReportsClosedQueue(t *testing.T) {
	q := message.NewQueue(1)
	q.Close()
	msg := waitForInbound(q)()
	if _, ok := msg.(queueClosedMsg); !ok {
		t.Fatalf("expected queueClosedMsg, got %T", msg)
	}
}

func TestWaitForInboundDeliversQueuedMessage(t *testing.T) {
	q := message.NewQueue(1)
	_ = q.Post(message.Status{Text: "hello"})
	msg := waitForInbound(q)()
	in, ok := msg.(inboundMsg)
	if !ok {
		t.Fatalf("expected inboundMsg, got %T", msg)
	}
	if s, ok := in.msg.(message.Status); !ok || s.Text != "hello" {
		t.Fatalf("unexpected payload %#v", in.msg)
	}
}

func TestInboundMsgAppliesAndDrainsInOneStep(t *testing.T) {
	m, _ := newTestModel(t)
	_ = m.queue.Post(message.Status{Text: "second"})
	before := m.steps

	_, cmd := m.Update(inboundMsg{msg: message.Status{Text: "first"}})
	if cmd == nil {
		t.Fatalf("expected the waiter to be re-armed")
	}
	if m.steps != before+1 {
		t.Fatalf("expected one step, got %d", m.steps-before)
	}
	if m.Status() != "second" {
		t.Fatalf("expected status from the last drained message, got %q", m.Status())
	}
}

func TestQueueClosedWhileRunningIsFatal(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(queueClosedMsg{})
	if m.Fatal() == nil {
		t.Fatalf("expected a fatal error")
	}
	if m.Running() {
		t.Fatalf("expected the model to stop")
	}
}
