package ui

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/atomicstack/burrow/internal/logging"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/atomicstack/burrow/internal/message"
	tea "github.com/charmbracelet/bubbletea"
)

// Loop is the render loop the pump advances after each drain.
type Loop interface {
	Running() bool
	Step()
}

// Pump drains the inbound queue and applies every message before the loop
// renders. Once the loop stops running the pump stops for good.
type Pump struct {
	queue   *message.Queue
	apply   func(message.Inbound)
	loop    Loop
	stopped bool
}

// NewPump wires a queue to the function that applies its messages.
func NewPump(queue *message.Queue, apply func(message.Inbound), loop Loop) *Pump {
	return &Pump{queue: queue, apply: apply, loop: loop}
}

// Tick drains the queue in arrival order, then advances the loop by one step.
// It returns false once the loop has stopped.
func (p *Pump) Tick() bool {
	if p.stopped {
		return false
	}
	if p.loop == nil || !p.loop.Running() {
		p.stopped = true
		events.Pump.Stop()
		return false
	}
	drained := p.Drain()
	p.loop.Step()
	events.Pump.Tick(drained)
	return true
}

// Drain applies every queued message without waiting and reports how many
// were applied.
func (p *Pump) Drain() int {
	n := 0
	for {
		msg, ok := p.queue.TryReceive()
		if !ok {
			return n
		}
		p.apply(msg)
		n++
	}
}

// Stopped reports whether the pump reached its terminal state.
func (p *Pump) Stopped() bool {
	return p.stopped
}

type inboundMsg struct {
	msg message.Inbound
}

type queueClosedMsg struct{}

// waitForInbound blocks for the first queued message. Only one waiter is
// armed at a time so the queue keeps a single consumer.
func waitForInbound(q *message.Queue) tea.Cmd {
	if q == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := q.Receive()
		if !ok {
			return queueClosedMsg{}
		}
		return inboundMsg{msg: msg}
	}
}

func (m *Model) handleInboundMsg(msg tea.Msg) tea.Cmd {
	in, ok := msg.(inboundMsg)
	if !ok {
		return nil
	}
	m.applyInbound(in.msg)
	if !m.pump.Tick() {
		return nil
	}
	return waitForInbound(m.queue)
}

func (m *Model) handleQueueClosedMsg(tea.Msg) tea.Cmd {
	if m.quitting {
		return nil
	}
	m.fatal = errors.New("inbound queue closed while the UI was running")
	logging.Error(m.fatal)
	return m.quit()
}

// applyInbound dispatches one message to its handler. Commands it produces
// are released by finishUpdate.
func (m *Model) applyInbound(msg message.Inbound) {
	if msg == nil {
		return
	}
	t := reflect.TypeOf(msg)
	name := fmt.Sprintf("%T", msg)
	handler, ok := m.inbound[t]
	if !ok {
		events.Pump.Unhandled(name)
		return
	}
	events.Pump.Dispatch(name)
	m.later(handler(msg))
}

// post enqueues a message for the pump. A full queue is retried off the
// render loop so Update never blocks.
func (m *Model) post(msg message.Inbound) tea.Cmd {
	if m.queue.TryPost(msg) {
		return nil
	}
	queue := m.queue
	return func() tea.Msg {
		if err := queue.Post(msg); err != nil {
			logging.Error(err)
		}
		return nil
	}
}
