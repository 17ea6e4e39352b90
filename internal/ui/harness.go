package ui

import (
	"github.com/atomicstack/burrow/internal/message"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// maxHarnessSteps bounds command chains so a self-rearming command cannot
// hang a test.
const maxHarnessSteps = 256

// Harness drives the UI model programmatically for integration tests. It
// stands in for the inbound waiter by pumping the queue after every message.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model, executes any returned commands
// and drains whatever they queued.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.update(msg)
	h.Pump()
}

// Post enqueues an inbound message and pumps it through the model.
func (h *Harness) Post(msg message.Inbound) {
	if h.model == nil {
		return
	}
	if err := h.model.queue.Post(msg); err != nil {
		return
	}
	h.Pump()
}

// Pump ticks the model's pump until the queue is empty.
func (h *Harness) Pump() {
	for i := 0; i < maxHarnessSteps; i++ {
		if h.model.queue.Len() == 0 {
			return
		}
		if !h.model.pump.Tick() {
			return
		}
		h.runAll(h.model.takePending())
	}
}

func (h *Harness) update(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) runAll(cmds []tea.Cmd) {
	for _, cmd := range cmds {
		h.processCmd(cmd)
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for i := 0; cmd != nil && i < maxHarnessSteps; i++ {
		msg := cmd()
		switch m := msg.(type) {
		case nil, tea.QuitMsg, spinner.TickMsg:
			return
		case tea.BatchMsg:
			for _, c := range m {
				h.processCmd(c)
			}
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
