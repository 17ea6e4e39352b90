package events

import "github.com/atomicstack/burrow/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

type MenubarTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
	Menubar = MenubarTracer{}
)

func (UITracer) Select(index int, itemType, label, address string) {
	logging.Trace("listing.select", map[string]interface{}{
		"index":   index,
		"type":    itemType,
		"label":   label,
		"address": address,
	})
}

func (UITracer) Open(address, kind string) {
	logging.Trace("nav.open", map[string]interface{}{"address": address, "kind": kind})
}

func (UITracer) Back() {
	logging.Trace("nav.back", nil)
}

func (UITracer) Pane(pane string) {
	logging.Trace("view.pane", map[string]interface{}{"pane": pane})
}

func (UITracer) Status(text string) {
	logging.Trace("status.set", map[string]interface{}{"text": text})
}

func (UITracer) InvalidURL(raw string, err error) {
	logging.Trace("nav.invalid-url", map[string]interface{}{"raw": raw, "error": err.Error()})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (CommandTracer) Send(kind string) {
	logging.Trace("command.send", map[string]interface{}{"msg": kind})
}

func (CommandTracer) Fail(kind string, err error) {
	logging.Trace("command.fail", map[string]interface{}{"msg": kind, "error": err.Error()})
}

func (MenubarTracer) Open(menuID string) {
	logging.Trace("menubar.open", map[string]interface{}{"menu": menuID})
}

func (MenubarTracer) Activate(menuID, itemID, label string) {
	logging.Trace("menubar.activate", map[string]interface{}{"menu": menuID, "item": itemID, "label": label})
}

func (MenubarTracer) Close() {
	logging.Trace("menubar.close", nil)
}
