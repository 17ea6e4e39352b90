package events

import "github.com/atomicstack/burrow/internal/logging"

type DialogTracer struct{}

type dialogReason string

const (
	DialogReasonEscape dialogReason = "escape"
	DialogReasonEmpty  dialogReason = "empty"
)

var Dialog = DialogTracer{}

func (DialogTracer) Open(kind, target string) {
	logging.Trace("dialog.open", map[string]interface{}{"kind": kind, "target": target})
}

func (DialogTracer) Replace(kind string) {
	logging.Trace("dialog.replace", map[string]interface{}{"kind": kind})
}

func (DialogTracer) Submit(kind, value string) {
	logging.Trace("dialog.submit", map[string]interface{}{"kind": kind, "value": value})
}

func (DialogTracer) Cancel(kind string, reason dialogReason) {
	logging.Trace("dialog.cancel", map[string]interface{}{"kind": kind, "reason": string(reason)})
}
