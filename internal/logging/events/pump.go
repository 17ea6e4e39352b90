package events

import "github.com/atomicstack/burrow/internal/logging"

type PumpTracer struct{}

var Pump = PumpTracer{}

func (PumpTracer) Tick(drained int) {
	logging.Trace("pump.tick", map[string]interface{}{"drained": drained})
}

func (PumpTracer) Dispatch(msgType string) {
	logging.Trace("pump.dispatch", map[string]interface{}{"msg": msgType})
}

func (PumpTracer) Unhandled(msgType string) {
	logging.Trace("pump.unhandled", map[string]interface{}{"msg": msgType})
}

func (PumpTracer) Stop() {
	logging.Trace("pump.stop", nil)
}
