package events

import "github.com/thesn0wdev/portfolio/internal/logging"

type MotionTracer struct{}

var Motion = MotionTracer{}

func (MotionTracer) Start(elements int, fps int) {
	logging.Trace("motion.start", map[string]interface{}{"elements": elements, "fps": fps})
}

// Disabled records why no frame loop was scheduled.
func (MotionTracer) Disabled(reason string) {
	logging.Trace("motion.disabled", map[string]interface{}{"reason": reason})
}

func (MotionTracer) Stop(cancelled bool) {
	logging.Trace("motion.stop", map[string]interface{}{"cancelled": cancelled})
}
