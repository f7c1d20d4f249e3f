package performance

import "time"

// TopicStats is the rolling projection for one topic. It is derived
// state: never persisted on its own, always rebuildable by replaying
// the outcome log through an Analyzer.
type TopicStats struct {
	Topic                string
	ConsecutiveFailures  int
	ConsecutiveSuccesses int
	RollingSuccessRate   float64
	WindowCount          int
	LastUpdated          time.Time
}

// window is a fixed-size FIFO of pass/fail outcomes.
type window struct {
	outcomes []bool
	size     int
}

func newWindow(size int) *window {
	return &window{size: size}
}

func (w *window) push(passed bool) {
	w.outcomes = append(w.outcomes, passed)
	if len(w.outcomes) > w.size {
		w.outcomes = w.outcomes[1:]
	}
}

func (w *window) full() bool {
	return len(w.outcomes) >= w.size
}

// successRate is passes over however much of the window is populated.
func (w *window) successRate() float64 {
	if len(w.outcomes) == 0 {
		return 0
	}
	passes := 0
	for _, p := range w.outcomes {
		if p {
			passes++
		}
	}
	return float64(passes) / float64(len(w.outcomes))
}
