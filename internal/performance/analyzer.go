package performance

import (
	"github.com/pathwise/pathwise/internal/curriculum"
)

// Config tunes the analyzer thresholds.
type Config struct {
	// WindowSize is the number of recent outcomes kept per topic.
	WindowSize int
	// FailureStreak is the consecutive-failure count that fires a
	// ConsecutiveFailure trigger.
	FailureStreak int
	// SuccessStreak is the consecutive-success count that fires a
	// ConsecutiveSuccess trigger.
	SuccessStreak int
	// LowRate and HighRate bound the rolling success rate. Both only
	// apply once a topic's window is full.
	LowRate  float64
	HighRate float64
}

// DefaultConfig matches the tuned production thresholds.
func DefaultConfig() Config {
	return Config{
		WindowSize:    10,
		FailureStreak: 2,
		SuccessStreak: 3,
		LowRate:       0.60,
		HighRate:      0.90,
	}
}

// Analyzer consumes performance records and maintains per-topic
// rolling stats. It is not safe for concurrent use; callers serialize
// access per learner.
type Analyzer struct {
	config  Config
	windows map[string]*window
	stats   map[string]*TopicStats
}

func NewAnalyzer(config Config) *Analyzer {
	if config.WindowSize <= 0 {
		config.WindowSize = DefaultConfig().WindowSize
	}
	if config.FailureStreak <= 0 {
		config.FailureStreak = DefaultConfig().FailureStreak
	}
	if config.SuccessStreak <= 0 {
		config.SuccessStreak = DefaultConfig().SuccessStreak
	}
	if config.LowRate <= 0 {
		config.LowRate = DefaultConfig().LowRate
	}
	if config.HighRate <= 0 {
		config.HighRate = DefaultConfig().HighRate
	}
	return &Analyzer{
		config:  config,
		windows: make(map[string]*window),
		stats:   make(map[string]*TopicStats),
	}
}

// Record folds one outcome into the topic's stats and reports at most
// one trigger. When several conditions hold at once the most urgent
// wins: failure streaks first, then success streaks, then the
// window-rate bounds.
func (a *Analyzer) Record(rec curriculum.PerformanceRecord) *Trigger {
	w, ok := a.windows[rec.Topic]
	if !ok {
		w = newWindow(a.config.WindowSize)
		a.windows[rec.Topic] = w
	}
	s, ok := a.stats[rec.Topic]
	if !ok {
		s = &TopicStats{Topic: rec.Topic}
		a.stats[rec.Topic] = s
	}

	w.push(rec.Passed)
	if rec.Passed {
		s.ConsecutiveSuccesses++
		s.ConsecutiveFailures = 0
	} else {
		s.ConsecutiveFailures++
		s.ConsecutiveSuccesses = 0
	}
	s.RollingSuccessRate = w.successRate()
	s.WindowCount = len(w.outcomes)
	s.LastUpdated = rec.Timestamp

	trig := Trigger{Topic: rec.Topic, TaskID: rec.TaskID, Rate: s.RollingSuccessRate}
	switch {
	case s.ConsecutiveFailures >= a.config.FailureStreak:
		trig.Kind = ConsecutiveFailure
	case s.ConsecutiveSuccesses >= a.config.SuccessStreak:
		trig.Kind = ConsecutiveSuccess
	case w.full() && s.RollingSuccessRate < a.config.LowRate:
		trig.Kind = LowCompletionRate
	case w.full() && s.RollingSuccessRate > a.config.HighRate:
		trig.Kind = HighCompletionRate
	default:
		return nil
	}
	return &trig
}

// StatsFor returns a copy of the topic's current stats, or nil when
// the topic has no recorded outcomes.
func (a *Analyzer) StatsFor(topic string) *TopicStats {
	s, ok := a.stats[topic]
	if !ok {
		return nil
	}
	out := *s
	return &out
}

// Topics lists every topic with at least one recorded outcome.
func (a *Analyzer) Topics() []string {
	out := make([]string, 0, len(a.stats))
	for t := range a.stats {
		out = append(out, t)
	}
	return out
}

// Replay rebuilds the analyzer state from an outcome log. Triggers
// fired during replay are discarded; only the final stats matter.
func (a *Analyzer) Replay(recs []curriculum.PerformanceRecord) {
	a.windows = make(map[string]*window)
	a.stats = make(map[string]*TopicStats)
	for _, rec := range recs {
		a.Record(rec)
	}
}
