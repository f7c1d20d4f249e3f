package performance

// TriggerKind identifies why an adaptation is warranted. The set is
// closed: the adaptation engine switches exhaustively over it.
type TriggerKind int

const (
	// ConsecutiveFailure fires when a learner fails two tasks in a
	// row on the same topic.
	ConsecutiveFailure TriggerKind = iota
	// ConsecutiveSuccess fires when a learner passes three tasks in a
	// row on the same topic.
	ConsecutiveSuccess
	// LowCompletionRate fires when a full window shows a success rate
	// below the low threshold.
	LowCompletionRate
	// HighCompletionRate fires when a full window shows a success rate
	// above the high threshold.
	HighCompletionRate
)

func (k TriggerKind) String() string {
	switch k {
	case ConsecutiveFailure:
		return "consecutive_failure"
	case ConsecutiveSuccess:
		return "consecutive_success"
	case LowCompletionRate:
		return "low_rate"
	case HighCompletionRate:
		return "high_rate"
	default:
		return "unknown"
	}
}

// Trigger is an adaptation signal for a single topic. TaskID is the
// task whose outcome fired the trigger.
type Trigger struct {
	Kind   TriggerKind
	Topic  string
	TaskID string
	Rate   float64
}
