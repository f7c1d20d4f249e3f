package content

import (
	"context"
	"sync"

	"github.com/pathwise/pathwise/internal/curriculum"
)

// FakeSource is a deterministic Source for tests: canned candidate sets
// keyed by topic, plus a forced error switch.
type FakeSource struct {
	mu         sync.Mutex
	ByTopic    map[string][]curriculum.ModuleCandidate
	Err        error
	CallTopics []string
}

func (f *FakeSource) Generate(ctx context.Context, req Request) ([]curriculum.ModuleCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CallTopics = append(f.CallTopics, req.Topic)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}
	if cands, ok := f.ByTopic[req.Topic]; ok {
		return cands, nil
	}
	return nil, ErrUnavailable
}
