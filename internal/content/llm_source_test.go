package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/llm"
)

const goodResponse = `{
	"modules": [
		{
			"topic": "go-syntax",
			"title": "Go Syntax",
			"difficulty": 2,
			"estimated_hours": 3,
			"prerequisites": [],
			"optional": false,
			"tasks": [
				{"title": "Read the tour", "type": "read", "difficulty": 2, "estimated_minutes": 30},
				{"title": "Write a program", "type": "code", "difficulty": 2, "estimated_minutes": 30},
				{"title": "Syntax quiz", "type": "quiz", "difficulty": 2, "estimated_minutes": 15}
			]
		}
	]
}`

func testRequest() Request {
	return Request{
		Topic:      "go",
		Domain:     "go",
		SkillLevel: curriculum.SkillBeginner,
		Style:      curriculum.StyleMixed,
	}
}

func TestLLMSource_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodResponse)})
	src := NewLLMSource(mock, DefaultConfig())

	cands, err := src.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() = %v, want nil", err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	if cands[0].Topic != "go-syntax" {
		t.Errorf("Topic = %q, want go-syntax", cands[0].Topic)
	}
	if len(cands[0].Tasks) != 3 {
		t.Errorf("got %d tasks, want 3", len(cands[0].Tasks))
	}
}

func TestLLMSource_ProviderErrorMapsToUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	src := NewLLMSource(mock, DefaultConfig())

	_, err := src.Generate(context.Background(), testRequest())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Generate() = %v, want ErrUnavailable", err)
	}
}

func TestLLMSource_MalformedOutputMapsToUnavailable(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty set", `{"modules": []}`},
		{"missing topic", `{"modules": [{"topic": "", "title": "x", "difficulty": 2, "estimated_hours": 1, "prerequisites": [], "optional": false, "tasks": [{"title": "a", "type": "code", "difficulty": 2, "estimated_minutes": 10}]}]}`},
		{"bad difficulty", `{"modules": [{"topic": "t", "title": "x", "difficulty": 11, "estimated_hours": 1, "prerequisites": [], "optional": false, "tasks": [{"title": "a", "type": "code", "difficulty": 2, "estimated_minutes": 10}]}]}`},
		{"bad task type", `{"modules": [{"topic": "t", "title": "x", "difficulty": 2, "estimated_hours": 1, "prerequisites": [], "optional": false, "tasks": [{"title": "a", "type": "lecture", "difficulty": 2, "estimated_minutes": 10}]}]}`},
		{"not json", `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.body)})
			src := NewLLMSource(mock, DefaultConfig())

			_, err := src.Generate(context.Background(), testRequest())
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("Generate() = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestResilientSource_OpensAfterConsecutiveFailures(t *testing.T) {
	fake := &FakeSource{Err: errors.New("backend down")}
	src := NewResilientSource(fake, ResilientConfig{FailureThreshold: 2})

	ctx := context.Background()
	for range 2 {
		if _, err := src.Generate(ctx, testRequest()); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("Generate() = %v, want ErrUnavailable", err)
		}
	}
	calls := len(fake.CallTopics)

	// Breaker is open: the inner source must not be touched again.
	if _, err := src.Generate(ctx, testRequest()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Generate() = %v, want ErrUnavailable", err)
	}
	if len(fake.CallTopics) != calls {
		t.Errorf("inner source called %d times after breaker opened, want %d", len(fake.CallTopics), calls)
	}
}

func TestResilientSource_PassesThroughSuccess(t *testing.T) {
	fake := &FakeSource{ByTopic: map[string][]curriculum.ModuleCandidate{
		"go": {{Topic: "go-syntax", Title: "Go Syntax", Difficulty: 2, EstimatedHours: 3,
			Tasks: []curriculum.TaskCandidate{{Title: "a", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 30}}}},
	}}
	src := NewResilientSource(fake, DefaultResilientConfig())

	cands, err := src.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() = %v, want nil", err)
	}
	if len(cands) != 1 || cands[0].Topic != "go-syntax" {
		t.Errorf("unexpected candidates: %+v", cands)
	}
}
