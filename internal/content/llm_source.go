package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/llm"
)

// LLMSource implements Source using the LLM provider abstraction.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// Config bounds LLM candidate generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns standard generation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.3,
	}
}

// NewLLMSource creates an LLM-backed content source.
func NewLLMSource(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// candidatesOutput is the raw response shape before validation.
type candidatesOutput struct {
	Modules []moduleOutput `json:"modules"`
}

type moduleOutput struct {
	Topic          string       `json:"topic"`
	Title          string       `json:"title"`
	Difficulty     int          `json:"difficulty"`
	EstimatedHours float64      `json:"estimated_hours"`
	Prerequisites  []string     `json:"prerequisites"`
	Optional       bool         `json:"optional"`
	Tasks          []taskOutput `json:"tasks"`
}

type taskOutput struct {
	Title            string `json:"title"`
	Type             string `json:"type"`
	Difficulty       int    `json:"difficulty"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// Generate requests module candidates from the model. Any provider
// error or malformed candidate set maps to ErrUnavailable so the
// builder's fallback logic has a single error to branch on.
func (s *LLMSource) Generate(ctx context.Context, req Request) ([]curriculum.ModuleCandidate, error) {
	ctx = llm.WithPurpose(ctx, "curriculum-gen")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      CandidatesSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var raw candidatesOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrUnavailable, err)
	}

	candidates, err := mapCandidates(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return candidates, nil
}

func mapCandidates(raw candidatesOutput) ([]curriculum.ModuleCandidate, error) {
	if len(raw.Modules) == 0 {
		return nil, fmt.Errorf("empty candidate set")
	}

	out := make([]curriculum.ModuleCandidate, 0, len(raw.Modules))
	for _, m := range raw.Modules {
		if m.Topic == "" || len(m.Tasks) == 0 {
			return nil, fmt.Errorf("module %q missing topic or tasks", m.Title)
		}
		if m.Difficulty < 1 || m.Difficulty > 10 {
			return nil, fmt.Errorf("module %q difficulty %d out of range", m.Topic, m.Difficulty)
		}

		cand := curriculum.ModuleCandidate{
			Topic:          m.Topic,
			Title:          m.Title,
			Difficulty:     m.Difficulty,
			EstimatedHours: m.EstimatedHours,
			Prerequisites:  m.Prerequisites,
			Optional:       m.Optional,
		}
		for _, t := range m.Tasks {
			typ := curriculum.TaskType(t.Type)
			switch typ {
			case curriculum.TaskRead, curriculum.TaskWatch, curriculum.TaskCode, curriculum.TaskQuiz:
			default:
				return nil, fmt.Errorf("module %q has unknown task type %q", m.Topic, t.Type)
			}
			cand.Tasks = append(cand.Tasks, curriculum.TaskCandidate{
				Title:            t.Title,
				Type:             typ,
				Difficulty:       t.Difficulty,
				EstimatedMinutes: t.EstimatedMinutes,
			})
		}
		out = append(out, cand)
	}
	return out, nil
}
