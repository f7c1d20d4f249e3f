package content

import "github.com/pathwise/pathwise/internal/llm"

// CandidatesSchema defines the JSON schema for generated module candidates.
var CandidatesSchema = &llm.Schema{
	Name:        "module-candidates",
	Description: "A set of learning modules with ordered tasks for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic": map[string]any{
							"type":        "string",
							"description": "Short kebab-case topic identifier, e.g. go-concurrency",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Human-readable module title",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     10,
							"description": "Module difficulty from 1 (trivial) to 10 (expert)",
						},
						"estimated_hours": map[string]any{
							"type":        "number",
							"minimum":     0.5,
							"description": "Total learner hours for the module",
						},
						"prerequisites": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Topic identifiers of modules that must come first. Only reference topics in this same response.",
						},
						"optional": map[string]any{
							"type":        "boolean",
							"description": "True when the module can be dropped to fit a tight time budget",
						},
						"tasks": map[string]any{
							"type":     "array",
							"minItems": 3,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title": map[string]any{
										"type":        "string",
										"description": "What the learner does, as an imperative phrase",
									},
									"type": map[string]any{
										"type":        "string",
										"enum":        []any{"read", "watch", "code", "quiz"},
										"description": "Task kind. Favor code and quiz; at least 70 percent of tasks must be code or quiz.",
									},
									"difficulty": map[string]any{
										"type":    "integer",
										"minimum": 1,
										"maximum": 10,
									},
									"estimated_minutes": map[string]any{
										"type":    "integer",
										"minimum": 5,
										"maximum": 240,
									},
								},
								"required":             []any{"title", "type", "difficulty", "estimated_minutes"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"topic", "title", "difficulty", "estimated_hours", "prerequisites", "optional", "tasks"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"modules"},
		"additionalProperties": false,
	},
}
