// Package content is the generative module/task source for the
// curriculum builder. It produces candidate modules for a topic and
// skill level, and may fail or time out — the builder is responsible
// for falling back to the template library when it does.
package content

import (
	"context"
	"errors"

	"github.com/pathwise/pathwise/internal/curriculum"
)

// ErrUnavailable indicates the source could not produce candidates
// (timeout, provider error, open circuit, malformed output). It is
// always recovered locally via the template fallback and never surfaces
// from a build as a failure.
var ErrUnavailable = errors.New("content source unavailable")

// Request describes what material to generate.
type Request struct {
	Topic      string
	Domain     string
	SkillLevel curriculum.SkillLevel
	Style      curriculum.LearningStyle

	// MaxModules bounds the candidate count per topic.
	MaxModules int
}

// Source produces candidate modules for a topic. Implementations must
// honor ctx cancellation; this is the engine's only blocking call.
type Source interface {
	Generate(ctx context.Context, req Request) ([]curriculum.ModuleCandidate, error)
}
