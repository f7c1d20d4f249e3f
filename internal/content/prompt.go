package content

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a curriculum designer producing structured learning modules.

Rules:
- Generate an ordered set of modules for the given topic, tailored to the learner's declared skill level.
- Each module covers one coherent sub-topic and contains 3-8 concrete tasks.
- Order modules so prerequisites always come before the modules that need them, and difficulty rises gradually.
- At least 70 percent of the tasks in every module must be hands-on (type "code" or "quiz"). Reading and watching are scaffolding, not the core.
- Difficulty is an integer 1-10. A beginner's first module should sit at 1-2; an expert's at 6 or above.
- Keep estimated_hours honest: the sum of task minutes should roughly match it.
- Mark a module optional only when the remaining modules still form a complete path.
- Use short kebab-case topic identifiers and reference prerequisites only by topics in this same response.`

// buildUserMessage renders one generation request.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Domain: %s\n", req.Domain)
	fmt.Fprintf(&b, "Skill level: %s\n", req.SkillLevel)
	fmt.Fprintf(&b, "Learning style: %s\n", req.Style)
	if req.MaxModules > 0 {
		fmt.Fprintf(&b, "At most %d modules.\n", req.MaxModules)
	}

	switch req.Style {
	case "hands-on":
		b.WriteString("\nThe learner prefers building over reading: push the practice fraction well above the minimum.\n")
	case "theory":
		b.WriteString("\nThe learner values conceptual grounding: choose reading tasks that earn their place, but keep the required practice fraction.\n")
	}

	return b.String()
}
