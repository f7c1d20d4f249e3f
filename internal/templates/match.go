package templates

import "strings"

// MatchKind records how a topic was resolved to a domain. Ordered from
// strongest to weakest.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchSubstring
	MatchKeyword
	MatchGeneric
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchSubstring:
		return "substring"
	case MatchKeyword:
		return "keyword"
	default:
		return "generic"
	}
}

// MatchDomain resolves an arbitrary topic string to a known domain.
// Scoring is deterministic: exact name match beats substring containment
// beats keyword overlap beats the generic fallback. The function never
// fails — an unrecognized technology lands on GenericDomain.
func MatchDomain(topic string) (string, MatchKind) {
	norm := normalize(topic)
	if norm == "" {
		return GenericDomain, MatchGeneric
	}

	// Exact domain name or alias.
	for _, d := range catalogOrder {
		if norm == d {
			return d, MatchExact
		}
		for _, alias := range catalog[d].Aliases {
			if norm == alias {
				return d, MatchExact
			}
		}
	}

	// Substring: a whole word of the topic names the domain ("react
	// hooks" → react), or the topic is a prefix-style fragment of a
	// domain name. Whole-word only, so "go" never matches inside
	// "goroutine" — that case belongs to keyword scoring.
	words := strings.Fields(norm)
	for _, d := range catalogOrder {
		names := append([]string{d}, catalog[d].Aliases...)
		for _, n := range names {
			if containsWord(words, n) || (len(norm) >= 3 && strings.Contains(n, norm)) {
				return d, MatchSubstring
			}
		}
	}

	// Keyword overlap: count shared words between the topic and each
	// domain's keyword set. Highest count wins; catalog order breaks ties.
	bestDomain, bestScore := "", 0
	for _, d := range catalogOrder {
		score := 0
		for _, w := range words {
			for _, kw := range catalog[d].Keywords {
				if w == kw {
					score++
				}
			}
		}
		if score > bestScore {
			bestDomain, bestScore = d, score
		}
	}
	if bestScore > 0 {
		return bestDomain, MatchKeyword
	}

	return GenericDomain, MatchGeneric
}

func containsWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}
