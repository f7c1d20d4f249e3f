package templates

import "testing"

func TestMatchDomain(t *testing.T) {
	tests := []struct {
		topic      string
		wantDomain string
		wantKind   MatchKind
	}{
		{"go", "go", MatchExact},
		{"golang", "go", MatchExact},
		{"React", "react", MatchExact},
		{"react hooks deep dive", "react", MatchSubstring},
		{"loops", "programming-basics", MatchExact},
		{"advanced goroutine patterns", "go", MatchKeyword},
		{"writing fast queries with joins", "sql", MatchKeyword},
		{"quantum basket weaving", GenericDomain, MatchGeneric},
		{"", GenericDomain, MatchGeneric},
	}

	for _, tt := range tests {
		domain, kind := MatchDomain(tt.topic)
		if domain != tt.wantDomain || kind != tt.wantKind {
			t.Errorf("MatchDomain(%q) = (%s, %s), want (%s, %s)",
				tt.topic, domain, kind, tt.wantDomain, tt.wantKind)
		}
	}
}

func TestMatchDomain_Deterministic(t *testing.T) {
	for range 5 {
		d1, k1 := MatchDomain("recursion and trees")
		d2, k2 := MatchDomain("recursion and trees")
		if d1 != d2 || k1 != k2 {
			t.Fatal("MatchDomain is not deterministic")
		}
	}
}

func TestTemplatesFor_UnknownDomainFallsBack(t *testing.T) {
	mods := TemplatesFor("no-such-domain")
	if len(mods) == 0 {
		t.Fatal("TemplatesFor returned no modules for unknown domain")
	}
	generic := TemplatesFor(GenericDomain)
	if len(mods) != len(generic) {
		t.Errorf("unknown domain returned %d modules, generic has %d", len(mods), len(generic))
	}
}

func TestTemplatesFor_ReturnsCopies(t *testing.T) {
	a := TemplatesFor("go")
	a[0].Tasks[0].Title = "mutated"
	b := TemplatesFor("go")
	if b[0].Tasks[0].Title == "mutated" {
		t.Error("TemplatesFor leaked shared state between calls")
	}
}

func TestCatalog_AllDomainsHaveModules(t *testing.T) {
	for _, d := range Domains() {
		if len(TemplatesFor(d)) == 0 {
			t.Errorf("domain %s has no modules", d)
		}
	}
}

func TestPracticeTasks_OnlyPracticeTypes(t *testing.T) {
	kinds := PracticeTasks("python", 3, 8)
	if len(kinds) != 8 {
		t.Fatalf("got %d tasks, want 8", len(kinds))
	}
	for _, task := range kinds {
		if !task.Type.IsPractice() {
			t.Errorf("task %q has non-practice type %s", task.Title, task.Type)
		}
		if task.Difficulty != 3 {
			t.Errorf("task %q difficulty = %d, want 3", task.Title, task.Difficulty)
		}
	}
}
