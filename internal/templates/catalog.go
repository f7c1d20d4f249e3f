package templates

import "github.com/pathwise/pathwise/internal/curriculum"

// GenericDomain is the fallback domain. Its templates are
// technology-neutral so lookup never comes back empty.
const GenericDomain = "general"

// domainTemplates holds the built-in material for one domain.
type domainTemplates struct {
	Aliases  []string
	Keywords []string
	Modules  []curriculum.ModuleCandidate
}

// catalogOrder fixes iteration order for deterministic matching.
var catalogOrder = []string{
	"programming-basics",
	"go",
	"python",
	"javascript",
	"react",
	"sql",
	"algorithms",
	GenericDomain,
}

var catalog = map[string]domainTemplates{
	"programming-basics": {
		Aliases:  []string{"basics", "fundamentals", "loops", "variables", "functions"},
		Keywords: []string{"loop", "loops", "variable", "variables", "function", "functions", "conditionals", "beginner", "programming", "coding"},
		Modules: []curriculum.ModuleCandidate{
			{
				Topic: "variables-and-types", Title: "Variables and Types", Difficulty: 1, EstimatedHours: 2,
				Tasks: []curriculum.TaskCandidate{
					{Title: "What a variable is", Type: curriculum.TaskRead, Difficulty: 1, EstimatedMinutes: 15},
					{Title: "Declare and assign", Type: curriculum.TaskCode, Difficulty: 1, EstimatedMinutes: 20},
					{Title: "Work with numbers and strings", Type: curriculum.TaskCode, Difficulty: 1, EstimatedMinutes: 25},
					{Title: "Type conversion exercises", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 25},
					{Title: "Types check-in", Type: curriculum.TaskQuiz, Difficulty: 1, EstimatedMinutes: 10},
				},
			},
			{
				Topic: "control-flow", Title: "Conditionals and Loops", Difficulty: 2, EstimatedHours: 3,
				Prerequisites: []string{"variables-and-types"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Branching and iteration", Type: curriculum.TaskRead, Difficulty: 2, EstimatedMinutes: 20},
					{Title: "FizzBuzz variations", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 30},
					{Title: "Loop over collections", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 30},
					{Title: "Nested loops practice", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 35},
					{Title: "Control flow quiz", Type: curriculum.TaskQuiz, Difficulty: 2, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "functions", Title: "Functions and Scope", Difficulty: 3, EstimatedHours: 3,
				Prerequisites: []string{"control-flow"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Functions and arguments", Type: curriculum.TaskWatch, Difficulty: 2, EstimatedMinutes: 15},
					{Title: "Extract repeated code into functions", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 30},
					{Title: "Return values and early exits", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 30},
					{Title: "Recursion warm-up", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 40},
					{Title: "Scope rules quiz", Type: curriculum.TaskQuiz, Difficulty: 3, EstimatedMinutes: 15},
				},
			},
		},
	},
	"go": {
		Aliases:  []string{"golang"},
		Keywords: []string{"goroutine", "goroutines", "channels", "interfaces", "slices", "gopher"},
		Modules: []curriculum.ModuleCandidate{
			{
				Topic: "go-syntax", Title: "Go Syntax and Tooling", Difficulty: 2, EstimatedHours: 3,
				Tasks: []curriculum.TaskCandidate{
					{Title: "Tour of Go syntax", Type: curriculum.TaskRead, Difficulty: 2, EstimatedMinutes: 30},
					{Title: "Write and run a first program", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 25},
					{Title: "Slices and maps drills", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 35},
					{Title: "Error handling patterns", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 35},
					{Title: "Syntax quiz", Type: curriculum.TaskQuiz, Difficulty: 2, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "go-interfaces", Title: "Interfaces and Composition", Difficulty: 4, EstimatedHours: 3,
				Prerequisites: []string{"go-syntax"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Interfaces in depth", Type: curriculum.TaskRead, Difficulty: 4, EstimatedMinutes: 25},
					{Title: "Implement io.Reader wrappers", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 40},
					{Title: "Accept interfaces, return structs", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 35},
					{Title: "Interface satisfaction quiz", Type: curriculum.TaskQuiz, Difficulty: 4, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "go-concurrency", Title: "Goroutines and Channels", Difficulty: 6, EstimatedHours: 4,
				Prerequisites: []string{"go-interfaces"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Concurrency model overview", Type: curriculum.TaskWatch, Difficulty: 5, EstimatedMinutes: 20},
					{Title: "Fan-out worker pool", Type: curriculum.TaskCode, Difficulty: 6, EstimatedMinutes: 45},
					{Title: "Pipelines with channels", Type: curriculum.TaskCode, Difficulty: 6, EstimatedMinutes: 45},
					{Title: "Race detector exercises", Type: curriculum.TaskCode, Difficulty: 7, EstimatedMinutes: 40},
					{Title: "Concurrency quiz", Type: curriculum.TaskQuiz, Difficulty: 6, EstimatedMinutes: 15},
				},
			},
		},
	},
	"python": {
		Aliases:  []string{"py"},
		Keywords: []string{"pandas", "numpy", "django", "flask", "comprehension", "pip"},
		Modules: []curriculum.ModuleCandidate{
			{
				Topic: "python-core", Title: "Python Core", Difficulty: 2, EstimatedHours: 3,
				Tasks: []curriculum.TaskCandidate{
					{Title: "Python idioms primer", Type: curriculum.TaskRead, Difficulty: 2, EstimatedMinutes: 25},
					{Title: "List and dict drills", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 30},
					{Title: "Comprehensions practice", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 30},
					{Title: "String handling katas", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 30},
					{Title: "Core quiz", Type: curriculum.TaskQuiz, Difficulty: 2, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "python-oop", Title: "Classes and Protocols", Difficulty: 4, EstimatedHours: 3,
				Prerequisites: []string{"python-core"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Dataclasses and dunder methods", Type: curriculum.TaskRead, Difficulty: 4, EstimatedMinutes: 25},
					{Title: "Model a small domain", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 45},
					{Title: "Iterator protocol exercises", Type: curriculum.TaskCode, Difficulty: 5, EstimatedMinutes: 40},
					{Title: "OOP quiz", Type: curriculum.TaskQuiz, Difficulty: 4, EstimatedMinutes: 15},
				},
			},
		},
	},
	"javascript": {
		Aliases:  []string{"js", "typescript", "ts", "node", "nodejs"},
		Keywords: []string{"closures", "promises", "async", "await", "dom", "npm", "frontend"},
		Modules: []curriculum.ModuleCandidate{
			{
				Topic: "js-language", Title: "JavaScript Language Core", Difficulty: 2, EstimatedHours: 3,
				Tasks: []curriculum.TaskCandidate{
					{Title: "Values, scope, and coercion", Type: curriculum.TaskRead, Difficulty: 2, EstimatedMinutes: 25},
					{Title: "Array method drills", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 30},
					{Title: "Closures in practice", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 35},
					{Title: "Language quiz", Type: curriculum.TaskQuiz, Difficulty: 2, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "js-async", Title: "Asynchronous JavaScript", Difficulty: 4, EstimatedHours: 3,
				Prerequisites: []string{"js-language"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Event loop explained", Type: curriculum.TaskWatch, Difficulty: 4, EstimatedMinutes: 20},
					{Title: "Promise chains to async/await", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 40},
					{Title: "Fetch and error handling", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 40},
					{Title: "Async quiz", Type: curriculum.TaskQuiz, Difficulty: 4, EstimatedMinutes: 15},
				},
			},
		},
	},
	"react": {
		Aliases:  []string{"reactjs", "react.js"},
		Keywords: []string{"hooks", "jsx", "components", "state", "props", "redux", "nextjs"},
		Modules: []curriculum.ModuleCandidate{
			{
				Topic: "react-components", Title: "Components and Props", Difficulty: 3, EstimatedHours: 3,
				Tasks: []curriculum.TaskCandidate{
					{Title: "Thinking in components", Type: curriculum.TaskRead, Difficulty: 3, EstimatedMinutes: 25},
					{Title: "Build a card list", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 40},
					{Title: "Props drilling exercise", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 35},
					{Title: "Components quiz", Type: curriculum.TaskQuiz, Difficulty: 3, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "react-state", Title: "State and Hooks", Difficulty: 5, EstimatedHours: 4,
				Prerequisites: []string{"react-components"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "useState and useEffect", Type: curriculum.TaskWatch, Difficulty: 4, EstimatedMinutes: 25},
					{Title: "Build a stateful form", Type: curriculum.TaskCode, Difficulty: 5, EstimatedMinutes: 45},
					{Title: "Custom hook extraction", Type: curriculum.TaskCode, Difficulty: 5, EstimatedMinutes: 45},
					{Title: "Hooks rules quiz", Type: curriculum.TaskQuiz, Difficulty: 5, EstimatedMinutes: 15},
				},
			},
		},
	},
	"sql": {
		Aliases:  []string{"database", "databases", "postgres", "postgresql", "mysql", "sqlite"},
		Keywords: []string{"query", "queries", "joins", "indexes", "schema", "tables"},
		Modules: []curriculum.ModuleCandidate{
			{
				Topic: "sql-queries", Title: "Querying Data", Difficulty: 2, EstimatedHours: 3,
				Tasks: []curriculum.TaskCandidate{
					{Title: "SELECT fundamentals", Type: curriculum.TaskRead, Difficulty: 2, EstimatedMinutes: 20},
					{Title: "Filtering and sorting drills", Type: curriculum.TaskCode, Difficulty: 2, EstimatedMinutes: 30},
					{Title: "Aggregations practice", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 35},
					{Title: "Query quiz", Type: curriculum.TaskQuiz, Difficulty: 2, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "sql-joins", Title: "Joins and Modeling", Difficulty: 4, EstimatedHours: 3,
				Prerequisites: []string{"sql-queries"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Join types compared", Type: curriculum.TaskRead, Difficulty: 4, EstimatedMinutes: 20},
					{Title: "Multi-table join exercises", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 40},
					{Title: "Design a schema", Type: curriculum.TaskCode, Difficulty: 5, EstimatedMinutes: 45},
					{Title: "Joins quiz", Type: curriculum.TaskQuiz, Difficulty: 4, EstimatedMinutes: 15},
				},
			},
		},
	},
	"algorithms": {
		Aliases:  []string{"algos", "data structures", "dsa", "recursion"},
		Keywords: []string{"sorting", "searching", "trees", "graphs", "complexity", "recursion", "dynamic"},
		Modules: []curriculum.ModuleCandidate{
			{
				Topic: "algo-foundations", Title: "Complexity and Recursion", Difficulty: 4, EstimatedHours: 4,
				Tasks: []curriculum.TaskCandidate{
					{Title: "Big-O in plain terms", Type: curriculum.TaskRead, Difficulty: 3, EstimatedMinutes: 25},
					{Title: "Recursive problems set", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 45},
					{Title: "Iterate vs recurse rewrites", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 40},
					{Title: "Complexity quiz", Type: curriculum.TaskQuiz, Difficulty: 4, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "algo-structures", Title: "Core Data Structures", Difficulty: 5, EstimatedHours: 4,
				Prerequisites: []string{"algo-foundations"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Stacks, queues, and maps", Type: curriculum.TaskWatch, Difficulty: 4, EstimatedMinutes: 25},
					{Title: "Implement a linked list", Type: curriculum.TaskCode, Difficulty: 5, EstimatedMinutes: 45},
					{Title: "Binary tree traversals", Type: curriculum.TaskCode, Difficulty: 6, EstimatedMinutes: 50},
					{Title: "Structures quiz", Type: curriculum.TaskQuiz, Difficulty: 5, EstimatedMinutes: 15},
				},
			},
		},
	},
	GenericDomain: {
		Keywords: []string{},
		Modules: []curriculum.ModuleCandidate{
			{
				Topic: "orientation", Title: "Orientation and Setup", Difficulty: 1, EstimatedHours: 2,
				Tasks: []curriculum.TaskCandidate{
					{Title: "Survey the landscape", Type: curriculum.TaskRead, Difficulty: 1, EstimatedMinutes: 20},
					{Title: "Set up a working environment", Type: curriculum.TaskCode, Difficulty: 1, EstimatedMinutes: 30},
					{Title: "Hello-world walkthrough", Type: curriculum.TaskCode, Difficulty: 1, EstimatedMinutes: 25},
					{Title: "Orientation quiz", Type: curriculum.TaskQuiz, Difficulty: 1, EstimatedMinutes: 10},
				},
			},
			{
				Topic: "guided-practice", Title: "Guided Practice", Difficulty: 3, EstimatedHours: 3,
				Prerequisites: []string{"orientation"},
				Tasks: []curriculum.TaskCandidate{
					{Title: "Worked examples study", Type: curriculum.TaskRead, Difficulty: 2, EstimatedMinutes: 25},
					{Title: "Reproduce the examples", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 40},
					{Title: "Vary one constraint at a time", Type: curriculum.TaskCode, Difficulty: 3, EstimatedMinutes: 40},
					{Title: "Self-check quiz", Type: curriculum.TaskQuiz, Difficulty: 3, EstimatedMinutes: 15},
				},
			},
			{
				Topic: "applied-project", Title: "Small Applied Project", Difficulty: 4, EstimatedHours: 4,
				Prerequisites: []string{"guided-practice"}, Optional: true,
				Tasks: []curriculum.TaskCandidate{
					{Title: "Scope a small project", Type: curriculum.TaskRead, Difficulty: 3, EstimatedMinutes: 20},
					{Title: "Build the core path", Type: curriculum.TaskCode, Difficulty: 4, EstimatedMinutes: 60},
					{Title: "Handle the edge cases", Type: curriculum.TaskCode, Difficulty: 5, EstimatedMinutes: 60},
					{Title: "Retrospective quiz", Type: curriculum.TaskQuiz, Difficulty: 4, EstimatedMinutes: 15},
				},
			},
		},
	},
}
