package models

// Badge is a named achievement. Condition is a pure predicate over a project
// snapshot; the only mutable derived state is membership in the project's
// unlocked set, which grows monotonically.
type Badge struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Color       string
	Condition   func(Project) bool
}
