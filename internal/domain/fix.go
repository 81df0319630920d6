package domain

const (
	ComplexitySimple  = "simple"
	ComplexityMedium  = "medium"
	ComplexityComplex = "complex"
)

const (
	ChangeAdd    = "add"
	ChangeRemove = "remove"
	ChangeModify = "modify"
	ChangeMove   = "move"
)

// Transform rewrites text to fix one issue. Transforms are pure: the result
// depends only on the text and issue passed in, never on session state.
// A transform must not panic on well-formed input; when its pattern does
// not occur in the text it returns success=false with no changes, which is
// an expected outcome rather than an error.
type Transform func(text string, issue Issue) FixResult

// FixStrategy is a named, confidence-scored transformation for one or more
// rule ids. Base confidence is fixed at registration; the learning store
// blends observed outcomes on top of it between sessions.
type FixStrategy struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	AppliesTo  []string  `json:"applies_to"`
	Confidence float64   `json:"confidence"`
	Complexity string    `json:"complexity"`
	Transform  Transform `json:"-"`
}

// FixResult is the outcome of one transform invocation.
type FixResult struct {
	Success      bool        `json:"success"`
	OriginalText string      `json:"original_text"`
	FixedText    string      `json:"fixed_text"`
	Changes      []FixChange `json:"changes"`
	Confidence   float64     `json:"confidence"`
	Explanation  string      `json:"explanation"`
	Warnings     []string    `json:"warnings,omitempty"`
}

// FixChange is an audit record for one line-level edit. Line numbers refer
// to the text the transform received, 1-based.
type FixChange struct {
	Kind        string `json:"kind"`
	LineNumber  int    `json:"line_number"`
	Before      string `json:"before,omitempty"`
	After       string `json:"after,omitempty"`
	Description string `json:"description"`
}

// FixPlan partitions a session's issues by risk. Safe and Risky are in
// application order; Manual is never auto-applied and keeps detector order.
type FixPlan struct {
	Safe   []Issue `json:"safe"`
	Risky  []Issue `json:"risky"`
	Manual []Issue `json:"manual"`
}

// Size returns the total number of planned issues across all buckets.
func (p FixPlan) Size() int {
	return len(p.Safe) + len(p.Risky) + len(p.Manual)
}

// LearningEntry tracks running success statistics for one
// (strategy, rule) pair. Attempts only ever grows.
type LearningEntry struct {
	Attempts   int     `json:"attempts"`
	Successes  int     `json:"successes"`
	Confidence float64 `json:"confidence"`
}
