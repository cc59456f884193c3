package types

const (
	// CategoryMax is the maximum score of every rubric category
	CategoryMax = 3
	// MaxScore is the best achievable total
	MaxScore = 12
	// PassThreshold is the minimum total that passes
	PassThreshold = 8
)

// Rubric category names, in report order
const (
	CategoryStructure = "Structure & Semantics"
	CategoryHygiene   = "Code Hygiene"
	CategoryContent   = "Content & Planning"
	CategorySyntax    = "Syntax & Bugs"
)

// CategoryScore is the outcome of one rubric scorer
type CategoryScore struct {
	Name    string `json:"name"`
	Earned  int    `json:"earned"`
	Max     int    `json:"max"`
	Message string `json:"message"`
	// Rule names the decision-table row that produced the score
	Rule string `json:"rule,omitempty"`
}

// Note is an unscored informational row
type Note struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Report is the aggregated outcome of a grading run. Built once, never mutated.
type Report struct {
	State      SubmissionState `json:"state"`
	Categories []CategoryScore `json:"categories"`
	Notes      []Note          `json:"notes,omitempty"`
	Total      int             `json:"total"`
	Max        int             `json:"max"`
}

// Passed reports whether the total reaches the pass threshold.
// An unsubmitted report never passes.
func (r *Report) Passed() bool {
	if r.State == StateUnsubmitted {
		return false
	}
	return r.Total >= PassThreshold
}
