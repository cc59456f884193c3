package types

// SubmissionState is the overall classification of a submission.
// Exactly one state is active per grading run.
type SubmissionState string

const (
	StateUnsubmitted  SubmissionState = "unsubmitted"
	StateDraft        SubmissionState = "draft"
	StateSyntaxBroken SubmissionState = "syntax_broken"
	StateNormal       SubmissionState = "normal"
)

// Submission is the single input document of a run. It is never mutated after load.
type Submission struct {
	Path   string `json:"path"`
	Raw    string `json:"-"`
	Digest string `json:"sha256"`
}
