package scoring

import "github.com/jonathan/html-autograder/internal/types"

const (
	msgHygieneFound   = "Comments found in your code."
	msgHygieneMissing = "No comments found. Explain your sections with `<!-- comments -->`."
)

var hygieneRules = []rule{
	{name: "commented", when: func(f Facts) bool { return f.HasComment }, score: fixed(types.CategoryMax, msgHygieneFound)},
	{name: "uncommented", when: always, score: fixed(0, msgHygieneMissing)},
}

// ScoreHygiene rates code hygiene. It is binary and independent of every other signal.
func ScoreHygiene(f Facts) types.CategoryScore {
	return evaluate(types.CategoryHygiene, types.CategoryMax, hygieneRules, f)
}
