package scoring

import "github.com/jonathan/html-autograder/internal/types"

// rule is one row of a category decision table
type rule struct {
	name  string
	when  func(f Facts) bool
	score func(f Facts) (int, string)
}

// fixed returns a score func with a constant outcome
func fixed(earned int, message string) func(Facts) (int, string) {
	return func(Facts) (int, string) { return earned, message }
}

func always(Facts) bool { return true }

// evaluate walks rules top to bottom and returns the outcome of the first match
func evaluate(category string, limit int, rules []rule, f Facts) types.CategoryScore {
	for _, r := range rules {
		if !r.when(f) {
			continue
		}
		earned, message := r.score(f)
		earned = min(max(earned, 0), limit)
		return types.CategoryScore{
			Name:    category,
			Earned:  earned,
			Max:     limit,
			Message: message,
			Rule:    r.name,
		}
	}
	// every table ends with a catch-all row
	panic("scoring: no rule matched for " + category)
}

func isDraft(f Facts) bool {
	return f.State == types.StateDraft
}
