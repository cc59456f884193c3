package scoring

import (
	"fmt"

	"github.com/jonathan/html-autograder/internal/types"
)

const (
	msgStructureDraft  = "Pick tags that match your content: headings, paragraphs and lists."
	msgStructureGated  = "Cannot rate structure, fix syntax first."
	msgStructureFull   = "Good variety of semantic tags and a single `<h1>`."
	msgStructureOneH1  = "Good variety, but use exactly one `<h1>` per page."
	msgStructureSparse = "Very little structure: use a heading, a paragraph and a list."
)

// syntaxFloor is the Syntax score that marks a submission as syntax broken
const syntaxFloor = 1

// variety counts the distinct non-empty tag groups: h1, h2/h3, p, list with items
func (f Facts) variety() int {
	n := 0
	for _, present := range []bool{f.Heading, f.Subheading, f.Paragraph, f.ListItems} {
		if present {
			n++
		}
	}
	return n
}

func structureRules(syntaxEarned int) []rule {
	return []rule{
		{name: "draft", when: isDraft, score: fixed(1, msgStructureDraft)},
		{name: "syntax-gate", when: func(Facts) bool { return syntaxEarned == syntaxFloor }, score: fixed(1, msgStructureGated)},
		{name: "varied", when: func(f Facts) bool { return f.variety() >= 3 && f.HeadingCount == 1 }, score: fixed(types.CategoryMax, msgStructureFull)},
		{name: "some", when: func(f Facts) bool { return f.variety() >= 2 }, score: partialStructure},
		{name: "sparse", when: always, score: fixed(1, msgStructureSparse)},
	}
}

func partialStructure(f Facts) (int, string) {
	if f.variety() >= 3 {
		return 2, msgStructureOneH1
	}
	return 2, fmt.Sprintf("Only %d of 4 tag types used (`<h1>`, `<h2>`/`<h3>`, `<p>`, lists with `<li>`).", f.variety())
}

// ScoreStructure rates structure and semantics. The Syntax outcome gates it:
// whenever Syntax scored the minimum, Structure scores the minimum too.
func ScoreStructure(f Facts, syntax types.CategoryScore) types.CategoryScore {
	return evaluate(types.CategoryStructure, types.CategoryMax, structureRules(syntax.Earned), f)
}
