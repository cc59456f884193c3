package scoring

import "github.com/jonathan/html-autograder/internal/types"

const (
	msgContentDraft   = "Content found, now add markup around it."
	msgContentFull    = "Heading, paragraph and list all carry content."
	msgContentPartial = "Heading found. Add both a paragraph and a list with items."
	msgContentSparse  = "Start with a non-empty `<h1>`, then add paragraphs and lists."
)

var contentRules = []rule{
	{name: "draft", when: isDraft, score: fixed(2, msgContentDraft)},
	{name: "complete", when: func(f Facts) bool { return f.Heading && f.Paragraph && f.ListItems }, score: fixed(types.CategoryMax, msgContentFull)},
	{name: "partial", when: func(f Facts) bool { return f.Heading && (f.Paragraph || f.ListItems) }, score: fixed(2, msgContentPartial)},
	{name: "sparse", when: always, score: fixed(1, msgContentSparse)},
}

// ScoreContent rates content and planning
func ScoreContent(f Facts) types.CategoryScore {
	return evaluate(types.CategoryContent, types.CategoryMax, contentRules, f)
}
