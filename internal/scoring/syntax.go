package scoring

import (
	"fmt"

	"github.com/jonathan/html-autograder/internal/types"
)

const (
	msgSyntaxDraft     = "Draft detected: your text is not wrapped in any HTML tags yet."
	msgSyntaxPlacement = "Your `<h1>` starts before `<body>` opens. Move the heading inside `<body>`."
	msgSyntaxList      = "Text or elements sit directly inside `<ul>`/`<ol>`. Wrap every list entry in `<li>`."
	msgSyntaxClean     = "No critical syntax errors found."
)

var syntaxRules = []rule{
	{name: "draft", when: isDraft, score: fixed(1, msgSyntaxDraft)},
	{name: "placement", when: func(f Facts) bool { return f.PlacementDefect }, score: fixed(1, msgSyntaxPlacement)},
	{name: "list-content", when: Facts.ListContentDefect, score: fixed(1, msgSyntaxList)},
	{name: "critical", when: func(f Facts) bool { return len(f.Critical) > 0 }, score: criticalSummary},
	{name: "clean", when: always, score: fixed(types.CategoryMax, msgSyntaxClean)},
}

func criticalSummary(f Facts) (int, string) {
	first := f.Critical[0]
	noun := "errors"
	if len(f.Critical) == 1 {
		noun = "error"
	}
	return 1, fmt.Sprintf("%d critical %s (first: `%s` on line %d).", len(f.Critical), noun, first.Message, first.Line)
}

// ScoreSyntax rates syntax and bugs. It must run before ScoreStructure.
func ScoreSyntax(f Facts) types.CategoryScore {
	return evaluate(types.CategorySyntax, types.CategoryMax, syntaxRules, f)
}
