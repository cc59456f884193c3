package conformance

import (
	"fmt"
	"strings"

	"github.com/jonathan/html-autograder/internal/document"
	"github.com/jonathan/html-autograder/internal/types"
	"golang.org/x/net/html"
)

type openElement struct {
	name   string
	offset int
	// inside <svg> or <math>, where XML rules apply
	foreign bool
	// last ordered child seen, for element-permitted-order
	lastOrder     int
	lastOrderName string
}

// walker replays the token stream against an open-element stack that mirrors
// the nesting the author wrote, before any parser recovery.
type walker struct {
	cfg   Config
	m     *document.Model
	stack []*openElement
	ids   map[string]bool
	diags []types.Diagnostic
}

// Check runs every enabled rule over the token stream of m and returns the
// diagnostics in source order. It never fails; malformed markup only yields more diagnostics.
func Check(m *document.Model, cfg Config) []types.Diagnostic {
	w := &walker{
		cfg: cfg,
		m:   m,
		ids: make(map[string]bool),
	}

	tokens := m.Tokens()
	w.checkDoctype(tokens)
	for _, t := range tokens {
		switch t.Type {
		case html.TextToken:
			w.text(t)
		case html.StartTagToken, html.SelfClosingTagToken:
			w.start(t)
		case html.EndTagToken:
			w.end(t)
		}
	}
	w.finish(len(m.Raw()))
	w.checkTrailingWhitespace()

	sortByOffset(w.diags)
	return w.diags
}

func (w *walker) report(rule Rule, offset int, format string, args ...any) {
	if !w.cfg.Enabled(rule) {
		return
	}
	line, column := w.m.Position(offset)
	w.diags = append(w.diags, types.Diagnostic{
		Rule:     string(rule),
		Message:  fmt.Sprintf(format, args...),
		Severity: w.cfg.severity(rule),
		Offset:   offset,
		Line:     line,
		Column:   column,
	})
}

func (w *walker) top() *openElement {
	if len(w.stack) == 0 {
		return nil
	}
	return w.stack[len(w.stack)-1]
}

func (w *walker) inForeign() bool {
	top := w.top()
	return top != nil && top.foreign
}

func (w *walker) pop() {
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *walker) text(t document.Token) {
	if strings.TrimSpace(t.Data) == "" {
		return
	}
	if parent := w.top(); parent != nil && !parent.foreign && noText[parent.name] {
		offset := t.Offset + len(t.Raw) - len(strings.TrimLeft(t.Raw, " \t\r\n\f"))
		w.report(RulePermittedContent, offset, "text is not permitted as content under <%s>", parent.name)
	}
}

// foreignRoots open an SVG or MathML subtree
var foreignRoots = map[string]bool{"svg": true, "math": true}

// start opens an element, first closing the parents its start tag implicitly ends.
// Omitting </head> before <body> is not reported: the HTML parser accepts it silently
// and a heading placed before <body> is caught by placement instead.
func (w *walker) start(t document.Token) {
	name := t.Name

	if parent := w.top(); parent != nil && parent.foreign {
		w.checkID(t)
		// self-closing syntax is valid in foreign content and opens nothing
		if !t.SelfClosing {
			w.stack = append(w.stack, &openElement{name: name, offset: t.Offset, lastOrder: -1, foreign: true})
		}
		return
	}

	for parent := w.top(); parent != nil && closesImplicitly(parent.name, name); parent = w.top() {
		switch {
		case parent.name == "head" && name == "body":
		case parent.name == name:
			w.report(RuleNoImplicitClose, t.Offset, "Element <%s> is implicitly closed by sibling", parent.name)
		default:
			w.report(RuleNoImplicitClose, t.Offset, "Element <%s> is implicitly closed by adjacent <%s>", parent.name, name)
		}
		w.pop()
	}

	if parent := w.top(); parent != nil {
		if !permits(parent.name, name) {
			w.report(RulePermittedContent, t.Offset, "<%s> element is not permitted as content under <%s>", name, parent.name)
		}
		if idx := orderIndex(parent.name, name); idx >= 0 {
			if idx < parent.lastOrder {
				w.report(RulePermittedOrder, t.Offset, "Element <%s> must be used before <%s> in this context", name, parent.lastOrderName)
			} else {
				parent.lastOrder = idx
				parent.lastOrderName = name
			}
		}
	}

	if deprecatedElements[name] {
		w.report(RuleDeprecated, t.Offset, "<%s> is deprecated", name)
	}
	w.checkID(t)

	if foreignRoots[name] {
		if !t.SelfClosing {
			w.stack = append(w.stack, &openElement{name: name, offset: t.Offset, lastOrder: -1, foreign: true})
		}
		return
	}

	if voidElements[name] {
		if t.SelfClosing {
			w.report(RuleVoidStyle, t.Offset, "Expected omitted end tag <%s> instead of self-closing element <%s/>", name, name)
		}
		return
	}
	w.stack = append(w.stack, &openElement{name: name, offset: t.Offset, lastOrder: -1})
}

func (w *walker) checkID(t document.Token) {
	if id, ok := t.Attr("id"); ok && id != "" {
		if w.ids[id] {
			w.report(RuleNoDupID, t.Offset, "Duplicate ID \"%s\"", id)
		}
		w.ids[id] = true
	}
}

// documentElement reports whether name is html, head or body, whose end tags may always be omitted
func documentElement(name string) bool {
	return name == "html" || name == "head" || name == "body"
}

func (w *walker) end(t document.Token) {
	name := t.Name

	if voidElements[name] && !w.inForeign() {
		w.report(RuleCloseOrder, t.Offset, "Unexpected close-tag </%s>, void elements have no end tag", name)
		return
	}

	idx := -1
	for i := len(w.stack) - 1; i >= 0; i-- {
		if w.stack[i].name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.report(RuleCloseOrder, t.Offset, "Unexpected close-tag </%s>, expected opening tag", name)
		return
	}

	mismatched := false
	for len(w.stack)-1 > idx {
		open := w.top()
		switch {
		case documentElement(open.name):
		case optionalEnd[open.name]:
			w.report(RuleNoImplicitClose, t.Offset, "Element <%s> is implicitly closed by parent </%s>", open.name, name)
		case !mismatched:
			w.report(RuleCloseOrder, t.Offset, "Mismatched close-tag, expected </%s> but found </%s>", open.name, name)
			mismatched = true
		}
		w.pop()
	}
	w.pop()
}

func (w *walker) finish(eof int) {
	for open := w.top(); open != nil; open = w.top() {
		switch {
		case documentElement(open.name):
		case optionalEnd[open.name]:
			w.report(RuleNoImplicitClose, eof, "Element <%s> is implicitly closed by document end", open.name)
		default:
			w.report(RuleCloseOrder, open.offset, "Missing close-tag, expected </%s> but document ended before it was found", open.name)
		}
		w.pop()
	}
}

func (w *walker) checkDoctype(tokens []document.Token) {
	for _, t := range tokens {
		switch {
		case t.Type == html.DoctypeToken:
			return
		case t.Type == html.CommentToken:
			continue
		case t.Type == html.TextToken && strings.TrimSpace(t.Data) == "":
			continue
		}
		w.report(RuleMissingDoctype, t.Offset, "Document is missing a doctype")
		return
	}
}

func (w *walker) checkTrailingWhitespace() {
	offset := 0
	for _, line := range strings.SplitAfter(w.m.Raw(), "\n") {
		content := strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimRight(content, " \t")
		if len(trimmed) < len(content) {
			w.report(RuleTrailingWhitespace, offset+len(trimmed), "Trailing whitespace")
		}
		offset += len(line)
	}
}

// IsListContent reports whether d is the critical finding for free content placed
// directly inside a list container instead of a list item.
func IsListContent(d types.Diagnostic) bool {
	if !d.IsCritical() {
		return false
	}
	msg := strings.ToLower(d.Message)
	mentionsList := strings.Contains(msg, "<ul>") || strings.Contains(msg, "<ol>")
	return mentionsList && strings.Contains(msg, "content")
}
