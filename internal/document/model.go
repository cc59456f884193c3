package document

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// blockSelector matches the elements that count as minimal structural effort
const blockSelector = "p, h1, h2, h3, li, div"

// hiddenText lists elements whose text is never rendered
var hiddenText = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}

// Model is a parsed submission: a queryable element tree plus the token stream
// and source locations of the raw markup it came from.
type Model struct {
	raw    string
	doc    *goquery.Document
	tokens []Token
	source sourceMap
}

// Parse builds a Model from raw markup. Malformed markup is recovered by the
// HTML parser, so the only possible error is a failure to read the input.
func Parse(raw string) (*Model, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, &ParseError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	tokens := Lex(raw)
	return &Model{
		raw:    raw,
		doc:    doc,
		tokens: tokens,
		source: buildSourceMap(tokens),
	}, nil
}

// Raw returns the markup the model was parsed from
func (m *Model) Raw() string {
	return m.raw
}

// Tokens returns the lexical token stream of the raw markup
func (m *Model) Tokens() []Token {
	return m.tokens
}

// Count returns the number of elements matching selector
func (m *Model) Count(selector string) int {
	return m.doc.Find(selector).Length()
}

// Has reports whether at least one element matches selector
func (m *Model) Has(selector string) bool {
	return m.Count(selector) > 0
}

// Text returns the trimmed, concatenated text content of all elements matching selector
func (m *Model) Text(selector string) string {
	return strings.TrimSpace(m.doc.Find(selector).Text())
}

// HasContent reports whether selector matches an element with non-empty trimmed text
func (m *Model) HasContent(selector string) bool {
	return m.Has(selector) && m.Text(selector) != ""
}

// Title returns the trimmed text of the first <title> element
func (m *Model) Title() string {
	return strings.TrimSpace(m.doc.Find("title").First().Text())
}

// HasBlockElement reports whether the body subtree contains a paragraph,
// a level 1-3 heading, a list item or a generic container
func (m *Model) HasBlockElement() bool {
	return m.doc.Find("body").Find(blockSelector).Length() > 0
}

// VisibleText returns the rendered text of the body subtree, NFC-normalized,
// with whitespace runs collapsed to a single space and trimmed.
func (m *Model) VisibleText() string {
	var sb strings.Builder
	m.doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			collectText(n, &sb)
		}
	})

	text := norm.NFC.String(sb.String())
	return strings.Join(strings.Fields(text), " ")
}

// VisibleLength returns the character count of VisibleText
func (m *Model) VisibleLength() int {
	return utf8.RuneCountInString(m.VisibleText())
}

func collectText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if hiddenText[n.Data] {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// Locate returns the byte offset at which the opening tag of the first element
// named tag begins. ok is false when the location is unknown: the element is
// absent, or the parser created it without a literal tag at that point.
func (m *Model) Locate(tag string) (offset int, ok bool) {
	if !m.Has(tag) {
		return 0, false
	}
	if m.source.implied[tag] {
		return 0, false
	}
	offset, ok = m.source.first[tag]
	return offset, ok
}

// Comments returns the bodies of all <!-- --> comments in source order
func (m *Model) Comments() []string {
	var comments []string
	for _, t := range m.tokens {
		if t.IsComment() {
			comments = append(comments, t.Data)
		}
	}
	return comments
}

// Position converts a byte offset into a 1-based line and column
func (m *Model) Position(offset int) (line, column int) {
	return Position(m.raw, offset)
}

// Position converts a byte offset in raw into a 1-based line and column.
// Columns count characters, not bytes.
func Position(raw string, offset int) (line, column int) {
	if offset > len(raw) {
		offset = len(raw)
	}
	if offset < 0 {
		offset = 0
	}
	prefix := raw[:offset]
	line = strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	column = utf8.RuneCountInString(prefix[lineStart:]) + 1
	return line, column
}
