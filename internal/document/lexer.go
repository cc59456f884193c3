package document

import (
	"strings"

	"golang.org/x/net/html"
)

// Token is one lexical token of the raw markup, as the author wrote it
type Token struct {
	Type        html.TokenType
	Name        string // lowercased tag name for tag tokens
	Attrs       []html.Attribute
	Data        string // unescaped text for text tokens, body for comments
	Raw         string
	Offset      int // byte offset of the token in the raw source
	SelfClosing bool
}

// IsStart reports whether the token opens an element (self-closing syntax included)
func (t Token) IsStart() bool {
	return t.Type == html.StartTagToken || t.Type == html.SelfClosingTagToken
}

// IsComment reports whether the token is a real <!-- --> comment.
// Bogus comments such as <?xml ?> or <!foo> are excluded.
func (t Token) IsComment() bool {
	return t.Type == html.CommentToken && strings.HasPrefix(t.Raw, "<!--")
}

// Attr returns the value of the named attribute and whether it was present
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Lex splits raw markup into tokens with their byte offsets.
// It never fails: the tokenizer degrades malformed input into text or bogus comments.
func Lex(raw string) []Token {
	z := html.NewTokenizer(strings.NewReader(raw))
	var tokens []Token
	offset := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF is the only error a strings.Reader can produce
			return tokens
		}

		// Raw must be captured before Token, which rewrites the buffer in place
		rawText := string(z.Raw())
		tok := z.Token()

		t := Token{
			Type:   tt,
			Raw:    rawText,
			Offset: offset,
		}
		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			t.Name = tok.Data
			t.Attrs = tok.Attr
			t.SelfClosing = tt == html.SelfClosingTagToken
		default:
			t.Data = tok.Data
		}

		tokens = append(tokens, t)
		offset += len(rawText)
	}
}
