package document

import (
	"strings"

	"golang.org/x/net/html"
)

// headContent lists the elements the parser keeps in <head> instead of opening <body>
var headContent = map[string]bool{
	"base":     true,
	"basefont": true,
	"bgsound":  true,
	"link":     true,
	"meta":     true,
	"noframes": true,
	"noscript": true,
	"script":   true,
	"style":    true,
	"template": true,
	"title":    true,
}

// rawText lists head elements whose content the tokenizer reads as raw text
var rawText = map[string]bool{
	"noframes": true,
	"noscript": true,
	"script":   true,
	"style":    true,
	"title":    true,
}

// sourceMap records where elements were opened in the raw source.
// html, head and body can be opened by the parser without a literal tag; those are implied.
type sourceMap struct {
	first   map[string]int
	implied map[string]bool
}

func (s *sourceMap) explicit(name string, offset int) {
	if _, seen := s.first[name]; !seen {
		s.first[name] = offset
	}
}

// buildSourceMap replays the token stream through the document-level insertion
// rules of the HTML parser to tell literal html/head/body tags from implied ones.
func buildSourceMap(tokens []Token) sourceMap {
	sm := sourceMap{
		first:   make(map[string]int),
		implied: make(map[string]bool),
	}

	var htmlOpen, headOpen, bodyOpen bool
	rawHead := ""

	open := func(name string, offset int, literal bool) {
		if literal {
			sm.explicit(name, offset)
		} else {
			sm.implied[name] = true
		}
	}
	ensureHTML := func() {
		if !htmlOpen {
			htmlOpen = true
			open("html", 0, false)
		}
	}
	ensureHead := func() {
		ensureHTML()
		if !headOpen {
			headOpen = true
			open("head", 0, false)
		}
	}
	ensureBody := func() {
		ensureHead()
		if !bodyOpen {
			bodyOpen = true
			open("body", 0, false)
		}
	}

	for _, t := range tokens {
		switch t.Type {
		case html.TextToken:
			if bodyOpen || rawHead != "" || strings.TrimSpace(t.Data) == "" {
				continue
			}
			ensureBody()

		case html.StartTagToken, html.SelfClosingTagToken:
			switch {
			case t.Name == "html":
				if !htmlOpen {
					htmlOpen = true
					open("html", t.Offset, true)
				}
			case t.Name == "head":
				ensureHTML()
				if !headOpen && !bodyOpen {
					headOpen = true
					open("head", t.Offset, true)
				}
			case t.Name == "body":
				ensureHead()
				if !bodyOpen {
					bodyOpen = true
					open("body", t.Offset, true)
				}
			case bodyOpen:
				sm.explicit(t.Name, t.Offset)
			case headContent[t.Name]:
				ensureHead()
				sm.explicit(t.Name, t.Offset)
				if t.Type == html.StartTagToken && rawText[t.Name] {
					rawHead = t.Name
				}
			case t.Name == "frameset":
				// replaces body entirely
				ensureHead()
				sm.explicit(t.Name, t.Offset)
			default:
				ensureBody()
				sm.explicit(t.Name, t.Offset)
			}

		case html.EndTagToken:
			if rawHead != "" && t.Name == rawHead {
				rawHead = ""
				continue
			}
			if bodyOpen {
				continue
			}
			switch t.Name {
			case "head":
				ensureHead()
			case "body", "html", "br":
				ensureBody()
			}
		}
	}

	return sm
}
