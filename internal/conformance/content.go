package conformance

// voidElements never have content or an end tag
var voidElements = set(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "source", "track", "wbr",
)

// optionalEnd lists elements whose end tag may be omitted
var optionalEnd = set(
	"html", "head", "body", "li", "dt", "dd", "p", "rt", "rp",
	"optgroup", "option", "colgroup", "caption", "thead", "tbody",
	"tfoot", "tr", "td", "th",
)

var metadata = set(
	"base", "link", "meta", "noscript", "script", "style", "template", "title",
)

// flowOnly are elements that may not appear inside phrasing content
var flowOnly = set(
	"address", "article", "aside", "blockquote", "details", "div", "dl",
	"fieldset", "figcaption", "figure", "footer", "form", "h1", "h2", "h3",
	"h4", "h5", "h6", "header", "hgroup", "hr", "main", "menu", "nav", "ol",
	"p", "pre", "section", "table", "ul",
)

// phrasingOnly are elements whose content model is phrasing content
var phrasingOnly = set(
	"h1", "h2", "h3", "h4", "h5", "h6", "p", "span", "em", "strong", "b",
	"i", "u", "small", "label", "button", "code", "abbr", "cite", "q",
	"sub", "sup", "mark", "pre", "title",
)

// childOnly restricts the direct children of container elements
var childOnly = map[string]map[string]bool{
	"html":     set("head", "body"),
	"head":     metadata,
	"ul":       set("li", "script", "template"),
	"ol":       set("li", "script", "template"),
	"menu":     set("li", "script", "template"),
	"dl":       set("dt", "dd", "div", "script", "template"),
	"table":    set("caption", "colgroup", "thead", "tbody", "tfoot", "tr", "script", "template"),
	"thead":    set("tr", "script", "template"),
	"tbody":    set("tr", "script", "template"),
	"tfoot":    set("tr", "script", "template"),
	"tr":       set("td", "th", "script", "template"),
	"select":   set("option", "optgroup", "hr"),
	"optgroup": set("option"),
	"colgroup": set("col", "template"),
}

// noText are containers where only whitespace text is allowed
var noText = set(
	"html", "head", "ul", "ol", "menu", "dl", "table", "thead", "tbody",
	"tfoot", "tr", "select", "colgroup",
)

// noSelfNesting are interactive elements that may not contain themselves
var noSelfNesting = set("a", "button", "form", "label")

// impliedCloseBy maps an open element to the start tags that close it implicitly
var impliedCloseBy = map[string]map[string]bool{
	"li":       set("li"),
	"dt":       set("dt", "dd"),
	"dd":       set("dt", "dd"),
	"p":        flowOnly,
	"option":   set("option", "optgroup"),
	"optgroup": set("optgroup"),
	"tr":       set("tr", "thead", "tbody", "tfoot"),
	"td":       set("td", "th", "tr", "thead", "tbody", "tfoot"),
	"th":       set("td", "th", "tr", "thead", "tbody", "tfoot"),
	"thead":    set("tbody", "tfoot"),
	"tbody":    set("tbody", "tfoot"),
	"rt":       set("rt", "rp"),
	"rp":       set("rt", "rp"),
}

// childOrder lists, per parent, the order in which certain children must appear
var childOrder = map[string][]string{
	"html":  {"head", "body"},
	"table": {"caption", "colgroup", "thead", "tbody", "tfoot"},
}

var deprecatedElements = set(
	"acronym", "applet", "basefont", "big", "blink", "center", "dir",
	"font", "frame", "frameset", "isindex", "marquee", "nobr", "strike", "tt",
)

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// closesImplicitly reports whether a start tag named next closes the open element
func closesImplicitly(open, next string) bool {
	if open == "head" {
		return !metadata[next]
	}
	return impliedCloseBy[open][next]
}

// permits reports whether an element named child may appear directly inside parent
func permits(parent, child string) bool {
	if allowed, ok := childOnly[parent]; ok && !allowed[child] {
		return false
	}
	if phrasingOnly[parent] && flowOnly[child] {
		return false
	}
	if noSelfNesting[parent] && parent == child {
		return false
	}
	return true
}

func orderIndex(parent, child string) int {
	for i, name := range childOrder[parent] {
		if name == child {
			return i
		}
	}
	// a bare tr belongs to the body slot of a table
	if parent == "table" && child == "tr" {
		return 3
	}
	return -1
}
