package adapters

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/net/html"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// HTMLParserAdapter builds a queryable tree from a dbSNP page. It keeps
// no state between calls.
type HTMLParserAdapter struct{}

func NewHTMLParserAdapter() HTMLParserAdapter {
	return HTMLParserAdapter{}
}

func (a HTMLParserAdapter) Parse(raw types.RawDocument) (ports.Node, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document is empty")
	}
	doc, err := html.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse document markup").
			WithCause(err)
	}
	if doc.FirstChild == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document has no elements")
	}
	return htmlNode{n: doc}, nil
}

type htmlNode struct {
	n *html.Node
}

func (h htmlNode) Tag() string {
	if h.n.Type != html.ElementNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) Text() string {
	var sb strings.Builder
	collectText(h.n, &sb)
	return strings.TrimSpace(sb.String())
}

func (h htmlNode) Attr(key string) (string, bool) {
	for _, attr := range h.n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func (h htmlNode) HasClass(token string) bool {
	class, ok := h.Attr("class")
	if !ok {
		return false
	}
	for _, value := range strings.Fields(class) {
		if value == token {
			return true
		}
	}
	return false
}

func (h htmlNode) FindFirst(tag string) (ports.Node, bool) {
	found := findElement(h.n, tag)
	if found == nil {
		return nil, false
	}
	return htmlNode{n: found}, true
}

func (h htmlNode) FindAll(tag string) []ports.Node {
	var nodes []ports.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				nodes = append(nodes, htmlNode{n: c})
			}
			walk(c)
		}
	}
	walk(h.n)
	return nodes
}

func (h htmlNode) NextSibling(tag string) (ports.Node, bool) {
	for s := h.n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.Data == tag {
			return htmlNode{n: s}, true
		}
	}
	return nil, false
}

func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

var _ ports.DocumentParserPort = HTMLParserAdapter{}
