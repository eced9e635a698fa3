package content

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText returns the text of n and its descendants. Every text node is trimmed, empty ones
// are skipped and the rest joined with a single space. Script and style bodies are ignored.
func PlainText(n *html.Node) string {
	if n == nil {
		return ""
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
