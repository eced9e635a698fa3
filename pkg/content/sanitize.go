// Package content implements the html transforms applied to telegram posts before they go
// to the feed: url absolutizing, autolinking of plain text, link-preserving sanitizing,
// plain text extraction and full content cleanup.
package content

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// linkSchemes lists href schemes allowed to survive SanitizeLinks, empty is a relative url
var linkSchemes = map[string]bool{"": true, "http": true, "https": true, "mailto": true, "tg": true}

// SanitizeLinks reduces an html fragment to text, anchors and line breaks.
// Anchors keep only their href and get rel="noopener" and target="_blank", line breaks lose all
// attributes, every other element is unwrapped with its children kept in place.
// Comments are dropped. Returns empty string if nothing is left.
func SanitizeLinks(fragment string) string {
	if fragment == "" {
		return ""
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return ""
	}
	keepLinks(root)

	res, err := renderChildren(root)
	if err != nil {
		return ""
	}
	return res
}

// keepLinks rewrites the children of n in place, depth first
func keepLinks(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.TextNode:
		case html.ElementNode:
			keepLinks(c)
			switch c.Data {
			case "a":
				c.Attr = linkAttrs(c)
			case "br":
				c.Attr = nil
			default:
				unwrap(c)
			}
		default:
			n.RemoveChild(c)
		}
		c = next
	}
}

// unwrap replaces n with its children
func unwrap(n *html.Node) {
	parent := n.Parent
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}

func linkAttrs(n *html.Node) []html.Attribute {
	attrs := make([]html.Attribute, 0, 3)
	if href := attr(n, "href"); href != "" && safeHref(href) {
		attrs = append(attrs, html.Attribute{Key: "href", Val: href})
	}
	return append(attrs,
		html.Attribute{Key: "rel", Val: "noopener"},
		html.Attribute{Key: "target", Val: "_blank"},
	)
}

// safeHref rejects hrefs with schemes able to run code, like javascript: or data:
func safeHref(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	return linkSchemes[strings.ToLower(u.Scheme)]
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// parseFragment parses html in body context and hangs the result under a detached div
func parseFragment(fragment string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

func renderChildren(n *html.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", fmt.Errorf("render node: %w", err)
		}
	}
	return sb.String(), nil
}
