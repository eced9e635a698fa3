package content

import (
	"github.com/microcosm-cc/bluemonday"
)

// NewFullContentPolicy makes the sanitizing policy for the full post body.
// It keeps the inline formatting telegram uses for posts and links, but drops scripts,
// styles, classes and event handler attributes.
func NewFullContentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowURLSchemes("mailto", "http", "https", "tg")
	p.RequireNoFollowOnLinks(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	p.AllowElements("p", "br", "b", "strong", "i", "em", "u", "s", "del", "ins",
		"code", "pre", "blockquote", "span", "ul", "ol", "li")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	return p
}
