package content

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// urlRe stops a url at any unicode whitespace, not only the ascii one matched by \s
var urlRe = regexp.MustCompile(`https?://[^\s\p{Z}\x{1c}-\x{1f}\x{85}<>"']+`)

// Autolink escapes text for html embedding and turns bare http(s) urls into anchors
// opening in a new browsing context.
func Autolink(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	last := 0
	for _, loc := range urlRe.FindAllStringIndex(text, -1) {
		sb.WriteString(html.EscapeString(text[last:loc[0]]))
		u := html.EscapeString(text[loc[0]:loc[1]])
		fmt.Fprintf(&sb, `<a href="%s" rel="noopener" target="_blank">%s</a>`, u, u)
		last = loc[1]
	}
	sb.WriteString(html.EscapeString(text[last:]))
	return sb.String()
}
