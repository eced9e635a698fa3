package telegram

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var bgImageRe = regexp.MustCompile(`(?i)background-image:\s*url\(['"]?([^'")]+)['"]?\)`)

var (
	reactionsMarker = "tgme_widget_message_reactions"
	emojiMarker     = "emoji"
	emojiSrcMarkers = []string{"/emoji/", "/stickers/", "emoji-static", "emoji-animated"}
)

// assetNode is the part of an element the decoration check looks at
type assetNode struct {
	class   string
	src     string
	style   string
	parents []string // class attributes of all ancestors, closest first
}

func newAssetNode(s *goquery.Selection) assetNode {
	n := assetNode{
		class: s.AttrOr("class", ""),
		src:   s.AttrOr("src", ""),
		style: s.AttrOr("style", ""),
	}
	s.Parents().Each(func(_ int, p *goquery.Selection) {
		n.parents = append(n.parents, p.AttrOr("class", ""))
	})
	return n
}

// isDecorative reports whether the node is an emoji, sticker or reaction icon
// rather than a photo attached to the post
func isDecorative(n assetNode) bool {
	for _, cls := range n.parents {
		if strings.Contains(cls, reactionsMarker) {
			return true
		}
	}
	if strings.Contains(n.class, emojiMarker) {
		return true
	}
	for _, marker := range emojiSrcMarkers {
		if strings.Contains(n.src, marker) {
			return true
		}
	}
	return strings.Contains(n.style, "emoji") || strings.Contains(n.style, "sticker")
}

// backgroundImage returns the url of a css background-image in the style text
func backgroundImage(style string) (string, bool) {
	m := bgImageRe.FindStringSubmatch(style)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Photos collects urls of photos attached to the post: background images first, then the
// link preview image, then the remaining img tags. Decorative images are skipped and
// duplicates and empty urls removed, first occurrence wins.
func (b Bubble) Photos() []string {
	var photos []string

	b.sel.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		u, ok := backgroundImage(s.AttrOr("style", ""))
		if !ok || isDecorative(newAssetNode(s)) {
			return
		}
		photos = append(photos, u)
	})

	if img := b.sel.Find("a.tgme_widget_message_link_preview img[src]").First(); img.Length() > 0 {
		if !isDecorative(newAssetNode(img)) {
			photos = append(photos, img.AttrOr("src", ""))
		}
	}

	b.sel.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		if isDecorative(newAssetNode(s)) {
			return
		}
		photos = append(photos, s.AttrOr("src", ""))
	})

	return unique(photos)
}

func unique(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	res := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		res = append(res, u)
	}
	return res
}
