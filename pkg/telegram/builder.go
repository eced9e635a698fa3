package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/umputun/tgrss/pkg/content"
	"github.com/umputun/tgrss/pkg/domain"
)

// SiteURL is the base relative links in posts are resolved against
const SiteURL = "https://t.me/"

// ItemBuilder converts message bubbles into feed items
type ItemBuilder struct {
	siteURL string
	policy  *bluemonday.Policy
	now     func() time.Time
}

// NewItemBuilder creates a builder resolving relative post links against siteURL,
// empty siteURL means SiteURL.
func NewItemBuilder(siteURL string) *ItemBuilder {
	if siteURL == "" {
		siteURL = SiteURL
	}
	return &ItemBuilder{
		siteURL: siteURL,
		policy:  content.NewFullContentPolicy(),
		now:     time.Now,
	}
}

// BuildAll converts every bubble of the document, bubbles without a permalink are skipped
func (b *ItemBuilder) BuildAll(doc *Document, channel string) []domain.Item {
	bubbles := doc.Bubbles()
	items := make([]domain.Item, 0, len(bubbles))
	for _, bubble := range bubbles {
		if item, ok := b.Build(bubble, channel); ok {
			items = append(items, item)
		}
	}
	return items
}

// Build converts a single bubble into a feed item. Returns false if the bubble has no
// permalink. Missing time falls back to the current time, missing text to an item
// made of photos or the bare link.
func (b *ItemBuilder) Build(bubble Bubble, channel string) (domain.Item, bool) {
	href, ok := bubble.permalink()
	if !ok || href == "" {
		return domain.Item{}, false
	}
	link := previewLink(href)

	rich := b.richText(bubble)
	desc := content.SanitizeLinks(rich)
	if desc == "" {
		desc = content.Autolink(b.plainText(bubble))
	}
	desc = "<p>" + desc + "</p>"

	photos := b.photos(bubble)
	media := photoTags(photos)

	body := b.policy.Sanitize(rich) + media
	if body == "" {
		body = link
	}

	item := domain.Item{
		Title:           fmt.Sprintf("New post in channel @%s", channel),
		Link:            link,
		GUID:            link,
		GUIDIsPermaLink: true,
		Description:     desc + media,
		Content:         body,
		Published:       b.published(bubble),
	}
	if len(photos) > 0 {
		item.Enclosure = &domain.Enclosure{URL: photos[0], Type: content.MimeType(photos[0]), Length: 0}
	}
	return item, true
}

// photos returns absolute photo urls of the bubble, deduplicated after resolution
// so a relative and an absolute form of the same url give one photo
func (b *ItemBuilder) photos(bubble Bubble) []string {
	photos := bubble.Photos()
	for i, u := range photos {
		photos[i] = content.ResolveURL(b.siteURL, u)
	}
	return unique(photos)
}

// richText returns inner html of the message text with relative links made absolute
func (b *ItemBuilder) richText(bubble Bubble) string {
	text := bubble.text()
	if text.Length() == 0 {
		return ""
	}
	res, err := text.Html()
	if err != nil {
		return ""
	}
	return content.Absolutize(strings.TrimSpace(res), b.siteURL)
}

func (b *ItemBuilder) plainText(bubble Bubble) string {
	text := bubble.text()
	if text.Length() == 0 {
		return ""
	}
	return content.PlainText(text.Nodes[0])
}

// published parses the post time, current time is used if it's missing or broken
func (b *ItemBuilder) published(bubble Bubble) time.Time {
	dt, ok := bubble.datetime()
	if !ok {
		return b.now()
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(dt))
	if err != nil {
		return b.now()
	}
	return ts
}

// previewLink points a post permalink to its web preview, t.me/chan/1 -> t.me/s/chan/1
func previewLink(href string) string {
	if strings.Contains(href, "://t.me/s/") {
		return href
	}
	return strings.Replace(href, "://t.me/", "://t.me/s/", 1)
}

func photoTags(photos []string) string {
	var sb strings.Builder
	for _, u := range photos {
		fmt.Fprintf(&sb, `<p><img src="%s" referrerpolicy="no-referrer"/></p>`, html.EscapeString(u))
	}
	return sb.String()
}
