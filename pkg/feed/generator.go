package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/tgrss/pkg/domain"
)

// Generator creates RSS feeds from channel items
type Generator struct {
	name string
}

// NewGenerator creates a new feed generator, name goes to the generator element if set
func NewGenerator(name string) *Generator {
	return &Generator{name: name}
}

// GenerateRSS creates an RSS 2.0 feed of the channel with one item per record, in the given order
func (g *Generator) GenerateRSS(ch domain.Channel, items []domain.Item, buildTime time.Time) (string, error) {
	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	feed := &RSS{
		Version: "2.0",
		Content: contentNS,
		Channel: &RSSChannel{
			Title:         ch.Title,
			Link:          ch.Link,
			Description:   ch.Description,
			Generator:     g.name,
			LastBuildDate: buildTime.Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	// marshal to XML
	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	// add XML declaration
	return xml.Header + string(output), nil
}

// convertToRSSItem converts a domain item to an RSS item
func (g *Generator) convertToRSSItem(item domain.Item) *RSSItem {
	res := &RSSItem{
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
		PubDate:     item.Published.Format(time.RFC1123Z),
	}

	if item.GUID != "" {
		res.GUID = &RSSGUID{Value: item.GUID, IsPermaLink: "false"}
		if item.GUIDIsPermaLink {
			res.GUID.IsPermaLink = "true"
		}
	}

	if item.Enclosure != nil {
		res.Enclosure = &RSSEnclosure{URL: item.Enclosure.URL, Length: item.Enclosure.Length, Type: item.Enclosure.Type}
	}

	if content := xmlSafe(item.Content); content != "" {
		res.Content = &RSSContent{Value: content}
	}
	return res
}

// xmlSafe drops characters not allowed in XML 1.0. CDATA is written as is, so a single
// control character in a post would break the whole document.
func xmlSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		}
		return r
	}, s)
}
