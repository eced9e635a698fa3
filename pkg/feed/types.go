package feed

import (
	"encoding/xml"
)

// contentNS is the RSS content module namespace, used for content:encoded
const contentNS = "http://purl.org/rss/1.0/modules/content/"

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Content string      `xml:"xmlns:content,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	Generator     string     `xml:"generator,omitempty"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// RSSItem represents an item in an RSS feed
type RSSItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	PubDate     string        `xml:"pubDate"`
	GUID        *RSSGUID      `xml:"guid,omitempty"`
	Enclosure   *RSSEnclosure `xml:"enclosure,omitempty"`
	Content     *RSSContent   `xml:"content:encoded,omitempty"`
}

// RSSGUID is the item guid with its permalink flag
type RSSGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr,omitempty"`
	Value       string `xml:",chardata"`
}

// RSSEnclosure represents a media file attached to an item
type RSSEnclosure struct {
	URL    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// RSSContent holds raw html of content:encoded, written as CDATA
type RSSContent struct {
	Value string `xml:",cdata"`
}
