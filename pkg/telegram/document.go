// Package telegram reads public channel preview pages (t.me/s/{channel}) and turns the
// message bubbles found there into feed items.
package telegram

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed channel preview page. It lives for a single request.
type Document struct {
	doc *goquery.Document
}

// Bubble is the subtree of a single rendered channel post
type Bubble struct {
	sel *goquery.Selection
}

// NewDocument parses a channel preview page
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Title returns the page title, or fallback if the page has none
func (d *Document) Title(fallback string) string {
	if title := strings.TrimSpace(d.doc.Find("title").First().Text()); title != "" {
		return title
	}
	return fallback
}

// Description returns the og:description of the page, "Posts from {title}" if the tag is missing
func (d *Document) Description(title string) string {
	if desc, ok := d.doc.Find("meta[property='og:description'][content]").First().Attr("content"); ok {
		return strings.TrimSpace(desc)
	}
	return "Posts from " + title
}

// Bubbles returns message bubbles in document order
func (d *Document) Bubbles() []Bubble {
	sel := d.doc.Find("div.tgme_widget_message_bubble")
	res := make([]Bubble, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		res = append(res, Bubble{sel: s})
	})
	return res
}

// permalink returns href of the post date anchor
func (b Bubble) permalink() (string, bool) {
	return b.sel.Find("a.tgme_widget_message_date[href]").First().Attr("href")
}

// datetime returns the datetime attribute of the post time indicator
func (b Bubble) datetime() (string, bool) {
	return b.sel.Find("time.time[datetime]").First().Attr("datetime")
}

// text returns the message text container, empty selection if the post has no text
func (b Bubble) text() *goquery.Selection {
	return b.sel.Find("div.tgme_widget_message_text").First()
}
