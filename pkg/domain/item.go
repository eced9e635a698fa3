package domain

import "time"

// Item represents a single channel post converted for the feed
type Item struct {
	Title           string
	Link            string
	GUID            string
	GUIDIsPermaLink bool
	Description     string // restricted html with p, a, br and img only
	Content         string // full html for content:encoded
	Published       time.Time
	Enclosure       *Enclosure
}

// Enclosure represents a media file attached to an item
type Enclosure struct {
	URL    string
	Type   string
	Length int64 // 0 if unknown
}
