package service

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/tgrss/pkg/domain"
	"github.com/umputun/tgrss/pkg/telegram"
)

// Fetcher loads telegram channel preview pages
type Fetcher interface {
	Fetch(ctx context.Context, channel string) (*telegram.Document, error)
	ChannelURL(channel string) string
}

// ItemBuilder converts a channel page into feed items
type ItemBuilder interface {
	BuildAll(doc *telegram.Document, channel string) []domain.Item
}

// Generator renders channel and items as a feed document
type Generator interface {
	GenerateRSS(ch domain.Channel, items []domain.Item, buildTime time.Time) (string, error)
}

// FeedService builds the RSS feed of a channel. Every call does one fetch and keeps
// nothing between calls.
type FeedService struct {
	fetcher   Fetcher
	builder   ItemBuilder
	generator Generator
	now       func() time.Time
}

// NewFeedService creates a new feed service
func NewFeedService(fetcher Fetcher, builder ItemBuilder, generator Generator) *FeedService {
	return &FeedService{
		fetcher:   fetcher,
		builder:   builder,
		generator: generator,
		now:       time.Now,
	}
}

// Build fetches the channel page and returns the RSS document for it.
// Either the whole feed is produced or an error returned.
func (s *FeedService) Build(ctx context.Context, channel string) (string, error) {
	doc, err := s.fetcher.Fetch(ctx, channel)
	if err != nil {
		return "", err
	}

	title := doc.Title(channel)
	ch := domain.Channel{
		Name:        channel,
		Title:       title,
		Link:        s.fetcher.ChannelURL(channel),
		Description: doc.Description(title),
	}

	items := s.builder.BuildAll(doc, channel)
	rss, err := s.generator.GenerateRSS(ch, items, s.now())
	if err != nil {
		return "", fmt.Errorf("generate feed for %s: %w", channel, err)
	}
	return rss, nil
}
