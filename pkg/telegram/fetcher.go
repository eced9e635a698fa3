package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is where channel preview pages are fetched from
	DefaultBaseURL = "https://t.me"
	// DefaultTimeout bounds a single page fetch
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the client to telegram as a desktop browser
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"
)

// ErrChannelNotFound returned when telegram doesn't answer with the channel page
var ErrChannelNotFound = errors.New("telegram channel not found")

// Fetcher loads channel preview pages over HTTP
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewFetcher creates a fetcher. Empty values fall back to defaults.
func NewFetcher(baseURL, userAgent string, timeout time.Duration) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// ChannelURL returns the preview page url of the channel
func (f *Fetcher) ChannelURL(channel string) string {
	return f.baseURL + "/s/" + url.PathEscape(channel)
}

// Fetch retrieves the preview page of the channel and parses it. Any status other than 200
// gives ErrChannelNotFound, the request is not retried.
func (f *Fetcher) Fetch(ctx context.Context, channel string) (*Document, error) {
	pageURL := f.ChannelURL(channel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrChannelNotFound
	}

	doc, err := NewDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}
