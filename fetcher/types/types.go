package types

import (
	"context"
	"time"
)

// Feed represents a collection of items from a feed source
type Feed struct {
	Title string
	Items []Item
}

// Item represents a single item in a feed. Every field is optional:
// absent source elements leave the zero value, and downstream
// normalizers must cope with any combination of empty fields.
type Item struct {
	Title       string
	Link        string
	Description string     // RSS item description (embedded HTML)
	Content     string     // Atom entry content (embedded HTML)
	GUID        string     // GUID for RSS, entry id for Atom
	Published   string     // verbatim source timestamp string
	PublishedAt *time.Time // parsed timestamp, nil when unparseable
}

// FeedFetcher is an interface for fetching feeds from remote sources
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (Feed, error)
}
