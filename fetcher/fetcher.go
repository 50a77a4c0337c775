package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/maciejzgadzaj/commit-block/fetcher/types"
)

// Fetcher retrieves feed XML over HTTP and converts it to the shared
// feed schema using gofeed. The same document always converts to the
// same types.Feed; everything gofeed exposes beyond the fields the
// normalizers consume is dropped.
type Fetcher struct {
	parser *gofeed.Parser
	client *http.Client
}

// New creates a new Fetcher whose requests are bounded by timeout.
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		parser: gofeed.NewParser(),
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and parses a feed from the given URL. Any transport
// error, non-2xx status, timeout or parse failure comes back as an
// error; callers must treat it the same as an empty feed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (types.Feed, error) {
	var feed types.Feed

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return feed, fmt.Errorf("failed to build feed request for '%s' with %w", url, err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return feed, fmt.Errorf("failed to fetch feed from '%s' with %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return feed, fmt.Errorf("feed request to '%s' returned status %d", url, resp.StatusCode)
	}

	return f.Parse(resp.Body)
}

// Parse converts a raw RSS or Atom document into the shared feed
// schema. Exposed separately from Fetch so tests and offline callers
// can parse without a transport.
func (f *Fetcher) Parse(r io.Reader) (types.Feed, error) {
	var feed types.Feed

	gofeedFeed, err := f.parser.Parse(r)
	if err != nil {
		return feed, fmt.Errorf("failed to parse feed: %w", err)
	}

	feed.Title = gofeedFeed.Title
	feed.Items = make([]types.Item, 0, len(gofeedFeed.Items))

	for _, item := range gofeedFeed.Items {
		feedItem := types.Item{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Content:     item.Content,
			GUID:        item.GUID,
			Published:   item.Published,
		}

		// Parse published date if available
		if item.PublishedParsed != nil {
			feedItem.PublishedAt = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			feedItem.PublishedAt = item.UpdatedParsed
		}
		if feedItem.Published == "" {
			feedItem.Published = item.Updated
		}

		feed.Items = append(feed.Items, feedItem)
	}

	return feed, nil
}
