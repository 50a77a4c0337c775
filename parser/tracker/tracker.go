package tracker

import (
	"regexp"
	"strings"

	"github.com/maciejzgadzaj/commit-block/commit"
	"github.com/maciejzgadzaj/commit-block/fetcher/types"
)

// The tracker feed embeds its useful data inside loosely structured
// HTML fragments, so extraction is pattern matching rather than
// parsing. Both patterns are case-insensitive, dot-matches-newline
// and ungreedy; those quirks match the real upstream markup and must
// not be "fixed".
var (
	// project name from the /project/ link, then the commit message
	// from the first <pre> block of the item description
	descriptionPattern = regexp.MustCompile(`(?is)/project/(.*?)".*?<pre>(.*?)</pre>`)

	// commit hash is the trailing path segment of the commitlog link
	commitLogPattern = regexp.MustCompile(`(?i)/commitlog/commit/[^/]+/(.+)`)
)

// Normalizer converts a tracker RSS feed into commit records
type Normalizer struct{}

// New creates a new tracker normalizer
func New() Normalizer {
	return Normalizer{}
}

// Normalize returns one commit per feed item, whether or not the
// extraction patterns match. Unmatched patterns leave the derived
// fields empty; an unparseable publish date leaves the sentinel
// timestamp so the record sorts last.
func (Normalizer) Normalize(feed types.Feed) []commit.Commit {
	commits := make([]commit.Commit, 0, len(feed.Items))

	for _, item := range feed.Items {
		c := commit.Commit{
			Title:     item.Title,
			Date:      item.Published,
			Timestamp: commit.UnknownTimestamp,
			Link:      item.Link,
			Source:    commit.Tracker,
		}

		if m := descriptionPattern.FindStringSubmatch(item.Description); m != nil {
			c.Project = strings.TrimSpace(m[1])
			c.Message = strings.TrimSpace(m[2])
		}
		if m := commitLogPattern.FindStringSubmatch(item.Link); m != nil {
			c.Hash = strings.TrimSpace(m[1])
		}
		if item.PublishedAt != nil {
			c.Timestamp = item.PublishedAt.Unix()
		}

		commits = append(commits, c)
	}

	return commits
}
