package activity

import (
	"regexp"
	"strings"

	"github.com/maciejzgadzaj/commit-block/commit"
	"github.com/maciejzgadzaj/commit-block/fetcher/types"
)

// pushEventMarker selects the commit-producing entries of the
// activity feed; entry ids look like
// "tag:github.com,2008:PushEvent/12345678901".
const pushEventMarker = "PushEvent"

// One pass over the entry's embedded HTML captures, in order, the
// repository name from the anchor after the " at " marker, the commit
// hash from the /commit/ href, and the blockquote-enclosed message.
// Case-insensitive, dot-matches-newline, ungreedy, same as the
// tracker patterns.
var contentPattern = regexp.MustCompile(`(?is)\sat\s+<a[^>]*>(.*?)</a>.*?/commit/(.*?)".*?<blockquote[^>]*>(.*?)</blockquote>`)

// Normalizer converts an activity Atom feed into commit records
type Normalizer struct{}

// New creates a new activity-feed normalizer
func New() Normalizer {
	return Normalizer{}
}

// Normalize returns one commit per push entry; entries for other
// event kinds (stars, follows, issue comments) are skipped silently.
// If the content pattern fails to match, all three derived fields are
// empty; a group that matched empty text stays independently empty
// without failing the others.
func (Normalizer) Normalize(feed types.Feed) []commit.Commit {
	var commits []commit.Commit

	for _, item := range feed.Items {
		if !strings.Contains(item.GUID, pushEventMarker) {
			continue
		}

		c := commit.Commit{
			Title:     item.Title,
			Date:      item.Published,
			Timestamp: commit.UnknownTimestamp,
			Link:      item.Link,
			Source:    commit.Activity,
		}

		if m := contentPattern.FindStringSubmatch(item.Content); m != nil {
			c.Project = strings.TrimSpace(m[1])
			c.Hash = strings.TrimSpace(m[2])
			c.Message = strings.TrimSpace(m[3])
		}
		if item.PublishedAt != nil {
			c.Timestamp = item.PublishedAt.Unix()
		}

		commits = append(commits, c)
	}

	return commits
}
