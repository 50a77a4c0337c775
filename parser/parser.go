package parser

import (
	"github.com/maciejzgadzaj/commit-block/commit"
	"github.com/maciejzgadzaj/commit-block/fetcher/types"
)

// Normalizer extracts commit records in the common schema from a
// parsed feed. One implementation exists per commit source; all share
// this signature and none returns an error — a feed that does not
// look like the source's format yields an empty list.
type Normalizer interface {
	Normalize(feed types.Feed) []commit.Commit
}
