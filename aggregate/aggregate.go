package aggregate

import (
	"sort"

	"github.com/maciejzgadzaj/commit-block/commit"
)

// Merge concatenates the per-source commit lists, sorts by timestamp
// descending and truncates to limit. The sort is stable: commits with
// equal timestamps keep the concatenation order (first list first,
// then within-list order). Callers rely on that for deterministic
// output, so the lists must be supplied in a fixed source order.
func Merge(lists [][]commit.Commit, limit int) []commit.Commit {
	var merged []commit.Commit
	for _, list := range lists {
		merged = append(merged, list...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp > merged[j].Timestamp
	})

	if limit < 0 {
		limit = 0
	}
	if len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
