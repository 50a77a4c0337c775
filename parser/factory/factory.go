package factory

import (
	"fmt"

	"github.com/maciejzgadzaj/commit-block/commit"
	"github.com/maciejzgadzaj/commit-block/parser"
	"github.com/maciejzgadzaj/commit-block/parser/activity"
	"github.com/maciejzgadzaj/commit-block/parser/tracker"
)

// Init creates a map of commit sources to their corresponding normalizers
func Init(sources []commit.Source) (map[commit.Source]parser.Normalizer, error) {
	normalizers := make(map[commit.Source]parser.Normalizer)

	for _, s := range sources {
		// Skip if we already have a normalizer for this source
		if normalizers[s] != nil {
			continue
		}

		switch s {
		case commit.Tracker:
			normalizers[s] = tracker.New()
		case commit.Activity:
			normalizers[s] = activity.New()
		default:
			return nil, fmt.Errorf("unknown commit source: %s", s)
		}
	}

	return normalizers, nil
}
