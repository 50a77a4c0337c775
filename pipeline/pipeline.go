package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/maciejzgadzaj/commit-block/aggregate"
	"github.com/maciejzgadzaj/commit-block/commit"
	"github.com/maciejzgadzaj/commit-block/config"
	"github.com/maciejzgadzaj/commit-block/fetcher/types"
	"github.com/maciejzgadzaj/commit-block/parser"
	"github.com/maciejzgadzaj/commit-block/parser/factory"
)

// Source binds a commit source kind to the URL its feed is fetched from.
type Source struct {
	Kind commit.Source
	URL  string
}

// SourcesFor returns the fixed, ordered source list for a
// configuration: tracker first, then activity feed. The order is part
// of the aggregation contract — commits with equal timestamps resolve
// to it.
func SourcesFor(cfg config.Config) []Source {
	return []Source{
		{Kind: commit.Tracker, URL: cfg.TrackerFeedURL()},
		{Kind: commit.Activity, URL: cfg.ActivityFeedURL()},
	}
}

// Pipeline runs fetch, normalize and aggregate over a fixed set of
// feed sources.
type Pipeline struct {
	fetcher     types.FeedFetcher
	sources     []Source
	normalizers map[commit.Source]parser.Normalizer
	limit       int
}

// New creates a Pipeline that shows at most limit commits.
func New(f types.FeedFetcher, sources []Source, limit int) (*Pipeline, error) {
	kinds := make([]commit.Source, 0, len(sources))
	for _, s := range sources {
		kinds = append(kinds, s.Kind)
	}
	normalizers, err := factory.Init(kinds)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		fetcher:     f,
		sources:     sources,
		normalizers: normalizers,
		limit:       limit,
	}, nil
}

// Run fetches all sources concurrently, normalizes each result and
// returns the merged, ranked commit list. A failed fetch degrades
// that source to an empty list and is logged; Run never returns an
// error and total failure shows as an empty slice.
func (p *Pipeline) Run(ctx context.Context) []commit.Commit {
	// The sources are independent and side-effect-free toward each
	// other, so they fetch in parallel. Results land in fixed slots
	// so aggregation sees them in configured order regardless of
	// which network call completed first.
	feeds := make([]*types.Feed, len(p.sources))

	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			feed, err := p.fetcher.Fetch(ctx, src.URL)
			if err != nil {
				slog.Warn("feed fetch failed, treating as empty", "source", src.Kind, "url", src.URL, "error", err)
				return
			}
			feeds[i] = &feed
		}(i, src)
	}
	wg.Wait()

	lists := make([][]commit.Commit, 0, len(p.sources))
	for i, src := range p.sources {
		if feeds[i] == nil {
			lists = append(lists, nil)
			continue
		}
		commits := p.normalizers[src.Kind].Normalize(*feeds[i])
		slog.Debug("normalized feed", "source", src.Kind, "items", len(feeds[i].Items), "commits", len(commits))
		lists = append(lists, commits)
	}

	merged := aggregate.Merge(lists, p.limit)
	slog.Info("aggregated commits", "sources", len(p.sources), "shown", len(merged))
	return merged
}
