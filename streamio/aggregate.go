package streamio

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamio-cli/streamio/log"
)

// Query is what a caller wants assembled: up to Total records starting at Offset.
type Query struct {
	Total  int
	Tags   []string
	Sort   SortOrder
	Offset int
}

// Result is the outcome of one aggregation run.
type Result struct {
	// Videos in upstream order across the concatenated pages, unfiltered.
	Videos []*Video
	// Offset reached; pass it back as Query.Offset to continue.
	Offset int
	// Pages is the number of upstream calls made.
	Pages int
	// Exhausted is set when a page came back empty or shorter than requested.
	// A short page is only a heuristic end-of-data signal: server-side filtering can shorten
	// a page in the middle of the catalog too.
	Exhausted bool
	// Unconfigured is set when the run was skipped for missing credentials.
	Unconfigured bool
}

// HasMore reports whether further pages may exist past Offset.
func (r *Result) HasMore() bool {
	return !r.Exhausted && !r.Unconfigured
}

// Aggregator assembles bounded result sets from sequential page fetches.
type Aggregator struct {
	fetcher PageFetcher
}

// NewAggregator returns an aggregator drawing pages from fetcher.
func NewAggregator(fetcher PageFetcher) *Aggregator {
	return &Aggregator{fetcher: fetcher}
}

// FetchUpTo fetches pages until q.Total records are collected or upstream signals the end.
//
// Pages are requested strictly one after another since each offset depends on how many
// records the previous page actually returned. Missing credentials yield an empty result and
// no request. Any fetch error aborts the run and is returned unchanged, without the records
// of earlier pages.
func (a *Aggregator) FetchUpTo(ctx context.Context, creds Credentials, q Query) (*Result, error) {
	entry := log.WithFields(log.Fields{"run": uuid.NewString()})

	if !creds.Present() {
		entry.Warn("streamio username or password not provided, skipping fetch")
		return &Result{Offset: q.Offset, Unconfigured: true}, nil
	}

	var (
		videos    []*Video
		remaining = q.Total
		offset    = q.Offset
		pages     int
		exhausted bool
	)

	// Every full page consumes MaxPageSize of the total, so this many rounds always suffice.
	maxRounds := (q.Total+MaxPageSize-1)/MaxPageSize + 1

	for remaining > 0 && pages < maxRounds {
		limit := min(remaining, MaxPageSize)

		page, err := a.fetcher.FetchPage(ctx, creds, PageRequest{
			Limit:  limit,
			Offset: offset,
			Sort:   q.Sort,
			Tags:   q.Tags,
		})
		if err != nil {
			entry.WithError(err).Errorf("page at offset %d failed", offset)
			return nil, err
		}
		pages++

		if len(page) == 0 {
			exhausted = true
			break
		}
		if len(page) > limit {
			page = page[:limit]
		}

		videos = append(videos, page...)
		offset += len(page)
		remaining -= len(page)
		entry.Debugf("page %d: %d/%d records, offset now %d", pages, len(page), limit, offset)

		if len(page) < limit {
			exhausted = true
			break
		}
	}

	entry.WithFields(log.Fields{
		"pages":     pages,
		"records":   len(videos),
		"offset":    offset,
		"exhausted": exhausted,
	}).Info("aggregation finished")

	return &Result{
		Videos:    videos,
		Offset:    offset,
		Pages:     pages,
		Exhausted: exhausted,
	}, nil
}
