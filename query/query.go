// Package query remembers the tag filters the gallery was narrowed with and suggests them back.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/filesystem"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/streamio"
	"github.com/streamio-cli/streamio/where"
	"golang.org/x/exp/slices"
)

type tagRecord struct {
	Rank int    `json:"rank"`
	Tags string `json:"tags"`
}

var cacher = gache.New[map[string]*tagRecord](
	&gache.Options{
		Path:       where.Tags(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*tagRecord)

// Remember records a tag filter or bumps its rank. Empty filters are ignored.
func Remember(tags string, weight int) error {
	tags = sanitize(tags)
	if tags == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*tagRecord)
	}

	if record, ok := cached[tags]; ok {
		record.Rank += weight
	} else {
		cached[tags] = &tagRecord{Rank: weight, Tags: tags}
	}

	clear(suggestionCache)
	return cacher.Set(cached)
}

// Suggest returns the best remembered filter for a partial input.
func Suggest(tags string) mo.Option[string] {
	suggestions := SuggestMany(tags)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered filters fuzzily matching the input, highest rank first.
func SuggestMany(tags string) []string {
	if !viper.GetBool(key.SearchShowTagSuggestions) {
		return []string{}
	}

	tags = sanitize(tags)
	var records []*tagRecord

	if prev, ok := suggestionCache[tags]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(tags, record.Tags) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *tagRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Tags, b.Tags)
		})

		suggestionCache[tags] = records
	}

	return lo.Map(records, func(r *tagRecord, _ int) string {
		return r.Tags
	})
}

// sanitize lowercases and normalizes a comma separated filter, so "News , Sport" and
// "news,sport" are the same record.
func sanitize(tags string) string {
	return strings.Join(streamio.ParseTags(strings.ToLower(tags)), ",")
}
