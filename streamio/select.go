package streamio

import (
	"strings"

	"github.com/samber/mo"
)

// Tier is one ranked rule of the stream preference order. Lower ranks win.
type Tier struct {
	Rank  int
	Name  string
	Match func(*Transcoding) bool
}

// Progressive downloads beat adaptive streams since a single file plays everywhere.
// Quality is only known from the free-text title label, so matching it is best effort.
var tiers = []Tier{
	{1, "progressive-720p", both(progressive, labelled("720p"))},
	{2, "progressive-1080p", both(progressive, labelled("1080p"))},
	{3, "progressive", progressive},
	{4, "hls-720p", both(adaptive, labelled("720p"))},
	{5, "hls-1080p", both(adaptive, labelled("1080p"))},
	{6, "hls", adaptive},
}

// Tiers returns the preference order, best first.
func Tiers() []Tier {
	return append([]Tier(nil), tiers...)
}

func progressive(t *Transcoding) bool {
	return t.Ready() && t.HTTPURI != ""
}

func adaptive(t *Transcoding) bool {
	return t.Ready() && t.HLSURI != "" && strings.HasSuffix(t.HLSURI, ".m3u8")
}

func labelled(quality string) func(*Transcoding) bool {
	return func(t *Transcoding) bool {
		return strings.Contains(t.Title, quality)
	}
}

func both(a, b func(*Transcoding) bool) func(*Transcoding) bool {
	return func(t *Transcoding) bool {
		return a(t) && b(t)
	}
}

// SelectTier finds the best rendition and the tier it matched. Within a tier the first
// rendition in upstream order wins.
func SelectTier(v *Video) (*Transcoding, Tier, bool) {
	if v == nil {
		return nil, Tier{}, false
	}

	for _, tier := range tiers {
		for _, t := range v.Transcodings {
			if t != nil && tier.Match(t) {
				return t, tier, true
			}
		}
	}

	return nil, Tier{}, false
}

// SelectPlayable returns the single rendition to play, if any. A video can be ready and
// still have nothing selectable, e.g. when its only finished rendition is a non-m3u8 stream.
func SelectPlayable(v *Video) mo.Option[*Transcoding] {
	if t, _, ok := SelectTier(v); ok {
		return mo.Some(t)
	}
	return mo.None[*Transcoding]()
}
