package streamio

import "github.com/samber/lo"

// IsReady reports whether a video can be shown: it finished processing, has a normal
// screenshot, and at least one finished rendition with a progressive or adaptive URI.
func IsReady(v *Video) bool {
	if v == nil || v.State != StateReady || v.Thumbnail() == "" {
		return false
	}

	return lo.SomeBy(v.Transcodings, func(t *Transcoding) bool {
		return t.Ready() && (t.HLSURI != "" || t.HTTPURI != "")
	})
}

// FilterReady keeps the ready videos, preserving order.
func FilterReady(videos []*Video) []*Video {
	return lo.Filter(videos, func(v *Video, _ int) bool {
		return IsReady(v)
	})
}
