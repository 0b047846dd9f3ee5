package inline

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/streamio-cli/streamio/gallery"
	"github.com/streamio-cli/streamio/streamio"
)

// Video is a ready video together with the stream playback would use.
type Video struct {
	Video *streamio.Video `json:"video"`
	// Stream is the selected rendition, null when none is playable.
	Stream *streamio.Transcoding `json:"stream"`
	// StreamURL is Stream's URL made absolute.
	StreamURL string `json:"stream_url,omitempty"`
	// Tier names the preference rule that selected Stream.
	Tier string `json:"tier,omitempty"`
}

type Output struct {
	// Total is the number of catalog records the gallery reads at most.
	Total int `json:"total"`
	// Offset is how many raw records were read, ready or not.
	Offset       int      `json:"offset"`
	HasMore      bool     `json:"has_more"`
	Unconfigured bool     `json:"unconfigured,omitempty"`
	Sort         string   `json:"sort,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Videos       []*Video `json:"videos"`
}

func newVideo(v *streamio.Video) *Video {
	out := &Video{Video: v}
	if t, tier, ok := streamio.SelectTier(v); ok {
		out.Stream = t
		out.StreamURL = streamio.FullURL(t.URL())
		out.Tier = tier.Name
	}
	return out
}

func newOutput(s gallery.State, videos []*streamio.Video) *Output {
	out := &Output{
		Total:        s.Options.Total,
		Offset:       s.Loaded,
		HasMore:      s.CanLoadMore,
		Unconfigured: s.Unconfigured,
		Sort:         s.Options.Sort.String(),
		Tags:         s.Options.Tags,
		Videos:       make([]*Video, len(videos)),
	}

	for i, v := range videos {
		out.Videos[i] = newVideo(v)
	}

	return out
}

func asJson(s gallery.State, videos []*streamio.Video) ([]byte, error) {
	return json.Marshal(newOutput(s, videos))
}

// Schema describes the JSON output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		switch t.Name() {
		case "Video", "Output":
			return "inline." + t.Name()
		}
		return t.Name()
	}

	return reflector.Reflect(&Output{})
}
