package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/streamio-cli/streamio/gallery"
	"github.com/streamio-cli/streamio/streamio"
	"github.com/streamio-cli/streamio/util"
)

// VideoPicker narrows the loaded videos to one. It returns nil when nothing matches.
type VideoPicker func([]*streamio.Video) *streamio.Video

type Options struct {
	Out io.Writer
	// Err receives hints meant for humans. Defaults to stderr.
	Err     io.Writer
	Gallery *gallery.Gallery
	Json    bool
	// All keeps loading until the gallery total is reached or the catalog ends.
	All bool
	// Streams prints only the selected stream URL per video.
	Streams bool
	// Describe prints each video's description below it, wrapped to Width.
	Describe    bool
	Width       int
	VideoPicker mo.Option[VideoPicker]
}

// ParseVideoPicker builds a picker from a selector kind and its argument.
func ParseVideoPicker(kind, value string) (VideoPicker, error) {
	switch kind {
	case "first":
		return func(videos []*streamio.Video) *streamio.Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[0]
		}, nil
	case "last":
		return func(videos []*streamio.Video) *streamio.Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[len(videos)-1]
		}, nil
	case "id":
		return func(videos []*streamio.Video) *streamio.Video {
			for _, v := range videos {
				if v.ID == value {
					return v
				}
			}
			return nil
		}, nil
	case "title":
		return func(videos []*streamio.Video) *streamio.Video {
			for _, v := range videos {
				if strings.EqualFold(v.DisplayTitle(), value) {
					return v
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(videos []*streamio.Video) *streamio.Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[util.Min(idx, uint64(len(videos)-1))]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// ParseSelector accepts the --video flag forms: first, last, a number, id:<id> or
// title:<title>.
func ParseSelector(selector string) (VideoPicker, error) {
	switch {
	case selector == "first", selector == "last":
		return ParseVideoPicker(selector, "")
	case strings.HasPrefix(selector, "id:"):
		return ParseVideoPicker("id", strings.TrimPrefix(selector, "id:"))
	case strings.HasPrefix(selector, "title:"):
		return ParseVideoPicker("title", strings.TrimPrefix(selector, "title:"))
	default:
		return ParseVideoPicker("index", selector)
	}
}
