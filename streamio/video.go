// Package streamio retrieves the video catalog of a Streamio account, assembles bounded result
// sets across pages and decides which videos are playable and with which rendition.
package streamio

import (
	"math"
	"strings"
)

// StateReady is the lifecycle state of a video or transcoding that finished processing.
const StateReady = "ready"

// Video is one catalog entry as returned by the listing endpoint.
// Values are request-scoped projections of upstream state and are never mutated.
type Video struct {
	ID                    string         `json:"id"`
	AccountID             string         `json:"account_id,omitempty"`
	State                 string         `json:"state"`
	Title                 string         `json:"title"`
	Description           string         `json:"description"`
	Filename              string         `json:"filename,omitempty"`
	Duration              float64        `json:"duration"`
	Plays                 int            `json:"plays"`
	Progress              int            `json:"progress,omitempty"`
	Tags                  []string       `json:"tags,omitempty"`
	AspectRatioMultiplier float64        `json:"aspect_ratio_multiplier,omitempty"`
	CreatedAt             string         `json:"created_at,omitempty"`
	UpdatedAt             string         `json:"updated_at,omitempty"`
	Screenshot            *Screenshot    `json:"screenshot,omitempty"`
	OriginalVideo         *OriginalVideo `json:"original_video,omitempty"`
	Transcodings          []*Transcoding `json:"transcodings"`
}

// Screenshot holds the thumbnail URIs of a video.
type Screenshot struct {
	Thumb    string `json:"thumb,omitempty"`
	Normal   string `json:"normal,omitempty"`
	Original string `json:"original,omitempty"`
}

// OriginalVideo is the uploaded source file.
type OriginalVideo struct {
	HTTPURI string `json:"http_uri,omitempty"`
	Size    int64  `json:"size,omitempty"`
}

// Transcoding is one encoded rendition of a video.
type Transcoding struct {
	ID    string `json:"id"`
	State string `json:"state"`
	// Title is a free-text quality label such as "HD 720p".
	Title    string `json:"title"`
	HTTPURI  string `json:"http_uri,omitempty"`
	HLSURI   string `json:"hls_uri,omitempty"`
	RTMPURI  string `json:"rtmp_uri,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Bitrate  int    `json:"bitrate,omitempty"`
	Progress int    `json:"progress,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Ready reports whether the rendition finished processing.
func (t *Transcoding) Ready() bool {
	return t != nil && t.State == StateReady
}

// URL returns the progressive URI, or the adaptive manifest when there is none.
func (t *Transcoding) URL() string {
	if t.HTTPURI != "" {
		return t.HTTPURI
	}
	return t.HLSURI
}

// Thumbnail returns the normal-resolution screenshot URI, if any.
func (v *Video) Thumbnail() string {
	if v.Screenshot == nil {
		return ""
	}
	return v.Screenshot.Normal
}

// DisplayTitle falls back to the uploaded filename for untitled videos.
func (v *Video) DisplayTitle() string {
	if strings.TrimSpace(v.Title) != "" {
		return v.Title
	}
	return v.Filename
}

// Minutes is the duration rounded to whole minutes.
func (v *Video) Minutes() int {
	return int(math.Round(v.Duration / 60))
}

// FullURL makes an upstream URI absolute. The API hands out host-relative URIs without a
// scheme; those are served over https.
func FullURL(uri string) string {
	switch {
	case uri == "":
		return ""
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return uri
	case strings.HasPrefix(uri, "//"):
		return "https:" + uri
	default:
		return "https://" + uri
	}
}
