package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/icon"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/streamio"
	"github.com/streamio-cli/streamio/style"
	"github.com/streamio-cli/streamio/util"
)

// listItem adapts videos and renditions to list.Item.
type listItem struct {
	internal interface{}
	// marked highlights the rendition that playback would pick.
	marked bool
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *streamio.Video:
		title = e.DisplayTitle()
	case *streamio.Transcoding:
		title = e.Title
		if title == "" {
			title = e.ID
		}
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark)))
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *streamio.Video:
		var parts []string

		if minutes := e.Minutes(); minutes > 0 {
			parts = append(parts, util.Quantify(minutes, "min", "min"))
		}
		parts = append(parts, util.Quantify(e.Plays, "play", "plays"))

		if rendition, tier, ok := streamio.SelectTier(e); ok {
			parts = append(parts, style.Tag(style.Base, style.Green)(tier.Name))
			if viper.GetBool(key.TUIShowURLs) {
				parts = append(parts, style.Faint(streamio.FullURL(rendition.URL())))
			}
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.Yellow).Render("no playable stream"))
		}

		if len(e.Tags) > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render("#"+strings.Join(e.Tags, " #")))
		}

		description = strings.Join(parts, " • ")
	case *streamio.Transcoding:
		var parts []string
		if e.Width > 0 && e.Height > 0 {
			parts = append(parts, fmt.Sprintf("%dx%d", e.Width, e.Height))
		}
		if e.Bitrate > 0 {
			parts = append(parts, fmt.Sprintf("%d kbps", e.Bitrate))
		}
		if e.HTTPURI != "" {
			parts = append(parts, "progressive")
		}
		if e.HLSURI != "" {
			parts = append(parts, "hls")
		}
		if !e.Ready() {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.Yellow).Render(e.State))
		}
		description = strings.Join(parts, " • ")
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *streamio.Video:
		return e.DisplayTitle()
	case *streamio.Transcoding:
		return e.Title
	default:
		return ""
	}
}
