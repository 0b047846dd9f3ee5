package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamio-cli/streamio/gallery"
	"github.com/streamio-cli/streamio/icon"
	"github.com/streamio-cli/streamio/log"
	"github.com/streamio-cli/streamio/open"
	"github.com/streamio-cli/streamio/query"
	"github.com/streamio-cli/streamio/streamio"
	"github.com/streamio-cli/streamio/util"
)

// galleryMsg carries a finished request back to Update together with its epoch.
type galleryMsg gallery.Outcome

func notify(s string) tea.Cmd {
	return func() tea.Msg {
		return s
	}
}

func (b *statefulBubble) fetch(req gallery.Request) tea.Cmd {
	return func() tea.Msg {
		log.Infof("gallery request %d: %d records from offset %d", req.Epoch, req.Query.Total, req.Query.Offset)
		return galleryMsg(b.gallery.Fetch(b.ctx, req))
	}
}

// reload always supersedes a request in flight.
func (b *statefulBubble) reload() tea.Cmd {
	req := b.gallery.Reload()
	b.progressStatus = fmt.Sprintf("Fetching %s...", util.Quantify(req.Query.Total, "video", "videos"))
	b.setState(loadingState)
	return tea.Batch(b.startLoading(), b.fetch(req))
}

func (b *statefulBubble) loadMore() tea.Cmd {
	req, ok := b.gallery.More()
	if !ok {
		if b.loading {
			return notify("Still loading")
		}
		return notify("Nothing more to load")
	}

	b.progressStatus = fmt.Sprintf("Loading %s more...", util.Quantify(req.Query.Total, "video", "videos"))
	return tea.Batch(b.startLoading(), b.fetch(req))
}

// applyOutcome folds a finished request into the view. Outcomes of superseded requests are
// dropped without touching anything.
func (b *statefulBubble) applyOutcome(o gallery.Outcome) tea.Cmd {
	if !b.gallery.Apply(o) {
		return nil
	}

	b.stopLoading()
	s := b.gallery.State()
	cmd := b.syncVideos(s)

	if s.Err != nil {
		if o.Request.Append {
			return tea.Batch(cmd, notify(fmt.Sprintf("Loading more failed: %v", s.Err)))
		}
		b.raiseError(s.Err)
		return cmd
	}

	if b.state == loadingState {
		b.setState(galleryState)
	}

	if s.Unconfigured {
		return tea.Batch(cmd, notify("Credentials not configured"))
	}

	return cmd
}

func (b *statefulBubble) play(v *streamio.Video, t *streamio.Transcoding) tea.Cmd {
	url := streamio.FullURL(t.URL())
	return func() tea.Msg {
		if err := open.Play(url); err != nil {
			log.Error(err)
			return fmt.Sprintf("Playback failed: %v", err)
		}
		return icon.Get(icon.Play) + " Playing " + v.DisplayTitle()
	}
}

func (b *statefulBubble) openInBrowser(t *streamio.Transcoding) tea.Cmd {
	url := streamio.FullURL(t.URL())
	return func() tea.Msg {
		if err := open.Start(url); err != nil {
			log.Error(err)
			return fmt.Sprintf("Could not open %s: %v", url, err)
		}
		return "Opened " + url
	}
}

func (b *statefulBubble) selectedVideo() (*streamio.Video, bool) {
	item, ok := b.videosC.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}
	v, ok := item.internal.(*streamio.Video)
	return v, ok
}

func (b *statefulBubble) selectedRendition() (*streamio.Transcoding, bool) {
	item, ok := b.renditionsC.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}
	t, ok := item.internal.(*streamio.Transcoding)
	return t, ok
}

// rememberTags records a tag filter for later suggestions, reporting failures as a notification.
func rememberTags(tags string) tea.Cmd {
	return func() tea.Msg {
		if err := query.Remember(tags, 1); err != nil {
			log.Warnf("could not remember tags %q: %v", tags, err)
			return fmt.Sprintf("Could not remember tags: %v", err)
		}
		return nil
	}
}
