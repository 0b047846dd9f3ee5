package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/streamio-cli/streamio/gallery"
	"github.com/streamio-cli/streamio/query"
	"github.com/streamio-cli/streamio/streamio"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, b.reload())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// notifications arrive as plain strings
	notifyCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case galleryMsg:
		return b, tea.Batch(notifyCmd, b.applyOutcome(gallery.Outcome(msg)))
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var (
		model tea.Model = b
		cmd   tea.Cmd
	)

	switch b.state {
	case loadingState:
		model, cmd = b.updateLoading(msg)
	case galleryState:
		model, cmd = b.updateGallery(msg)
	case tagsState:
		model, cmd = b.updateTags(msg)
	case detailState:
		model, cmd = b.updateDetail(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	}

	return model, tea.Batch(notifyCmd, cmd)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.back) {
			// the request keeps running and is applied when it lands
			b.setState(galleryState)
			return b, nil
		}
	case spinner.TickMsg:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	}

	return b, nil
}

func (b *statefulBubble) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.play):
			v, ok := b.selectedVideo()
			if !ok {
				break
			}
			t, ok := streamio.SelectPlayable(v).Get()
			if !ok {
				return b, notify("No playable stream for " + v.DisplayTitle())
			}
			return b, b.play(v, t)
		case bubblesKey.Matches(msg, b.keymap.openURL):
			v, ok := b.selectedVideo()
			if !ok {
				break
			}
			t, ok := streamio.SelectPlayable(v).Get()
			if !ok {
				return b, notify("No playable stream for " + v.DisplayTitle())
			}
			return b, b.openInBrowser(t)
		case bubblesKey.Matches(msg, b.keymap.details):
			v, ok := b.selectedVideo()
			if !ok {
				break
			}
			b.selected = v
			return b, b.showRenditions(v)
		case bubblesKey.Matches(msg, b.keymap.loadMore):
			return b, b.loadMore()
		case bubblesKey.Matches(msg, b.keymap.reload):
			return b, b.reload()
		case bubblesKey.Matches(msg, b.keymap.sort):
			opts := b.gallery.Options()
			opts.Sort = opts.Sort.Next()
			b.gallery.Configure(opts)
			return b, b.reload()
		case bubblesKey.Matches(msg, b.keymap.tags):
			b.inputC.SetValue(strings.Join(b.gallery.Options().Tags, ", "))
			b.inputC.CursorEnd()
			b.newState(tagsState)
			return b, b.inputC.Focus()
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.videosC.Items()); n > 0 && b.videosC.Index() == 0 {
				b.videosC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.videosC.Items()); n > 0 && b.videosC.Index() == n-1 {
				b.videosC.Select(0)
				return b, nil
			}
		}
	}

	b.videosC, cmd = b.videosC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) showRenditions(v *streamio.Video) tea.Cmd {
	best, _, found := streamio.SelectTier(v)

	items := make([]list.Item, 0, len(v.Transcodings))
	for _, t := range v.Transcodings {
		if t == nil {
			continue
		}
		items = append(items, &listItem{internal: t, marked: found && t == best})
	}

	b.renditionsC.Title = v.DisplayTitle()
	b.newState(detailState)
	return b.renditionsC.SetItems(items)
}

func (b *statefulBubble) updateTags(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			value := b.inputC.Value()
			opts := b.gallery.Options()
			opts.Tags = streamio.ParseTags(value)
			b.gallery.Configure(opts)

			b.inputC.Blur()
			b.suggestion = mo.None[string]()
			b.previousState()
			return b, tea.Batch(b.reload(), rememberTags(value))
		case bubblesKey.Matches(msg, b.keymap.acceptTagSuggestion) && b.suggestion.IsPresent():
			b.inputC.SetValue(b.suggestion.MustGet())
			b.inputC.CursorEnd()
			b.suggestion = mo.None[string]()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.suggestion = mo.None[string]()
			b.previousState()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if value := b.inputC.Value(); value != "" {
		if suggestion, ok := query.Suggest(value).Get(); ok && suggestion != value {
			b.suggestion = mo.Some(suggestion)
		} else {
			b.suggestion = mo.None[string]()
		}
	} else {
		b.suggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.play):
			if t, ok := b.selectedRendition(); ok && b.selected != nil {
				return b, b.play(b.selected, t)
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if t, ok := b.selectedRendition(); ok {
				return b, b.openInBrowser(t)
			}
		case bubblesKey.Matches(msg, b.keymap.back):
			b.renditionsC.ResetSelected()
			b.selected = nil
			b.previousState()
			return b, nil
		}
	}

	b.renditionsC, cmd = b.renditionsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.reload):
			return b, b.reload()
		case bubblesKey.Matches(msg, b.keymap.back):
			b.setState(galleryState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}
