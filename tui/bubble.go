package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/gallery"
	"github.com/streamio-cli/streamio/icon"
	"github.com/streamio-cli/streamio/internal/ui"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/streamio"
	"github.com/streamio-cli/streamio/style"
	"github.com/streamio-cli/streamio/util"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC     spinner.Model
	inputC       textinput.Model
	videosC      list.Model
	renditionsC  list.Model
	helpC        help.Model
	notifier     *ui.Model
	ctx          context.Context
	gallery      *gallery.Gallery
	selected     *streamio.Video
	suggestion   mo.Option[string]
	loadedStatus string

	progressStatus string
	lastError      error

	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering where it came from unless that was a transient state.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if previous, ok := b.statesHistory.Pop().Get(); ok {
		b.setState(previous)
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.videosC.SetSize(listWidth, listHeight-1)
	b.videosC.Help.Width = listWidth

	b.renditionsC.SetSize(listWidth, listHeight)
	b.renditionsC.Help.Width = listWidth

	b.inputC.Width = listWidth
	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	return tea.Batch(b.spinnerC.Tick, b.videosC.StartSpinner())
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.videosC.StopSpinner()
}

// syncVideos mirrors the gallery snapshot into the list.
func (b *statefulBubble) syncVideos(s gallery.State) tea.Cmd {
	items := make([]list.Item, len(s.Videos))
	for i, v := range s.Videos {
		items[i] = &listItem{internal: v}
	}

	b.videosC.Title = galleryTitle(s.Options)
	b.loadedStatus = loadedStatus(s)
	return b.videosC.SetItems(items)
}

func galleryTitle(opts gallery.Options) string {
	var sb strings.Builder
	sb.WriteString("Videos")
	if len(opts.Tags) > 0 {
		sb.WriteString(" #")
		sb.WriteString(strings.Join(opts.Tags, " #"))
	}
	if opts.Sort != "" {
		sb.WriteString(" ")
		sb.WriteString(icon.Get(icon.Sort))
		sb.WriteString(" ")
		sb.WriteString(opts.Sort.String())
	}
	return sb.String()
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		ctx:           ctx,
		gallery:       options.Gallery,
		notifier:      &ui.Model{},
	}

	makeList := func(title string, titleStyle lipgloss.Style) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		listC.Styles.Title = titleStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)
		listC.SetFilteringEnabled(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "news, sports"
	bubble.inputC.CharLimit = 120
	bubble.inputC.Prompt = "Tags: "

	bubble.videosC = makeList("Videos",
		lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1),
	)
	bubble.videosC.SetStatusBarItemName("video", "videos")

	bubble.renditionsC = makeList("Renditions",
		lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1),
	)
	bubble.renditionsC.SetStatusBarItemName("rendition", "renditions")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
