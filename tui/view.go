package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/streamio-cli/streamio/color"
	"github.com/streamio-cli/streamio/gallery"
	"github.com/streamio-cli/streamio/icon"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/style"
	"github.com/streamio-cli/streamio/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case galleryState:
		output = b.viewGallery()
	case tagsState:
		output = b.viewTags()
	case detailState:
		output = b.viewDetail()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewGallery() string {
	if len(b.videosC.Items()) == 0 && !b.loading && b.loadedStatus == unconfiguredStatus {
		return b.renderLines(true, []string{
			style.Title("Not configured"),
			"",
			icon.Get(icon.Unconfigured) + " Streamio credentials are not configured.",
			"",
			style.Faint(fmt.Sprintf("Set %s and run `streamio auth login`.", key.APIUsername)),
		})
	}

	if len(b.videosC.Items()) == 0 && !b.loading {
		return b.renderLines(true, []string{
			style.Title(b.videosC.Title),
			"",
			icon.Get(icon.Video) + " No ready videos yet.",
			"",
			style.Faint(b.loadedStatus),
		})
	}

	return listExtraPaddingStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, b.videosC.View(), style.Faint(b.loadedStatus)),
	)
}

func (b *statefulBubble) viewTags() string {
	lines := []string{
		style.Title("Filter by tags"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.suggestion.Get(); ok {
		lines = append(lines, "", style.Faint(icon.Get(icon.Tag)+" "+suggestion+" (tab)"))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewDetail() string {
	return listExtraPaddingStyle.Render(b.renditionsC.View())
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorMsg := errorStyle.Render(b.lastError.Error())
	if b.width > 0 {
		errorMsg = wrap.String(errorMsg, b.width)
	}
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Could not load the gallery:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

const unconfiguredStatus = "credentials not configured"

func loadedStatus(s gallery.State) string {
	if s.Unconfigured {
		return unconfiguredStatus
	}

	status := fmt.Sprintf("%s ready · %d of %d read",
		util.Quantify(len(s.Videos), "video", "videos"), s.Loaded, s.Options.Total)

	switch {
	case s.CanLoadMore:
		return status + " · " + style.Fg(color.Orange)("m") + " for more"
	case s.Loaded > 0:
		return status + " · end of catalog"
	default:
		return status
	}
}
