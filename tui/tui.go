// Package tui is the interactive gallery browser.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamio-cli/streamio/gallery"
)

// Options configures a TUI session.
type Options struct {
	Gallery *gallery.Gallery
}

// Run shows the gallery until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)
	bubble.newState(loadingState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
