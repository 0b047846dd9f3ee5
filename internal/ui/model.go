// Package ui holds the transient notification line shared by the TUI screens.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// notificationLifetime is how long a notification stays on screen.
const notificationLifetime = 3 * time.Second

// Model shows one notification at a time. Any string message replaces the current one.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// ClearNotificationMsg removes a notification once it expired.
type ClearNotificationMsg struct {
	at time.Time
}

func clearNotification(at time.Time) tea.Cmd {
	return tea.Tick(notificationLifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Notification returns the text on screen, if any.
func (m *Model) Notification() string {
	return m.notification
}

// Update consumes notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		m.notification = msg
		m.notifiedAt = time.Now()
		return clearNotification(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification restarted the timer
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
		return nil
	}
	return nil
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	notifier := "\033[90m" + m.notification + "\033[0m"

	if len(lines) > 0 {
		lines[len(lines)-1] = lines[len(lines)-1] + "  " + notifier
	}
	return strings.Join(lines, "\n")
}
