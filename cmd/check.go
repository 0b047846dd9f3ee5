package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/icon"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/log"
	"github.com/streamio-cli/streamio/style"
)

// CheckPlayer warns when the configured player is missing from PATH. Playback then falls back
// to the system default handler, so the gallery still opens.
func CheckPlayer() {
	player := viper.GetString(key.Player)
	if player == "" {
		return
	}

	if _, err := exec.LookPath(player); err != nil {
		log.Warnf("player %q not found in PATH", player)
		printMissingPlayerWarning(player)
	}
}

func installHint(player string) string {
	if player != "mpv" {
		return ""
	}

	switch runtime.GOOS {
	case "darwin":
		return "brew install mpv"
	case "linux":
		return "sudo apt install mpv"
	case "windows":
		return "scoop install mpv"
	}

	return ""
}

func printMissingPlayerWarning(player string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Player not found", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The player '%s' was not found in your PATH.\nStreams will open with the system default handler.", player))

	suggestion := ""
	if installCmd := installHint(player); installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	_, _ = fmt.Fprintln(os.Stderr, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
