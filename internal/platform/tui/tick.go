// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. The model converts the time
// between frames into fixed simulation ticks.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
