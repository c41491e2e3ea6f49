// Package tui runs games in the terminal with Bubble Tea, locally or over SSH.
// It owns the tick loop, key mapping and screen rendering; games stay pure.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick. Non-positive rates fall back to the default.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
