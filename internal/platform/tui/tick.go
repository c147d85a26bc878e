// Package tui runs the invaders games inside a Bubble Tea program, both in
// a local terminal and per SSH session. It maps keys to actions, drives
// the tick loop and records finished runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that fires one TickMsg after a frame at tickRate.
// Non-positive rates fall back to core.DefaultTickRate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
