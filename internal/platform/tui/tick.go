// Package tui runs the tank battle in a terminal: the Bubble Tea program,
// key mapping, colour rendering, the menu, the score table and the SSH
// server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Chain identifies
// the model that scheduled it, so a tick still in flight when a game ends
// is not picked up by the next one.
type TickMsg struct {
	Time  time.Time
	Chain uint64
}

var tickChains atomic.Uint64

// newTickChain returns a fresh chain identifier.
func newTickChain() uint64 {
	return tickChains.Add(1)
}

// tickCmd schedules the next tick at tickRate per second (50 when unset).
func tickCmd(tickRate int, chain uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 50
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Chain: chain}
	})
}
