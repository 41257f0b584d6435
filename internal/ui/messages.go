package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cardstack/internal/deck"
)

// frameInterval is how often settle animation frames are driven
const frameInterval = 25 * time.Millisecond

// FrameTickMsg is a tick message for the settle animation
type FrameTickMsg time.Time

// SettleTimerMsg fires the deferred post-commit window rebuild. Gen is the
// machine's generation token at scheduling time; the machine ignores stale
// tokens.
type SettleTimerMsg struct {
	Gen uint64
}

// EventMsg wraps a domain event forwarded from the event bus
type EventMsg struct {
	Event interface{}
}

// frameTick schedules the next animation frame
func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

// settleTimer schedules the deferred rebuild for the given generation
func settleTimer(gen uint64) tea.Cmd {
	d := time.Duration(deck.SettleSeconds * float64(time.Second))
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SettleTimerMsg{Gen: gen}
	})
}
