package tui

import (
	"context"
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// stepMsg carries a deferred session step back onto the program's event loop.
type stepMsg struct {
	step func()
}

type pendingStep struct {
	delay time.Duration
	step  func()
}

// Bridge connects a session to a bubbletea program. As a session.Scheduler
// it queues deferred steps until the model turns them into tick commands,
// so the steps run inside Update like every other message. As an
// events.Listener it remembers the last move for the view.
type Bridge struct {
	pending  []pendingStep
	lastMark game.PlayerMark
	lastMove int
}

func NewBridge() *Bridge {
	return &Bridge{lastMove: -1}
}

func (b *Bridge) Schedule(delay time.Duration, step func()) {
	b.pending = append(b.pending, pendingStep{delay: delay, step: step})
}

func (b *Bridge) Notify(_ context.Context, e events.Event) {
	switch e.Type {
	case events.MoveApplied:
		b.lastMark = e.Board[e.Index]
		b.lastMove = e.Index
	case events.ModeSelected, events.Reset:
		b.lastMark = game.None
		b.lastMove = -1
	}
}

// commands drains the queued steps into tick commands.
func (b *Bridge) commands() tea.Cmd {
	if len(b.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(b.pending))
	for _, p := range b.pending {
		step := p.step
		cmds = append(cmds, tea.Tick(p.delay, func(time.Time) tea.Msg {
			return stepMsg{step: step}
		}))
	}
	b.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
