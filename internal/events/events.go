package events

//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks

import (
	"context"
	"ctchen222/tictactoe/internal/game"
)

// Event types emitted by a game session.
const (
	ModeSelected      = "mode_selected"
	MoveApplied       = "move_applied"
	ComputerScheduled = "computer_scheduled"
	GameWon           = "game_won"
	GameDrawn         = "game_drawn"
	Reset             = "reset"
)

// Event describes one state change of a session.
type Event struct {
	Type       string          `json:"event"`
	SessionID  string          `json:"session_id,omitempty"`
	Board      game.Board      `json:"board"`
	ActiveMark game.PlayerMark `json:"active_mark,omitempty"`
	Winner     game.PlayerMark `json:"winner,omitempty"`
	// Index is the cell played for MoveApplied, -1 otherwise.
	Index int `json:"index"`
}

// Listener receives session events after the state change is complete.
type Listener interface {
	Notify(ctx context.Context, e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx context.Context, e Event)

func (f ListenerFunc) Notify(ctx context.Context, e Event) {
	f(ctx, e)
}
