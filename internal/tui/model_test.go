package tui

import (
	"context"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/session"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) Model {
	t.Helper()
	calc, err := bot.NewBotMoveCalculator()
	require.NoError(t, err)

	bridge := NewBridge()
	sess, err := session.New(calc,
		session.WithScheduler(bridge),
		session.WithListener(bridge),
		session.WithMoveDelay(0),
	)
	require.NoError(t, err)
	return NewModel(context.Background(), sess, bridge)
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_InitialView(t *testing.T) {
	m := newModel(t)

	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Select a game mode")
}

func TestModel_HumanVsHuman(t *testing.T) {
	m := newModel(t)

	m, _ = send(t, m, keys("h"))
	assert.Contains(t, m.View(), "Player X's Turn")

	m, cmd := send(t, m, keys("5"))
	assert.Nil(t, cmd, "no computer step in human vs human")
	assert.Equal(t, game.PlayerX, m.session.Board()[4])
	assert.Contains(t, m.View(), "Player O's Turn")
	assert.Contains(t, m.View(), "last: X on 5")

	// Arrow to the cell left of the centre and play it.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.PlayerO, m.session.Board()[3])
}

func TestModel_ComputerStepRunsThroughTick(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, keys("c"))

	m, cmd := send(t, m, keys("1"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "AI's Turn")

	// The tick fires at once with a zero delay.
	msg := cmd()
	step, ok := msg.(stepMsg)
	require.True(t, ok)

	m, _ = send(t, m, step)
	board := m.session.Board()
	assert.Len(t, game.LegalMoves(board), 7)
	assert.Contains(t, m.View(), "Player X's Turn")
}

func TestModel_ResetDropsPendingStep(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, keys("c"))
	m, cmd := send(t, m, keys("1"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, keys("r"))
	m, _ = send(t, m, cmd())

	assert.Equal(t, game.Board{}, m.session.Board())
	assert.Contains(t, m.View(), "Select a game mode")
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)

	for _, msg := range []tea.KeyMsg{keys("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := send(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_CursorWraps(t *testing.T) {
	m := newModel(t)
	require.Equal(t, 4, m.cursor)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.cursor)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 7, m.cursor)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 8, m.cursor)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 6, m.cursor)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor)
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		st   session.Status
		want string
	}{
		{"idle", session.Status{}, "Select a game mode"},
		{"human turn", session.Status{State: session.InProgress, Mode: session.HumanVsComputer, ActiveMark: game.PlayerX}, "Player X's Turn"},
		{"computer turn", session.Status{State: session.InProgress, Mode: session.HumanVsComputer, ActiveMark: game.PlayerO}, "AI's Turn"},
		{"second human", session.Status{State: session.InProgress, Mode: session.HumanVsHuman, ActiveMark: game.PlayerO}, "Player O's Turn"},
		{"won", session.Status{State: session.Won, Winner: game.PlayerO}, "Player O Wins!"},
		{"draw", session.Status{State: session.Draw}, "It's a Draw!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusLine(tt.st))
		})
	}
}
