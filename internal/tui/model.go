package tui

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/session"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cellStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	cursorStyle = cellStyle.Reverse(true)
	markStyles  = map[game.PlayerMark]lipgloss.Style{
		game.PlayerX: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		game.PlayerO: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
)

// Model renders a session and turns key presses into session calls.
type Model struct {
	ctx     context.Context
	session *session.Session
	bridge  *Bridge
	cursor  int
}

// NewModel creates a model for sess. bridge must be the scheduler and a
// listener of sess.
func NewModel(ctx context.Context, sess *session.Session, bridge *Bridge) Model {
	return Model{ctx: ctx, session: sess, bridge: bridge, cursor: 4}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		msg.step()

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "h":
			m.session.SelectMode(m.ctx, session.HumanVsHuman)
		case "c":
			m.session.SelectMode(m.ctx, session.HumanVsComputer)
		case "r":
			m.session.Reset(m.ctx)
		case "up":
			m.cursor = (m.cursor + 6) % game.Size
		case "down":
			m.cursor = (m.cursor + 3) % game.Size
		case "left":
			m.cursor = m.cursor/3*3 + (m.cursor+2)%3
		case "right":
			m.cursor = m.cursor/3*3 + (m.cursor+1)%3
		case "enter", " ":
			m.session.ApplyMove(m.ctx, m.cursor)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.cursor = int(key[0] - '1')
			m.session.ApplyMove(m.ctx, m.cursor)
		}
	}

	return m, m.bridge.commands()
}

func (m Model) View() string {
	board := m.session.Board()

	var rows []string
	for r := range 3 {
		cells := make([]string, 0, 3)
		for c := range 3 {
			idx := r*3 + c
			cells = append(cells, m.renderCell(idx, board[idx]))
		}
		rows = append(rows, strings.Join(cells, "│"))
		if r < 2 {
			rows = append(rows, "───┼───┼───")
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Tic-Tac-Toe"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(rows, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render(StatusLine(m.session.Status())))
	if m.bridge.lastMove >= 0 {
		sb.WriteString(helpStyle.Render(fmt.Sprintf("  (last: %s on %d)", m.bridge.lastMark, m.bridge.lastMove+1)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("h: vs human • c: vs computer • 1-9/arrows+enter: play • r: reset • q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderCell(idx int, mark game.PlayerMark) string {
	text := " "
	if mark != game.None {
		text = markStyles[mark].Render(string(mark))
	}
	if idx == m.cursor && m.session.Status().State == session.InProgress {
		return cursorStyle.Render(text)
	}
	return cellStyle.Render(text)
}

// StatusLine is the text shown under the board for st.
func StatusLine(st session.Status) string {
	switch st.State {
	case session.InProgress:
		if st.Mode == session.HumanVsComputer && st.ActiveMark == session.ComputerMark {
			return "AI's Turn"
		}
		return fmt.Sprintf("Player %s's Turn", st.ActiveMark)
	case session.Won:
		return fmt.Sprintf("Player %s Wins!", st.Winner)
	case session.Draw:
		return "It's a Draw!"
	default:
		return "Select a game mode"
	}
}
