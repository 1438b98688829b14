package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWin_EveryCondition(t *testing.T) {
	for _, cond := range WinConditions {
		for _, mark := range []PlayerMark{PlayerX, PlayerO} {
			var board Board
			for _, i := range cond {
				board[i] = mark
			}
			assert.True(t, IsWin(board, mark), "line %v for %s", cond, mark)
			assert.False(t, IsWin(board, Opponent(mark)), "line %v for %s", cond, Opponent(mark))

			// Break the line with the opponent's mark in each position.
			for _, i := range cond {
				broken := board
				broken[i] = Opponent(mark)
				assert.False(t, IsWin(broken, mark), "broken line %v at %d", cond, i)
			}
		}
	}
}

func TestIsWin_EmptyMarkNeverWins(t *testing.T) {
	assert.False(t, IsWin(Board{}, None))
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  PlayerMark
	}{
		{
			name:  "No winner - empty board",
			board: Board{},
			want:  None,
		},
		{
			name: "No winner - partial board",
			board: Board{
				PlayerX, None, None,
				None, PlayerO, None,
				None, None, None,
			},
			want: None,
		},
		{
			name: "X wins - first row",
			board: Board{
				PlayerX, PlayerX, PlayerX,
				None, PlayerO, None,
				None, None, PlayerO,
			},
			want: PlayerX,
		},
		{
			name: "O wins - second column",
			board: Board{
				PlayerX, PlayerO, None,
				PlayerX, PlayerO, None,
				None, PlayerO, None,
			},
			want: PlayerO,
		},
		{
			name: "O wins - anti-diagonal",
			board: Board{
				None, None, PlayerO,
				None, PlayerO, None,
				PlayerO, None, None,
			},
			want: PlayerO,
		},
		{
			name: "No winner - full board",
			board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerO, PlayerX, PlayerX,
			},
			want: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Winner(tt.board))
		})
	}
}

func TestIsDraw(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "Empty board is not a draw",
			board: Board{},
			want:  false,
		},
		{
			name: "Full board without a line is a draw",
			board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerO, PlayerX, PlayerX,
			},
			want: true,
		},
		{
			name: "Full board with a winner is not a draw",
			board: Board{
				PlayerX, PlayerX, PlayerX,
				PlayerO, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDraw(tt.board))
		})
	}
}

func TestLegalMoves(t *testing.T) {
	board := Board{
		PlayerX, None, PlayerO,
		None, PlayerX, None,
		None, None, PlayerO,
	}
	require.Equal(t, []int{1, 3, 5, 6, 7}, LegalMoves(board))
	require.Len(t, LegalMoves(Board{}), Size)
	require.Empty(t, LegalMoves(Board{
		PlayerX, PlayerO, PlayerX,
		PlayerX, PlayerO, PlayerO,
		PlayerO, PlayerX, PlayerX,
	}))
}

func TestValidIndex(t *testing.T) {
	assert.True(t, ValidIndex(0))
	assert.True(t, ValidIndex(8))
	assert.False(t, ValidIndex(-1))
	assert.False(t, ValidIndex(9))
}

func TestBoardString(t *testing.T) {
	board := Board{PlayerX, None, PlayerO}
	assert.Equal(t, "X.O\n...\n...", board.String())
}
