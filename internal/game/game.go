package game

import "strings"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 8

	// Size is the number of cells on the board.
	Size = 9
)

// Board holds the nine cells in row-major order.
type Board [Size]PlayerMark

// WinConditions lists the index triples that win the game when held by one mark.
var WinConditions = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// IsWin reports whether mark occupies every cell of any win condition.
func IsWin(board Board, mark PlayerMark) bool {
	if mark == None {
		return false
	}
	for _, c := range WinConditions {
		if board[c[0]] == mark && board[c[1]] == mark && board[c[2]] == mark {
			return true
		}
	}
	return false
}

// Winner returns the mark holding a complete line, or None.
func Winner(board Board) PlayerMark {
	switch {
	case IsWin(board, PlayerX):
		return PlayerX
	case IsWin(board, PlayerO):
		return PlayerO
	}
	return None
}

// IsDraw checks if the game is a draw.
func IsDraw(board Board) bool {
	// If there is a winner, it's not a draw
	if Winner(board) != None {
		return false
	}
	return IsBoardFull(board)
}

// IsBoardFull reports whether no empty cell remains.
func IsBoardFull(board Board) bool {
	for _, cell := range board {
		if cell == None {
			return false
		}
	}
	return true
}

// LegalMoves returns the empty indices in ascending order.
func LegalMoves(board Board) []int {
	moves := make([]int, 0, Size)
	for i, cell := range board {
		if cell == None {
			moves = append(moves, i)
		}
	}
	return moves
}

// ValidIndex reports whether i addresses a cell.
func ValidIndex(i int) bool {
	return i >= BorderMin && i <= BorderMax
}

// Opponent returns the other player's mark.
func Opponent(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (b Board) String() string {
	var sb strings.Builder
	for i, cell := range b {
		if cell == None {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}
		if i%3 == 2 && i != BorderMax {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
