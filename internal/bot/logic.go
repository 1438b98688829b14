package bot

import (
	"ctchen222/tictactoe/internal/game"
	"math"
)

const (
	// Marks played by each side of the search.
	HumanMark    = game.PlayerX
	ComputerMark = game.PlayerO

	// Terminal scores, seen from the computer's side.
	ScoreLoss = -10
	ScoreWin  = 10
	ScoreDraw = 0

	// NoMove is the index reported for terminal positions.
	NoMove = -1
)

// Move pairs a board index with the score the search assigned to it.
type Move struct {
	Index int
	Score int
}

// Minimax searches the full game tree below board with toMove to play and
// returns the best move for that side. The computer maximises, the human
// minimises. Ties keep the first move in index order and scores carry no
// depth information, so a slower win ranks the same as an immediate one.
//
// board is received by value: placements made during the search never
// reach the caller.
func Minimax(board game.Board, toMove game.PlayerMark) Move {
	var nodes int64
	return search(&board, toMove, &nodes)
}

// search explores board in place. Every placement is undone before the
// function returns so sibling branches see the same position.
func search(board *game.Board, toMove game.PlayerMark, nodes *int64) Move {
	*nodes++

	if game.IsWin(*board, HumanMark) {
		return Move{Index: NoMove, Score: ScoreLoss}
	}
	if game.IsWin(*board, ComputerMark) {
		return Move{Index: NoMove, Score: ScoreWin}
	}
	available := game.LegalMoves(*board)
	if len(available) == 0 {
		return Move{Index: NoMove, Score: ScoreDraw}
	}

	moves := make([]Move, 0, len(available))
	for _, idx := range available {
		board[idx] = toMove
		result := search(board, game.Opponent(toMove), nodes)
		board[idx] = game.None
		moves = append(moves, Move{Index: idx, Score: result.Score})
	}

	return pickBest(moves, toMove == ComputerMark)
}

// pickBest scans moves in order and keeps the first strictly better score.
func pickBest(moves []Move, maximise bool) Move {
	best := Move{Index: NoMove}
	bestScore := math.MaxInt
	if maximise {
		bestScore = math.MinInt
	}
	for _, m := range moves {
		if (maximise && m.Score > bestScore) || (!maximise && m.Score < bestScore) {
			bestScore = m.Score
			best = m
		}
	}
	return best
}
