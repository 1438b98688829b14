package bot

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameFinished     = errors.New("game already finished")
)

var tracer = otel.Tracer("bot")

// BotMoveCalculator implements the session.MoveCalculator interface on top of Minimax.
type BotMoveCalculator struct {
	nodes    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewBotMoveCalculator creates a calculator that reports search metrics
// through the global meter provider.
func NewBotMoveCalculator() (*BotMoveCalculator, error) {
	meter := otel.Meter("bot")

	nodes, err := meter.Int64Counter("bot.search.nodes",
		metric.WithDescription("Positions visited by the minimax search"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create nodes counter: %w", err)
	}

	duration, err := meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Wall time of one minimax search"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &BotMoveCalculator{nodes: nodes, duration: duration}, nil
}

// CalculateNextMove returns the index mark should play on board.
func (c *BotMoveCalculator) CalculateNextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (int, error) {
	ctx, span := tracer.Start(ctx, "bot.CalculateNextMove", trace.WithAttributes(
		attribute.String("bot.mark", string(mark)),
		attribute.Int("board.empty", len(game.LegalMoves(board))),
	))
	defer span.End()

	if game.Winner(board) != game.None {
		span.SetStatus(codes.Error, "Search requested on a won board")
		return NoMove, ErrGameFinished
	}
	if game.IsBoardFull(board) {
		span.SetStatus(codes.Error, "Search requested on a full board")
		return NoMove, ErrNoAvailableMoves
	}

	var nodes int64
	start := time.Now()
	move := search(&board, mark, &nodes)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	attrs := metric.WithAttributes(attribute.String("bot.mark", string(mark)))
	c.nodes.Add(ctx, nodes, attrs)
	c.duration.Record(ctx, elapsed, attrs)

	span.SetAttributes(
		attribute.Int("move.index", move.Index),
		attribute.Int("move.score", move.Score),
		attribute.Int64("search.nodes", nodes),
	)
	slog.DebugContext(ctx, "bot chose move",
		"bot.mark", mark, "move.index", move.Index, "move.score", move.Score,
		"search.nodes", nodes, "search.ms", elapsed)

	return move.Index, nil
}
