package session

import (
	"context"
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// SelectMode starts a new game in mode with X to move. It reports false and
// leaves the session untouched for an unknown mode.
func (s *Session) SelectMode(ctx context.Context, mode Mode) bool {
	ctx, span := tracer.Start(ctx, "session.SelectMode", trace.WithAttributes(
		attribute.String("game.mode", mode.String()),
	))
	defer span.End()

	if mode != HumanVsHuman && mode != HumanVsComputer {
		slog.WarnContext(ctx, "unknown game mode", "game.mode", int(mode))
		span.SetStatus(codes.Error, "Unknown game mode")
		return false
	}

	s.generation++
	s.id = uuid.New().String()
	s.board = game.Board{}
	s.active = HumanMark
	s.state = InProgress
	s.mode = mode
	s.winner = game.None
	span.SetAttributes(attribute.String("session.id", s.id))

	slog.InfoContext(ctx, "game started", "session.id", s.id, "game.mode", mode.String())
	s.emit(ctx, events.ModeSelected, -1)
	return true
}

// ApplyMove plays index for the active mark on behalf of a human. Rejected
// moves leave the session unchanged.
func (s *Session) ApplyMove(ctx context.Context, index int) MoveOutcome {
	ctx, span := tracer.Start(ctx, "session.ApplyMove", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("move.index", index),
	))
	defer span.End()

	switch {
	case s.state != InProgress:
		return s.reject(ctx, span, index, "game not in progress")
	case !game.ValidIndex(index):
		return s.reject(ctx, span, index, "index out of range")
	case s.board[index] != game.None:
		return s.reject(ctx, span, index, "cell already occupied")
	case s.mode == HumanVsComputer && s.active == ComputerMark:
		return s.reject(ctx, span, index, "computer's turn")
	}
	span.SetAttributes(attribute.Bool("move.accepted", true))

	mover := s.active
	s.place(ctx, index, mover)
	outcome := s.outcome(true)
	if s.state != InProgress {
		return outcome
	}

	if s.mode == HumanVsComputer {
		s.scheduleComputer(ctx)
	}
	return outcome
}

// ComputerMove is the deferred computer step. It does nothing unless a
// human vs computer game is in progress with O to move.
func (s *Session) ComputerMove(ctx context.Context) MoveOutcome {
	ctx, span := tracer.Start(ctx, "session.ComputerMove", trace.WithAttributes(
		attribute.String("session.id", s.id),
	))
	defer span.End()

	if s.state != InProgress || s.mode != HumanVsComputer || s.active != ComputerMark {
		slog.DebugContext(ctx, "computer step skipped", "session.id", s.id, "game.state", s.state.String())
		span.SetAttributes(attribute.Bool("move.accepted", false))
		return s.outcome(false)
	}

	index, err := s.calculator.CalculateNextMove(ctx, s.board, ComputerMark)
	if err != nil {
		slog.ErrorContext(ctx, "computer failed to choose a move", "session.id", s.id, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer failed to choose a move")
		return s.outcome(false)
	}
	if !game.ValidIndex(index) || s.board[index] != game.None {
		slog.ErrorContext(ctx, "computer chose an illegal move", "session.id", s.id, "move.index", index)
		span.SetStatus(codes.Error, "Computer chose an illegal move")
		return s.outcome(false)
	}
	span.SetAttributes(attribute.Int("move.index", index), attribute.Bool("move.accepted", true))

	s.place(ctx, index, ComputerMark)
	return s.outcome(true)
}

// Reset returns the session to Idle with an empty board and no mode.
func (s *Session) Reset(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "session.Reset", trace.WithAttributes(
		attribute.String("session.id", s.id),
	))
	defer span.End()

	slog.InfoContext(ctx, "game reset", "session.id", s.id, "game.state", s.state.String())

	s.generation++
	s.id = ""
	s.board = game.Board{}
	s.active = game.None
	s.state = Idle
	s.mode = ModeNone
	s.winner = game.None
	s.emit(ctx, events.Reset, -1)
}

// place puts mark on index, settles the result and hands the turn over.
func (s *Session) place(ctx context.Context, index int, mark game.PlayerMark) {
	s.board[index] = mark

	switch {
	case game.IsWin(s.board, mark):
		s.state = Won
		s.winner = mark
		s.active = game.None
	case game.IsBoardFull(s.board):
		s.state = Draw
		s.active = game.None
	default:
		s.active = game.Opponent(mark)
	}

	slog.DebugContext(ctx, "move applied", "session.id", s.id, "player.mark", mark, "move.index", index)
	s.emit(ctx, events.MoveApplied, index)

	switch s.state {
	case Won:
		s.finish(ctx, events.GameWon)
	case Draw:
		s.finish(ctx, events.GameDrawn)
	}
}

func (s *Session) finish(ctx context.Context, eventType string) {
	slog.InfoContext(ctx, "game finished", "session.id", s.id, "game.result", s.state.String(), "game.winner", s.winner)
	s.finished.Add(ctx, 1, metric.WithAttributes(
		attribute.String("game.mode", s.mode.String()),
		attribute.String("game.result", s.state.String()),
		attribute.String("game.winner", string(s.winner)),
	))
	s.emit(ctx, eventType, -1)
}

func (s *Session) scheduleComputer(ctx context.Context) {
	generation := s.generation
	s.emit(ctx, events.ComputerScheduled, -1)
	s.scheduler.Schedule(s.delay, func() {
		if generation != s.generation {
			slog.DebugContext(ctx, "stale computer step dropped")
			return
		}
		s.ComputerMove(ctx)
	})
}

func (s *Session) reject(ctx context.Context, span trace.Span, index int, reason string) MoveOutcome {
	slog.DebugContext(ctx, "move rejected", "session.id", s.id, "move.index", index, "reason", reason)
	span.SetAttributes(attribute.Bool("move.accepted", false), attribute.String("move.reject_reason", reason))
	return s.outcome(false)
}

func (s *Session) outcome(accepted bool) MoveOutcome {
	return MoveOutcome{Accepted: accepted, State: s.state, Winner: s.winner}
}

func (s *Session) emit(ctx context.Context, eventType string, index int) {
	e := events.Event{
		Type:       eventType,
		SessionID:  s.id,
		Board:      s.board,
		ActiveMark: s.active,
		Winner:     s.winner,
		Index:      index,
	}
	for _, l := range s.listeners {
		l.Notify(ctx, e)
	}
}
