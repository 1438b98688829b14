package session

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

import (
	"context"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	HumanMark    = bot.HumanMark
	ComputerMark = bot.ComputerMark

	// DefaultMoveDelay is the pause before the computer answers a human move.
	DefaultMoveDelay = 500 * time.Millisecond
)

var tracer = otel.Tracer("session")

// Mode selects who controls the O mark.
type Mode int

const (
	ModeNone Mode = iota
	HumanVsHuman
	HumanVsComputer
)

func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "human_vs_human"
	case HumanVsComputer:
		return "human_vs_computer"
	default:
		return "none"
	}
}

// State is the position of a session in its lifecycle.
type State int

const (
	Idle State = iota
	InProgress
	Won
	Draw
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "idle"
	}
}

// MoveCalculator picks the index the computer plays.
type MoveCalculator interface {
	CalculateNextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (int, error)
}

// Scheduler runs step once after delay. Implementations must invoke step on
// the goroutine that owns the session.
type Scheduler interface {
	Schedule(delay time.Duration, step func())
}

// MoveOutcome is the result of ApplyMove and ComputerMove.
type MoveOutcome struct {
	Accepted bool
	State    State
	Winner   game.PlayerMark
}

// Status is a snapshot of the session for rendering.
type Status struct {
	State      State
	Mode       Mode
	ActiveMark game.PlayerMark
	Winner     game.PlayerMark
}

// Session is one game of tic-tac-toe. It is not safe for concurrent use:
// every method, including scheduled computer steps, must run on the same
// goroutine.
type Session struct {
	id     string
	board  game.Board
	active game.PlayerMark
	state  State
	mode   Mode
	winner game.PlayerMark

	// generation changes on every SelectMode and Reset so that a computer
	// step scheduled for an earlier game does nothing.
	generation uint64

	calculator MoveCalculator
	scheduler  Scheduler
	delay      time.Duration
	listeners  []events.Listener
	finished   metric.Int64Counter
}

// Option configures a Session.
type Option func(*Session)

// WithScheduler sets how the computer's reply is deferred.
func WithScheduler(s Scheduler) Option {
	return func(sess *Session) {
		sess.scheduler = s
	}
}

// WithMoveDelay sets the pause before the computer's reply.
func WithMoveDelay(d time.Duration) Option {
	return func(sess *Session) {
		sess.delay = d
	}
}

// WithListener registers a listener for session events.
func WithListener(l events.Listener) Option {
	return func(sess *Session) {
		sess.listeners = append(sess.listeners, l)
	}
}

// New creates an idle session. calculator is consulted for computer moves.
func New(calculator MoveCalculator, opts ...Option) (*Session, error) {
	finished, err := otel.Meter("session").Int64Counter("session.games.finished",
		metric.WithDescription("Games that reached a win or a draw"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}

	s := &Session{
		calculator: calculator,
		scheduler:  ImmediateScheduler{},
		delay:      DefaultMoveDelay,
		finished:   finished,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID returns the identifier of the current game, empty while idle.
func (s *Session) ID() string {
	return s.id
}

// Board returns a copy of the current board.
func (s *Session) Board() game.Board {
	return s.board
}

// Status returns a snapshot of the session state.
func (s *Session) Status() Status {
	return Status{
		State:      s.state,
		Mode:       s.mode,
		ActiveMark: s.active,
		Winner:     s.winner,
	}
}

// ImmediateScheduler runs the step synchronously and ignores the delay.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Schedule(_ time.Duration, step func()) {
	step()
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(delay time.Duration, step func())

func (f SchedulerFunc) Schedule(delay time.Duration, step func()) {
	f(delay, step)
}
