package main

import (
	"context"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/session"
	"ctchen222/tictactoe/internal/telemetry"
	"ctchen222/tictactoe/internal/tui"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	ctx := context.Background()

	// CONFIG_PATH points at an optional YAML file; the environment always applies.
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	// The terminal belongs to the UI, so text logs go to a file or nowhere.
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger.Init(logOut, level)

	calc, err := bot.NewBotMoveCalculator()
	if err != nil {
		log.Fatalf("failed to create move calculator: %v", err)
	}

	bridge := tui.NewBridge()
	sess, err := session.New(calc,
		session.WithScheduler(bridge),
		session.WithListener(bridge),
		session.WithMoveDelay(cfg.Computer.MoveDelay),
	)
	if err != nil {
		log.Fatalf("failed to create session: %v", err)
	}

	slog.InfoContext(ctx, "tic-tac-toe starting", "computer.move_delay", cfg.Computer.MoveDelay)
	if _, err := tea.NewProgram(tui.NewModel(ctx, sess, bridge)).Run(); err != nil {
		slog.ErrorContext(ctx, "terminal program failed", "error", err)
		log.Printf("error running program: %v", err)
	}
	slog.InfoContext(ctx, "tic-tac-toe exiting")
}
