// shadow-leap is a terminal Frogger. Hop across the road and the river and
// fill every home hole before your lives run out.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"shadow-leap/internal/audio"
	"shadow-leap/internal/config"
	"shadow-leap/internal/game"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[0], os.Args[1:], ".env")
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	var cuer audio.Cuer = audio.Nop{}
	if !cfg.Mute {
		p, err := audio.NewPlayer(logger)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer p.Close()
			cuer = p
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	g, err := game.New(screen, cfg, cuer, logger)
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g.Run(ctx)
	logger.Info("bye", "state", g.State().String(), "level", g.LevelNumber()+1)
	return nil
}

// openLog returns a logger writing to path, or a discarding one when path is
// empty. The terminal belongs to the game, so logs never go to stderr.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
