package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/daystram/pawnstorm/config"
)

const (
	exitOK = iota
	exitErr
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitErr
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModePerft:
		err = perft(cfg, os.Stdout)
	case config.ModeMovegen:
		err = movegen(cfg, os.Stdout)
	default:
		err = play(ctx, cfg, &logger, os.Stdout)
	}
	if err != nil {
		logger.Error().Err(err).Str("mode", cfg.Mode).Msg("run failed")
		return exitErr
	}
	return exitOK
}
