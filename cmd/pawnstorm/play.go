package main

import (
	"context"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/config"
	"github.com/daystram/pawnstorm/engine"
	"github.com/daystram/pawnstorm/game"
	"github.com/daystram/pawnstorm/player"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func play(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, out io.Writer) error {
	b, err := board.NewBoard(board.WithFEN(cfg.FEN))
	if err != nil {
		return err
	}

	var rl *readline.Instance
	newPlayer := func(kind string) (player.Player, error) {
		switch kind {
		case config.PlayerEngine:
			return player.NewEngine(&engine.EngineConfig{
				Depth:  cfg.Depth,
				Logger: logger,
			}), nil
		case config.PlayerRandom:
			return player.Random{}, nil
		default:
			if rl == nil {
				rl, err = readline.NewEx(&readline.Config{
					Prompt:              "move> ",
					FuncFilterInputRune: filterInput,
				})
				if err != nil {
					return nil, err
				}
			}
			return &player.Human{In: rl, Out: out, Colored: cfg.Color}, nil
		}
	}
	white, err := newPlayer(cfg.White)
	if err != nil {
		return err
	}
	black, err := newPlayer(cfg.Black)
	if err != nil {
		return err
	}
	if rl != nil {
		defer rl.Close()
	}

	var r engine.Rand = frand.New()
	if cfg.Seed != 0 {
		r = engine.NewPseudoRand(cfg.Seed)
	}

	_, _ = fmt.Fprintln(out, b.Draw(cfg.Color))
	m := &game.Match{
		White:     white,
		Black:     black,
		Movetime:  cfg.Movetime,
		MaxRounds: cfg.MaxRounds,
		Rand:      r,
		Logger:    logger,
		Observer: game.ObserverFunc(func(b *board.Board, mv board.Move) {
			_, _ = fmt.Fprintf(out, "Chosen move:\t%s\n%s\n", mv, b.Draw(cfg.Color))
		}),
	}
	res, err := m.Play(ctx, b)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Result: %s (%s)\n%s\n", res, b.State(), b.FEN())
	return nil
}
