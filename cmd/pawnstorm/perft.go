package main

import (
	"io"
	"time"

	"github.com/daystram/pawnstorm/bench"
	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/config"
)

func perft(cfg *config.Config, out io.Writer) error {
	b, err := board.NewBoard(board.WithFEN(cfg.FEN))
	if err != nil {
		return err
	}

	start := time.Now()
	splits := bench.Divide(b, cfg.PerftDepth, cfg.PerftParallel)
	elapsed := time.Since(start)

	if err := bench.ReportDivide(out, splits); err != nil {
		return err
	}
	total := bench.Total(splits)
	if cfg.PerftDepth == 0 {
		total = bench.Perft(b, 0, false)
	}
	return bench.Report(out, cfg.PerftDepth, total, elapsed)
}
