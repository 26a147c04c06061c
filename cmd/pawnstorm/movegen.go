package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/config"
)

func movegen(cfg *config.Config, out io.Writer) error {
	b, err := board.NewBoard(board.WithFEN(cfg.FEN))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "to move:", b.Turn())
	_, _ = fmt.Fprintln(out, b.Dump())
	_, _ = fmt.Fprintln(out, b.Draw(cfg.Color))
	_, _ = fmt.Fprintln(out, b.FEN())
	_, _ = fmt.Fprintln(out, b.DebugString())

	mvs := b.GenerateMoves(b.Turn())
	for i, mv := range mvs {
		_, _ = fmt.Fprintf(out, "option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Piece, mv.From, mv.To,
			mv.IsCapture, b.IsEnPassant(mv), mv.IsCastle(), mv.IsPromote)
	}
	return nil
}
