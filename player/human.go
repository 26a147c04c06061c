package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/samber/lo"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/engine"
)

// LineReader reads one line of user input. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Human lets a person pick a move from the enumerated list of legal moves. If In is
// also an io.Closer it is closed once ctx is done, unblocking a pending Readline.
type Human struct {
	In      LineReader
	Out     io.Writer
	Colored bool
}

var _ Player = (*Human)(nil)

func (h *Human) ChooseMove(ctx context.Context, b *board.Board, s board.Side, _ time.Duration, _ engine.Rand) (board.Move, error) {
	mvs := b.GenerateMoves(s)
	if len(mvs) == 0 {
		return board.Move{}, fmt.Errorf("%w: %s to move", ErrNoMoves, s)
	}
	options := lo.Map(mvs, func(mv board.Move, i int) string {
		return fmt.Sprintf("#%d\t%s", i, mv)
	})

	if c, ok := h.In.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stop()
	}

	_, _ = fmt.Fprintln(h.Out, b.Draw(h.Colored))
	for {
		if err := ctx.Err(); err != nil {
			return board.Move{}, err
		}
		_, _ = fmt.Fprintln(h.Out, strings.Join(options, "\n"))
		_, _ = fmt.Fprintf(h.Out, "%s to move, enter any number between 0 and %d to choose that move\n", s, len(mvs)-1)

		line, err := h.In.Readline()
		if ctx.Err() != nil {
			return board.Move{}, ctx.Err()
		}
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return board.Move{}, ErrAborted
		}
		if err != nil {
			return board.Move{}, err
		}

		chosen, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			_, _ = fmt.Fprintln(h.Out, "Not a valid number")
			continue
		}
		if chosen < 0 || chosen >= len(mvs) {
			_, _ = fmt.Fprintln(h.Out, "Number outside of range")
			continue
		}
		return mvs[chosen], nil
	}
}
