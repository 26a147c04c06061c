// Package game drives a match between two players.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/engine"
	"github.com/daystram/pawnstorm/player"
)

var ErrIllegalMove = errors.New("player chose an illegal move")

type Result uint8

const (
	ResultUnfinished Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultUnfinished:
		return "unfinished"
	case ResultWhiteWins:
		return "White wins"
	case ResultBlackWins:
		return "Black wins"
	case ResultDraw:
		return "draw"
	default:
		return ""
	}
}

// Observer is notified after every executed move, e.g. to render the board.
type Observer interface {
	OnMove(b *board.Board, mv board.Move)
}

type ObserverFunc func(b *board.Board, mv board.Move)

func (f ObserverFunc) OnMove(b *board.Board, mv board.Move) {
	f(b, mv)
}

// Match alternates White and Black on a board until the game is over.
type Match struct {
	White, Black player.Player

	// Movetime is the budget handed to each player per move.
	Movetime time.Duration
	// MaxRounds limits the number of plies. Zero plays until the game is over.
	MaxRounds int

	Rand     engine.Rand
	Logger   *zerolog.Logger
	Observer Observer
}

// Play runs the match on b, which is mutated as moves are executed. Hitting the round
// limit or cancelling ctx ends the match as ResultUnfinished.
func (m *Match) Play(ctx context.Context, b *board.Board) (Result, error) {
	logger := zerolog.Nop()
	if m.Logger != nil {
		logger = *m.Logger
	}

	st := b.State()
	for ply := 0; st.IsRunning(); ply++ {
		if m.MaxRounds > 0 && ply >= m.MaxRounds {
			logger.Info().Int("rounds", ply).Msg("round limit reached")
			return ResultUnfinished, nil
		}
		if ctx.Err() != nil {
			return ResultUnfinished, nil
		}

		s := b.Turn()
		p := m.White
		if s == board.SideBlack {
			p = m.Black
		}

		start := time.Now()
		mv, err := p.ChooseMove(ctx, b, s, m.Movetime, m.Rand)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ResultUnfinished, nil
		}
		if err != nil {
			return ResultUnfinished, fmt.Errorf("%s failed to move: %w", s, err)
		}
		if err := b.ApplyLegal(mv); err != nil {
			return ResultUnfinished, fmt.Errorf("%w: %s played %s: %w", ErrIllegalMove, s, mv, err)
		}
		st = b.State()

		logger.Info().
			Int("ply", ply+1).
			Str("side", s.String()).
			Str("move", mv.String()).
			Dur("took", time.Since(start)).
			Str("fen", b.FEN()).
			Msg("move played")
		if m.Observer != nil {
			m.Observer.OnMove(b, mv)
		}
	}

	logger.Info().Str("state", st.String()).Msg("game over")
	switch {
	case st.IsCheckmate() && st.Winner() == board.SideWhite:
		return ResultWhiteWins, nil
	case st.IsCheckmate():
		return ResultBlackWins, nil
	default:
		return ResultDraw, nil
	}
}
