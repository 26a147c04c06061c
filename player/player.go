// Package player holds the move choosers that take turns in a game.
package player

import (
	"context"
	"errors"
	"time"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/engine"
)

var (
	ErrNoMoves = errors.New("no legal moves")
	ErrAborted = errors.New("aborted by player")
)

// Player picks one of the legal moves of s. Implementations must not mutate b.
type Player interface {
	ChooseMove(ctx context.Context, b *board.Board, s board.Side, budget time.Duration, r engine.Rand) (board.Move, error)
}
