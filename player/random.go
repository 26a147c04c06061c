package player

import (
	"context"
	"fmt"
	"time"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/engine"
)

// Random plays a uniformly random legal move and ignores the time budget.
type Random struct{}

var _ Player = Random{}

func (Random) ChooseMove(_ context.Context, b *board.Board, s board.Side, _ time.Duration, r engine.Rand) (board.Move, error) {
	mvs := b.GenerateMoves(s)
	if len(mvs) == 0 {
		return board.Move{}, fmt.Errorf("%w: %s to move", ErrNoMoves, s)
	}
	return mvs[r.Intn(len(mvs))], nil
}
