package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/engine"
)

// Engine is a Player backed by the search engine.
type Engine struct {
	thinker *engine.Thinker
}

var _ Player = (*Engine)(nil)

func NewEngine(cfg *engine.EngineConfig) *Engine {
	return &Engine{
		thinker: engine.NewThinker(cfg),
	}
}

func (e *Engine) ChooseMove(ctx context.Context, b *board.Board, s board.Side, budget time.Duration, r engine.Rand) (board.Move, error) {
	mv, err := e.thinker.ChooseMove(ctx, b, s, budget, r)
	if errors.Is(err, engine.ErrNoMoves) {
		return board.Move{}, fmt.Errorf("%w: %v", ErrNoMoves, err)
	}
	return mv, err
}
