package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/pawnstorm/board"
)

var ErrNoMoves = errors.New("no legal moves")

type EngineConfig struct {
	// Depth caps every search started through ChooseMove. Zero searches until the
	// budget runs out.
	Depth  int
	Logger *zerolog.Logger
}

type SearchConfig struct {
	Movetime time.Duration
	Depth    int
}

// Thinker searches for the best move with iterative deepening minimax and alpha-beta
// pruning. All search state lives in the call, so a Thinker may serve several games.
type Thinker struct {
	depth  int
	logger zerolog.Logger
}

func NewThinker(cfg *EngineConfig) *Thinker {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Thinker{
		depth:  cfg.Depth,
		logger: logger,
	}
}

// ChooseMove runs a search for s on a dedicated worker and blocks until the budget is
// spent, then returns the best move of the last completed iteration. A non-positive
// budget falls back to DefaultMovetime.
func (t *Thinker) ChooseMove(ctx context.Context, b *board.Board, s board.Side, budget time.Duration, r Rand) (board.Move, error) {
	if budget <= 0 {
		budget = DefaultMovetime
	}
	var best board.Move
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		mv, err := t.Search(gctx, b, s, &SearchConfig{Movetime: budget, Depth: t.depth}, r)
		if err != nil {
			return err
		}
		best = mv
		return nil
	})
	if err := g.Wait(); err != nil {
		return board.Move{}, err
	}
	return best, nil
}

type valuedMove struct {
	move  board.Move
	value float64
}

// search holds the state of a single Search call.
type search struct {
	clock       *Clock
	perspective board.Side
	nodes       uint64
	aborted     bool
}

// Search deepens until the clock runs out or the depth cap is reached. Only completed
// iterations are published; before the first one completes the first legal move is
// returned. The board is only ever cloned, never mutated.
func (t *Thinker) Search(ctx context.Context, b *board.Board, s board.Side, cfg *SearchConfig, r Rand) (board.Move, error) {
	mvs := b.GenerateMoves(s)
	if len(mvs) == 0 {
		return board.Move{}, fmt.Errorf("%w: %s to move", ErrNoMoves, s)
	}

	srch := &search{
		clock:       NewClock(),
		perspective: s,
	}
	srch.clock.Start(ctx, cfg)
	defer srch.clock.Stop()

	best := mvs[0]
	candidates := lo.Map(mvs, func(mv board.Move, _ int) valuedMove {
		return valuedMove{move: mv}
	})
	start := time.Now()
	p := message.NewPrinter(language.English)

	for level := 1; !srch.clock.DoneByMovetime(); level += 2 {
		for i := range candidates {
			bb := b.Clone()
			bb.Apply(candidates[i].move)
			candidates[i].value = srch.evaluate(bb, level-1, -ScoreInfinite, ScoreInfinite, false)
			if srch.aborted {
				break
			}
		}
		if srch.aborted {
			break
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].value > candidates[j].value
		})
		count := 0
		for _, c := range candidates {
			if !isTie(candidates[0].value, c.value) {
				break
			}
			count++
		}
		if count == 0 {
			best = candidates[0].move
		} else {
			best = candidates[r.Intn(count)].move
		}

		elapsed := time.Since(start)
		t.logger.Debug().
			Int("depth", level).
			Str("score", formatScore(candidates[0].value)).
			Int("ties", count).
			Str("best", best.String()).
			Str("nodes", p.Sprintf("%d", srch.nodes)).
			Str("nps", p.Sprintf("%.0f", float64(srch.nodes)/(elapsed+1).Seconds())).
			Dur("elapsed", elapsed).
			Msg("iteration complete")

		if srch.clock.DoneByDepth(level) {
			break
		}
	}

	return best, nil
}

// evaluate scores b from the searching side's fixed perspective: maximizing plies
// belong to the searching side, minimizing plies to its opponent.
func (s *search) evaluate(b *board.Board, depth int, alpha, beta float64, maximizing bool) float64 {
	s.nodes++
	if s.clock.DoneByMovetime() {
		s.aborted = true
		return 0
	}

	mvs := b.GenerateMoves(b.Turn())
	if score, ok := terminal(b, mvs, s.perspective); ok {
		return score
	}
	if depth == 0 {
		return static(b, s.perspective)
	}

	if maximizing {
		value := -ScoreInfinite
		for _, mv := range mvs {
			bb := b.Clone()
			bb.Apply(mv)
			value = max(value, s.evaluate(bb, depth-1, alpha, beta, false))
			if s.aborted {
				return 0
			}
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := ScoreInfinite
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		value = min(value, s.evaluate(bb, depth-1, alpha, beta, true))
		if s.aborted {
			return 0
		}
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}
