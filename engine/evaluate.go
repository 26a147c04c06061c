package engine

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/daystram/pawnstorm/board"
)

const (
	// tieTolerance is the largest score difference still treated as equal.
	tieTolerance = 1e-15
)

var (
	ScoreInfinite = math.Inf(1)
)

// terminal scores a finished game from perspective's point of view. mvs must be the
// legal moves of the side to move. ok is false while the game is still running.
func terminal(b *board.Board, mvs []board.Move, perspective board.Side) (score float64, ok bool) {
	if len(mvs) == 0 {
		if !b.IsCheck(b.Turn()) {
			return 0, true // stalemate
		}
		if b.Turn() == perspective {
			return -ScoreInfinite, true
		}
		return ScoreInfinite, true
	}
	if b.HalfMoveClock() >= board.FiftyMoveLimit {
		return 0, true
	}
	return 0, false
}

// static returns the material balance from perspective's point of view.
func static(b *board.Board, perspective board.Side) float64 {
	return b.MaterialBalance(perspective)
}

// isTie reports whether score is co-optimal with best. Equal infinities tie as well.
func isTie(best, score float64) bool {
	return best == score || math.Abs(best-score) < tieTolerance
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func formatScore(s float64) string {
	switch {
	case math.IsInf(s, 1):
		return "#+"
	case math.IsInf(s, -1):
		return "#-"
	case s > 0:
		return fmt.Sprintf("+%.2f", s)
	case s < 0:
		return fmt.Sprintf("%.2f", s)
	default:
		return "0"
	}
}
