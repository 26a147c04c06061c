// Package bench verifies and measures the move generator by counting leaf nodes.
package bench

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/pawnstorm/board"
)

// Stats counts the leaf nodes of a perft run, and how many of the moves leading to
// them were captures, en passant captures, castles, promotions and checks.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassants += o.EnPassants
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
}

// Split is the perft result below a single root move.
type Split struct {
	Move  board.Move
	Stats Stats
}

// Perft walks every legal line of depth plies from b.
func Perft(b *board.Board, depth int, parallel bool) Stats {
	if depth <= 0 {
		return Stats{Nodes: 1}
	}
	return Total(Divide(b, depth, parallel))
}

// Total sums the stats of every split.
func Total(splits []Split) Stats {
	var total Stats
	for _, sp := range splits {
		total.add(sp.Stats)
	}
	return total
}

// Divide runs perft below every root move, in move generation order. With parallel
// set, the root moves are spread over one worker per CPU.
func Divide(b *board.Board, depth int, parallel bool) []Split {
	if depth <= 0 {
		return nil
	}
	mvs := b.GenerateMoves(b.Turn())
	splits := make([]Split, len(mvs))

	var g errgroup.Group
	if parallel {
		g.SetLimit(runtime.NumCPU())
	} else {
		g.SetLimit(1)
	}
	for i, mv := range mvs {
		i, mv := i, mv
		g.Go(func() error {
			splits[i] = Split{Move: mv, Stats: perftMove(b, mv, depth)}
			return nil
		})
	}
	_ = g.Wait()
	return splits
}

// perftMove counts the leaves below mv, which is played on b with depth plies to go.
func perftMove(b *board.Board, mv board.Move, depth int) Stats {
	bb := b.Clone()
	bb.Apply(mv)
	if depth == 1 {
		s := Stats{Nodes: 1}
		if mv.IsCapture {
			s.Captures++
		}
		if b.IsEnPassant(mv) {
			s.EnPassants++
		}
		if mv.IsCastle() {
			s.Castles++
		}
		if mv.IsPromote != board.PieceUnknown {
			s.Promotions++
		}
		if bb.IsCheck(bb.Turn()) {
			s.Checks++
		}
		return s
	}

	var s Stats
	for _, child := range bb.GenerateMoves(bb.Turn()) {
		s.add(perftMove(bb, child, depth-1))
	}
	return s
}

// Report writes a human readable perft summary.
func Report(w io.Writer, depth int, s Stats, elapsed time.Duration) error {
	_, err := fmt.Fprintln(w, message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, s.Nodes, int(float64(s.Nodes)/(elapsed+1).Seconds()),
			s.Captures, s.EnPassants, s.Castles, s.Promotions, s.Checks, elapsed.Seconds()))
	return err
}

// ReportDivide writes the node count below every root move, in UCI notation.
func ReportDivide(w io.Writer, splits []Split) error {
	p := message.NewPrinter(language.English)
	for _, sp := range splits {
		if _, err := fmt.Fprintln(w, p.Sprintf("%s: %d", sp.Move.UCI(), sp.Stats.Nodes)); err != nil {
			return err
		}
	}
	return nil
}
