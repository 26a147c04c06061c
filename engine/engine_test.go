package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/daystram/pawnstorm/board"
)

// fixedRand always picks the same offset from the start or the end of the range.
type fixedRand struct {
	last  bool
	calls []int
}

func (r *fixedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if r.last {
		return n - 1
	}
	return 0
}

func newBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func TestSearchCapturesQueen(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	b := newBoard(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")

	mv, err := NewThinker(&EngineConfig{}).Search(context.Background(), b, board.SideWhite, &SearchConfig{Depth: 1}, &fixedRand{})
	is.NoErr(err)
	is.Equal(mv.UCI(), "d1d5")
	is.True(mv.IsCapture)
}

func TestSearchMateInOne(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	b := newBoard(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")

	mv, err := NewThinker(&EngineConfig{}).Search(context.Background(), b, board.SideWhite, &SearchConfig{Depth: 1}, &fixedRand{last: true})
	is.NoErr(err)
	is.Equal(mv.UCI(), "a1a8")
}

func TestSearchAvoidsHangingQueen(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	// Qxd5 wins a pawn but loses the Queen to exd5
	b := newBoard(t, "4k3/8/4p3/3p4/8/8/3Q4/4K3 w - - 0 1")

	mv, err := NewThinker(&EngineConfig{}).Search(context.Background(), b, board.SideWhite, &SearchConfig{Depth: 3}, &fixedRand{})
	is.NoErr(err)
	is.True(mv.UCI() != "d2d5")
	is.True(b.IsLegal(mv))
}

func TestSearchTieBreak(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		last bool
	}{
		{name: "first of run", last: false},
		{name: "last of run", last: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			is := is.New(t)
			b := newBoard(t, board.DefaultStartingPositionFEN)
			r := &fixedRand{last: tt.last}

			mv, err := NewThinker(&EngineConfig{}).Search(context.Background(), b, board.SideWhite, &SearchConfig{Depth: 1}, r)
			is.NoErr(err)
			// every opening move keeps the material even
			is.Equal(r.calls, []int{20})

			mvs := b.GenerateMoves(board.SideWhite)
			want := mvs[0]
			if tt.last {
				want = mvs[len(mvs)-1]
			}
			is.Equal(mv, want)
		})
	}
}

func TestSearchTiedMates(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	// either Rook mates on the back rank
	fen := "6k1/5ppp/8/8/8/8/1R6/R5K1 w - - 0 1"

	got := map[string]bool{}
	for _, last := range []bool{false, true} {
		b := newBoard(t, fen)
		r := &fixedRand{last: last}
		mv, err := NewThinker(&EngineConfig{}).Search(context.Background(), b, board.SideWhite, &SearchConfig{Depth: 1}, r)
		is.NoErr(err)
		is.Equal(r.calls, []int{2}) // equal infinities share the tie run

		bb := b.Clone()
		bb.Apply(mv)
		is.True(bb.IsMate(board.SideBlack))
		got[mv.UCI()] = true
	}
	is.Equal(got, map[string]bool{"a1a8": true, "b2b8": true})
}

func TestSearchFallback(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	b := newBoard(t, board.DefaultStartingPositionFEN)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &fixedRand{}
	mv, err := NewThinker(&EngineConfig{}).Search(ctx, b, board.SideWhite, &SearchConfig{}, r)
	is.NoErr(err)
	is.Equal(mv, b.GenerateMoves(board.SideWhite)[0])
	is.Equal(len(r.calls), 0) // no iteration completed
}

func TestSearchNoMoves(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	b := newBoard(t, "k7/8/1Q6/8/8/8/8/K7 b - - 0 1")

	_, err := NewThinker(&EngineConfig{}).Search(context.Background(), b, board.SideBlack, &SearchConfig{Depth: 1}, &fixedRand{})
	is.True(errors.Is(err, ErrNoMoves))
}

func TestChooseMove(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	b := newBoard(t, board.DefaultStartingPositionFEN)
	before := b.FEN()

	start := time.Now()
	mv, err := NewThinker(&EngineConfig{}).ChooseMove(context.Background(), b, board.SideWhite, 100*time.Millisecond, NewPseudoRand(1))
	is.NoErr(err)
	is.True(time.Since(start) >= 100*time.Millisecond)
	is.True(b.IsLegal(mv))
	is.Equal(b.FEN(), before) // board untouched
}

func TestChooseMoveDepthCap(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	b := newBoard(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")

	mv, err := NewThinker(&EngineConfig{Depth: 1}).ChooseMove(context.Background(), b, board.SideWhite, time.Minute, &fixedRand{})
	is.NoErr(err)
	is.Equal(mv.UCI(), "d1d5")
}

func TestChooseMoveCancelled(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	b := newBoard(t, board.DefaultStartingPositionFEN)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	mv, err := NewThinker(&EngineConfig{}).ChooseMove(ctx, b, board.SideWhite, time.Minute, NewPseudoRand(7))
	is.NoErr(err)
	is.True(b.IsLegal(mv))
}

func TestClock(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	c := NewClock()
	is.True(c.DoneByMovetime()) // idle clock

	c.Start(context.Background(), &SearchConfig{Depth: 3})
	is.Equal(c.Mode(), ClockModeDepth)
	is.True(!c.DoneByMovetime())
	is.True(!c.DoneByDepth(1))
	is.True(c.DoneByDepth(3))
	c.Stop()
	is.True(eventually(c.DoneByMovetime))

	c.Start(context.Background(), &SearchConfig{Movetime: 10 * time.Millisecond})
	is.Equal(c.Mode(), ClockModeMovetime)
	is.True(!c.DoneByDepth(MaxDepth - 1))
	is.True(eventually(c.DoneByMovetime))
	c.Stop()
}

func TestPseudoRand(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	r1, r2 := NewPseudoRand(42), NewPseudoRand(42)
	for i := 0; i < 100; i++ {
		n := r1.Intn(10)
		is.Equal(n, r2.Intn(10))
		is.True(n >= 0 && n < 10)
	}
	is.True(NewPseudoRand(0).Uint64() != 0)
}

func TestFormatScore(t *testing.T) {
	t.Parallel()
	is := is.New(t)
	is.Equal(formatScore(ScoreInfinite), "#+")
	is.Equal(formatScore(-ScoreInfinite), "#-")
	is.Equal(formatScore(1.3), "+1.30")
	is.Equal(formatScore(-4), "-4.00")
	is.Equal(formatScore(0), "0")
}

func eventually(cond func() bool) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}
