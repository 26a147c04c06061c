package bench

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/daystram/pawnstorm/board"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	// Results obtained from https://www.chessprogramming.org/Perft_Results.
	tests := map[string][]struct {
		depth     int
		wantNodes uint64
		onlyNodes bool
		slow      bool
		wantCap   uint64
		wantEnp   uint64
		wantCas   uint64
		wantPro   uint64
		wantChk   uint64
	}{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1": {
			{
				depth:     0,
				wantNodes: 1,
			},
			{
				depth:     1,
				wantNodes: 20,
			},
			{
				depth:     2,
				wantNodes: 400,
			},
			{
				depth:     3,
				wantNodes: 8_902,
				wantCap:   34,
				wantChk:   12,
			},
			{
				depth:     4,
				wantNodes: 197_281,
				slow:      true,
				wantCap:   1_576,
				wantChk:   469,
			},
		},
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1": {
			{
				depth:     1,
				wantNodes: 48,
				wantCap:   8,
				wantCas:   2,
			},
			{
				depth:     2,
				wantNodes: 2_039,
				wantCap:   351,
				wantEnp:   1,
				wantCas:   91,
				wantChk:   3,
			},
			{
				depth:     3,
				wantNodes: 97_862,
				slow:      true,
				wantCap:   17_102,
				wantEnp:   45,
				wantCas:   3_162,
				wantChk:   993,
			},
		},
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1": {
			{
				depth:     1,
				wantNodes: 14,
				wantCap:   1,
				wantChk:   2,
			},
			{
				depth:     2,
				wantNodes: 191,
				wantCap:   14,
				wantChk:   10,
			},
			{
				depth:     3,
				wantNodes: 2_812,
				wantCap:   209,
				wantEnp:   2,
				wantChk:   267,
			},
			{
				depth:     4,
				wantNodes: 43_238,
				slow:      true,
				wantCap:   3_348,
				wantEnp:   123,
				wantChk:   1_680,
			},
		},
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1": {
			{
				depth:     1,
				wantNodes: 6,
			},
			{
				depth:     2,
				wantNodes: 264,
				wantCap:   87,
				wantCas:   6,
				wantPro:   48,
				wantChk:   10,
			},
			{
				depth:     3,
				wantNodes: 9_467,
				wantCap:   1_021,
				wantEnp:   4,
				wantPro:   120,
				wantChk:   38,
			},
		},
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8": {
			{
				depth:     1,
				wantNodes: 44,
				onlyNodes: true,
			},
			{
				depth:     2,
				wantNodes: 1_486,
				onlyNodes: true,
			},
			{
				depth:     3,
				wantNodes: 62_379,
				onlyNodes: true,
				slow:      true,
			},
		},
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10": {
			{
				depth:     1,
				wantNodes: 46,
				onlyNodes: true,
			},
			{
				depth:     2,
				wantNodes: 2_079,
				onlyNodes: true,
			},
			{
				depth:     3,
				wantNodes: 89_890,
				onlyNodes: true,
				slow:      true,
			},
		},
	}

	for fen, constraints := range tests {
		fen := fen
		for _, tt := range constraints {
			tt := tt
			t.Run(fmt.Sprintf("perft(%d): %s", tt.depth, fen), func(t *testing.T) {
				t.Parallel()
				if tt.slow && testing.Short() {
					t.Skip("skipping deep perft in short mode")
				}
				b, err := board.NewBoard(board.WithFEN(fen))
				if err != nil {
					t.Fatal("unexpected error:", err)
				}

				s := Perft(b, tt.depth, true)

				if s.Nodes != tt.wantNodes {
					t.Errorf("unexpected nodes: got=%d want=%d", s.Nodes, tt.wantNodes)
				}
				if !tt.onlyNodes {
					if s.Captures != tt.wantCap {
						t.Errorf("unexpected cap: got=%d want=%d", s.Captures, tt.wantCap)
					}
					if s.EnPassants != tt.wantEnp {
						t.Errorf("unexpected enp: got=%d want=%d", s.EnPassants, tt.wantEnp)
					}
					if s.Castles != tt.wantCas {
						t.Errorf("unexpected cas: got=%d want=%d", s.Castles, tt.wantCas)
					}
					if s.Promotions != tt.wantPro {
						t.Errorf("unexpected pro: got=%d want=%d", s.Promotions, tt.wantPro)
					}
					if s.Checks != tt.wantChk {
						t.Errorf("unexpected chk: got=%d want=%d", s.Checks, tt.wantChk)
					}
				}
			})
		}
	}
}

func TestPerftSequentialMatchesParallel(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard(board.WithFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if got, want := Perft(b, 2, false), Perft(b, 2, true); got != want {
		t.Errorf("unexpected stats: got=%+v want=%+v", got, want)
	}
	if got := b.FEN(); got != "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1" {
		t.Errorf("board mutated: got=%s", got)
	}
}

func TestDivide(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	splits := Divide(b, 2, true)
	if len(splits) != 20 {
		t.Fatalf("unexpected splits: got=%d want=%d", len(splits), 20)
	}
	for i, mv := range b.GenerateMoves(board.SideWhite) {
		if splits[i].Move != mv {
			t.Errorf("unexpected split order: got=%s want=%s", splits[i].Move, mv)
		}
		if splits[i].Stats.Nodes != 20 {
			t.Errorf("unexpected nodes below %s: got=%d want=%d", mv, splits[i].Stats.Nodes, 20)
		}
	}

	out := &bytes.Buffer{}
	if err := ReportDivide(out, splits); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !strings.Contains(out.String(), "e2e4: 20") {
		t.Errorf("unexpected divide report: got=%s", out.String())
	}
}

func TestReport(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	err := Report(out, 4, Stats{Nodes: 197_281, Captures: 1_576, Checks: 469}, time.Second)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := out.String(); !strings.Contains(got, "nodes=197,281") || !strings.Contains(got, "cap=1,576") {
		t.Errorf("unexpected report: got=%s", got)
	}
}
