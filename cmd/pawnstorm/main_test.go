package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/config"
)

func TestPerftMode(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := perft(&config.Config{FEN: board.DefaultStartingPositionFEN, PerftDepth: 2, PerftParallel: true}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"e2e4: 20", "g1f3: 20", "d=2 nodes=400 "} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestMovegenMode(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := movegen(&config.Config{FEN: board.DefaultStartingPositionFEN}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out.String(), "option "); got != 20 {
		t.Errorf("unexpected option count: got=%d want=20", got)
	}
	if !strings.Contains(out.String(), board.DefaultStartingPositionFEN) {
		t.Errorf("output missing FEN")
	}
}

func TestPlayMode(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	logger := zerolog.Nop()
	cfg := &config.Config{
		Mode:      config.ModePlay,
		White:     config.PlayerRandom,
		Black:     config.PlayerRandom,
		MaxRounds: 10,
		Seed:      3,
		FEN:       board.DefaultStartingPositionFEN,
	}
	if err := play(context.Background(), cfg, &logger, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a random game may end before the round limit
	if got := strings.Count(out.String(), "Chosen move:"); got < 1 || got > 10 {
		t.Errorf("unexpected move count: got=%d want=1..10", got)
	}
	if !strings.Contains(out.String(), "Result: ") {
		t.Errorf("output missing result:\n%s", out.String())
	}
}

func TestRealMainInvalid(t *testing.T) {
	t.Parallel()
	if got := realMain([]string{"--mode=unknown", "--log-level=disabled"}); got != exitErr {
		t.Errorf("unexpected exit code: got=%d want=%d", got, exitErr)
	}
	if got := realMain([]string{"--fen=8/8/8/8/8/8/8/8 w - - 0 1", "--mode=movegen", "--log-level=disabled"}); got != exitErr {
		t.Errorf("unexpected exit code: got=%d want=%d", got, exitErr)
	}
}
