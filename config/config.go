// Package config loads the pawnstorm settings from flags, environment and an optional
// config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/daystram/pawnstorm/board"
	"github.com/daystram/pawnstorm/engine"
)

const EnvPrefix = "PAWNSTORM"

const (
	ModePlay    = "play"
	ModePerft   = "perft"
	ModeMovegen = "movegen"

	PlayerEngine = "engine"
	PlayerRandom = "random"
	PlayerHuman  = "human"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel zerolog.Level
	Mode     string

	White     string
	Black     string
	Movetime  time.Duration
	Depth     int
	MaxRounds int
	// Seed drives a reproducible random source. Zero selects a cryptographic source.
	Seed uint64

	FEN           string
	PerftDepth    int
	PerftParallel bool
	Color         bool
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pawnstorm", pflag.ContinueOnError)
	fs.String("config", "", "path to a yaml, toml or json config file")
	fs.String("log-level", "info", "log level: debug, info, warn, error or disabled")
	fs.String("mode", ModePlay, "run mode: play, perft or movegen")
	fs.String("white", PlayerHuman, "White player: engine, random or human")
	fs.String("black", PlayerEngine, "Black player: engine, random or human")
	fs.Duration("movetime", engine.DefaultMovetime, "time budget per engine move")
	fs.Int("depth", 0, "engine depth cap, 0 searches until the movetime runs out")
	fs.Int("max-rounds", 0, "maximum number of plies, 0 plays until the game is over")
	fs.Uint64("seed", 0, "random seed, 0 uses a cryptographic source")
	fs.String("fen", board.DefaultStartingPositionFEN, "starting position")
	fs.Int("perft-depth", 4, "perft depth in perft mode")
	fs.Bool("perft-parallel", true, "spread perft over all CPUs")
	fs.Bool("color", true, "draw a coloured board")
	return fs
}

// Load parses args and layers them over PAWNSTORM_* environment variables and the
// file named by --config.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("log-level")))
	if err != nil {
		return nil, fmt.Errorf("%w: log-level: %v", ErrInvalidConfig, err)
	}
	cfg := &Config{
		LogLevel:      level,
		Mode:          strings.ToLower(v.GetString("mode")),
		White:         strings.ToLower(v.GetString("white")),
		Black:         strings.ToLower(v.GetString("black")),
		Movetime:      v.GetDuration("movetime"),
		Depth:         v.GetInt("depth"),
		MaxRounds:     v.GetInt("max-rounds"),
		Seed:          v.GetUint64("seed"),
		FEN:           v.GetString("fen"),
		PerftDepth:    v.GetInt("perft-depth"),
		PerftParallel: v.GetBool("perft-parallel"),
		Color:         v.GetBool("color"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModePlay, ModePerft, ModeMovegen:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	for _, p := range []string{c.White, c.Black} {
		switch p {
		case PlayerEngine, PlayerRandom, PlayerHuman:
		default:
			return fmt.Errorf("%w: unknown player %q", ErrInvalidConfig, p)
		}
	}
	if c.Movetime <= 0 {
		return fmt.Errorf("%w: movetime must be positive", ErrInvalidConfig)
	}
	if c.Depth < 0 || c.MaxRounds < 0 || c.PerftDepth < 0 {
		return fmt.Errorf("%w: negative depth or round limit", ErrInvalidConfig)
	}
	return nil
}
