package engine

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/wildfunctions/genetic_real/pkg/strategy"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("InvalidConfig")

// Config holds all parameters for an evolutionary run.
type Config struct {
	Generations    int
	PopSize        int
	GeneLength     int
	MutationRate   float64
	CrossoverRate  float64
	GeneMin        float64
	GeneMax        float64
	TournamentSize int
	Fitness        string
	Strategy       string
	Seed           int64
	Workers        int
	Format         string // "text" or "json"
	Verbose        bool
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Generations:    100,
		PopSize:        50,
		GeneLength:     10,
		MutationRate:   0.01,
		CrossoverRate:  0.7,
		GeneMin:        -5.0,
		GeneMax:        5.0,
		TournamentSize: strategy.DefaultTournamentSize,
		Fitness:        "sphere",
		Strategy:       "generational",
		Seed:           0, // 0 = random
		Workers:        runtime.NumCPU(),
		Format:         "text",
		Verbose:        false,
	}
}

// Validate checks every field once, before any generation runs.
func (c Config) Validate() error {
	switch {
	case c.Generations < 0:
		return fmt.Errorf("%w: NUM_GENERATIONS must be >= 0", ErrInvalidConfig)
	case c.PopSize <= 0:
		return fmt.Errorf("%w: POP_SIZE must be positive", ErrInvalidConfig)
	case c.PopSize%2 != 0:
		return fmt.Errorf("%w: POP_SIZE must be even", ErrInvalidConfig)
	case c.GeneLength < 2:
		return fmt.Errorf("%w: GENE_LENGTH must be >= 2", ErrInvalidConfig)
	case !finite(c.GeneMin), !finite(c.GeneMax):
		return fmt.Errorf("%w: GENE_MIN and GENE_MAX must be finite", ErrInvalidConfig)
	case !(c.GeneMin < c.GeneMax):
		return fmt.Errorf("%w: GENE_MIN must be < GENE_MAX", ErrInvalidConfig)
	case !inUnit(c.MutationRate), !inUnit(c.CrossoverRate):
		return fmt.Errorf("%w: rate out of range", ErrInvalidConfig)
	case c.TournamentSize < 1:
		return fmt.Errorf("%w: TOURNAMENT_SIZE must be >= 1", ErrInvalidConfig)
	case c.Format != "text" && c.Format != "json":
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

// inUnit reports whether r is in [0, 1]; NaN is not.
func inUnit(r float64) bool {
	return r >= 0 && r <= 1
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (c Config) params() strategy.Params {
	return strategy.Params{
		GeneMin:        c.GeneMin,
		GeneMax:        c.GeneMax,
		GeneLength:     c.GeneLength,
		TournamentSize: c.TournamentSize,
		CrossoverRate:  c.CrossoverRate,
		MutationRate:   c.MutationRate,
	}
}
