package strategy

import (
	"fmt"

	"github.com/wildfunctions/genetic_real/pkg/genome"
	"github.com/wildfunctions/genetic_real/pkg/rng"
)

// Crossover performs single-point crossover with probability rate.
// The cut point lies in [1, len-1], so a triggered crossover always takes a
// non-empty prefix from one parent and a non-empty suffix from the other.
// Otherwise the children are copies of the parents.
// Both parents must have the same length, at least 2; shorter genomes panic.
func Crossover(a, b genome.Genome, rate float64, src *rng.Source) (genome.Genome, genome.Genome) {
	if len(a) < 2 || len(a) != len(b) {
		panic(fmt.Sprintf("strategy: crossover needs equal lengths >= 2, got %d and %d", len(a), len(b)))
	}
	if src.Float64() >= rate {
		return a.Clone(), b.Clone()
	}

	point := src.IntRange(1, len(a)-1)
	return splice(a, b, point), splice(b, a, point)
}

// splice returns head[:point] followed by tail[point:].
func splice(head, tail genome.Genome, point int) genome.Genome {
	child := make(genome.Genome, 0, len(tail))
	child = append(child, head[:point]...)
	return append(child, tail[point:]...)
}
