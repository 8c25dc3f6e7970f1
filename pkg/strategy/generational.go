package strategy

import (
	"fmt"

	"github.com/wildfunctions/genetic_real/pkg/genome"
	"github.com/wildfunctions/genetic_real/pkg/rng"
)

func init() {
	Register("generational", func() Strategy { return &GenerationalStrategy{} })
}

// GenerationalStrategy replaces the whole population every generation:
// tournament selection, pairwise single-point crossover, per-gene mutation.
// No individual survives by reference.
type GenerationalStrategy struct{}

func (s *GenerationalStrategy) Name() string { return "generational" }

func (s *GenerationalStrategy) Initialize(p Params, src *rng.Source, popSize int) genome.Population {
	return genome.NewPopulation(src, p.GeneMin, p.GeneMax, p.GeneLength, popSize)
}

// Evolve pairs consecutive individuals, so the population size must be even;
// an odd size panics.
func (s *GenerationalStrategy) Evolve(
	population genome.Population,
	fitnesses []float64,
	p Params,
	src *rng.Source,
) genome.Population {
	if len(population)%2 != 0 {
		panic(fmt.Sprintf("strategy: population size %d is odd", len(population)))
	}

	selected := TournamentSelect(population, fitnesses, p.TournamentSize, src)

	// Slots 2k and 2k+1 of the next generation derive from the same pair.
	next := make(genome.Population, 0, len(selected))
	for i := 0; i < len(selected); i += 2 {
		c1, c2 := Crossover(selected[i], selected[i+1], p.CrossoverRate, src)
		next = append(next, c1, c2)
	}

	for _, g := range next {
		Mutate(g, p.MutationRate, p.GeneMin, p.GeneMax, src)
	}

	return next
}
