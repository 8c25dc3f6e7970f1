package strategy

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/genetic_real/pkg/genome"
	"github.com/wildfunctions/genetic_real/pkg/rng"
)

// Params are the operator settings a strategy needs, fixed for a run.
type Params struct {
	GeneMin        float64
	GeneMax        float64
	GeneLength     int
	TournamentSize int
	CrossoverRate  float64
	MutationRate   float64
}

// Strategy defines how a population is created and advanced one generation.
type Strategy interface {
	Name() string
	Initialize(p Params, src *rng.Source, popSize int) genome.Population
	Evolve(population genome.Population, fitnesses []float64, p Params, src *rng.Source) genome.Population
}

var registry = map[string]func() Strategy{}

// Register adds a strategy constructor to the registry.
func Register(name string, constructor func() Strategy) {
	registry[name] = constructor
}

// Get returns a strategy by name.
func Get(name string) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
