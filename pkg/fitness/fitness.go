package fitness

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/genetic_real/pkg/genome"
)

// Evaluator scores a genome; higher is better. Implementations must be pure
// so that a population can be evaluated in parallel.
type Evaluator interface {
	Name() string
	Evaluate(g genome.Genome) float64
}

// Func adapts a plain function to the Evaluator interface.
type Func struct {
	Label string
	Fn    func(genome.Genome) float64
}

func (f Func) Name() string                     { return f.Label }
func (f Func) Evaluate(g genome.Genome) float64 { return f.Fn(g) }

var registry = map[string]func() Evaluator{}

// Register adds an evaluator constructor to the registry.
func Register(name string, constructor func() Evaluator) {
	registry[name] = constructor
}

// Get returns an evaluator by name.
func Get(name string) (Evaluator, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown fitness: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered evaluator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
