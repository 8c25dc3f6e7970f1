package fitness

import "github.com/wildfunctions/genetic_real/pkg/genome"

func init() {
	Register("sphere", func() Evaluator { return Sphere{} })
}

// Sphere is the negated sphere function: -sum(x_i^2).
// Its maximum is 0 at the all-zero genome.
type Sphere struct{}

func (Sphere) Name() string { return "sphere" }

func (Sphere) Evaluate(g genome.Genome) float64 {
	var f float64
	for _, v := range g {
		f -= v * v
	}
	return f
}
