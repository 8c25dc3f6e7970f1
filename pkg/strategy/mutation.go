package strategy

import (
	"github.com/wildfunctions/genetic_real/pkg/genome"
	"github.com/wildfunctions/genetic_real/pkg/rng"
)

// Mutate redraws each gene independently with probability rate, uniformly
// from [geneMin, geneMax]. It modifies g in place and returns how many genes
// were redrawn.
func Mutate(g genome.Genome, rate, geneMin, geneMax float64, src *rng.Source) int {
	changed := 0
	for i := range g {
		if src.Float64() < rate {
			g[i] = src.Uniform(geneMin, geneMax)
			changed++
		}
	}
	return changed
}
