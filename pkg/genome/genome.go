package genome

import (
	"strconv"
	"strings"

	"github.com/wildfunctions/genetic_real/pkg/rng"
)

// Genome is a fixed-length sequence of real-valued genes.
type Genome []float64

// Clone returns a copy that shares no storage with g.
func (g Genome) Clone() Genome {
	c := make(Genome, len(g))
	copy(c, g)
	return c
}

// String returns the genes separated by spaces, each followed by a space.
func (g Genome) String() string {
	var sb strings.Builder
	for _, v := range g {
		sb.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// InBounds reports whether every gene lies within [lo, hi].
func (g Genome) InBounds(lo, hi float64) bool {
	for _, v := range g {
		if v < lo || v > hi {
			return false
		}
	}
	return true
}

// Population is an ordered collection of genomes evolved together.
type Population []Genome

// NewPopulation creates popSize genomes of geneLength genes drawn uniformly
// from [geneMin, geneMax].
func NewPopulation(src *rng.Source, geneMin, geneMax float64, geneLength, popSize int) Population {
	pop := make(Population, popSize)
	for i := range pop {
		g := make(Genome, geneLength)
		for j := range g {
			g[j] = src.Uniform(geneMin, geneMax)
		}
		pop[i] = g
	}
	return pop
}

// Clone returns a deep copy of the population.
func (p Population) Clone() Population {
	c := make(Population, len(p))
	for i, g := range p {
		c[i] = g.Clone()
	}
	return c
}
