package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/genetic_real/pkg/genome"
)

func TestSphere(t *testing.T) {
	s := Sphere{}

	assert.Equal(t, 0.0, s.Evaluate(genome.Genome{0, 0, 0}))
	assert.Equal(t, -14.0, s.Evaluate(genome.Genome{1, -2, 3}))
	assert.Equal(t, -0.25, s.Evaluate(genome.Genome{0.5}))
}

func TestSphere_Pure(t *testing.T) {
	g := genome.Genome{1.5, -2.5}
	before := g.Clone()

	first := Sphere{}.Evaluate(g)
	second := Sphere{}.Evaluate(g)

	assert.Equal(t, first, second)
	assert.Equal(t, before, g, "Evaluate must not modify its input")
}

func TestFunc(t *testing.T) {
	count := Func{Label: "len", Fn: func(g genome.Genome) float64 { return float64(len(g)) }}

	var ev Evaluator = count
	assert.Equal(t, "len", ev.Name())
	assert.Equal(t, 3.0, ev.Evaluate(genome.Genome{1, 2, 3}))
}

func TestFitnessRegistry(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)

	for _, name := range names {
		ev, err := Get(name)
		require.NoError(t, err, "Get(%q)", name)
		assert.Equal(t, name, ev.Name())
	}
}

func TestUnknownFitness(t *testing.T) {
	_, err := Get("nonexistent")
	assert.Error(t, err)
}
