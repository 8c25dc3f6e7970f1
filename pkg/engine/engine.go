package engine

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/stat"

	"github.com/wildfunctions/genetic_real/pkg/fitness"
	"github.com/wildfunctions/genetic_real/pkg/genome"
	"github.com/wildfunctions/genetic_real/pkg/rng"
	"github.com/wildfunctions/genetic_real/pkg/strategy"
)

// Observer receives every generation's report together with the population
// snapshot and fitness vector it was computed from. After the loop it is
// called once more for the final population, with Generation equal to
// Config.Generations.
type Observer func(r GenerationReport, population genome.Population, fitnesses []float64)

// Engine runs the evolutionary search.
type Engine struct {
	cfg       Config
	evaluator fitness.Evaluator
	strategy  strategy.Strategy
	rng       *rng.Source
	log       io.Writer
	observer  Observer
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ev, err := fitness.Get(cfg.Fitness)
	if err != nil {
		return nil, err
	}
	return NewWithEvaluator(cfg, ev)
}

// NewWithEvaluator creates an engine that maximizes ev instead of the
// registered objective named in cfg.Fitness.
func NewWithEvaluator(cfg Config, ev fitness.Evaluator) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := strategy.Get(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	return &Engine{
		cfg:       cfg,
		evaluator: ev,
		strategy:  s,
		rng:       rng.New(seed),
		log:       os.Stderr,
	}, nil
}

// Observe registers fn to be called after each generation is evaluated.
func (e *Engine) Observe(fn Observer) {
	e.observer = fn
}

// Run executes the evolutionary loop, writing one line per generation and a
// final line to out, and returns the final report.
func (e *Engine) Run(out io.Writer) FinalReport {
	params := e.cfg.params()
	var genReports []GenerationReport

	fmt.Fprintf(e.log, "Starting fitness %s, strategy %s, population %d, genes %d, %d generations, workers %d, seed %d\n",
		e.evaluator.Name(), e.strategy.Name(), e.cfg.PopSize, e.cfg.GeneLength, e.cfg.Generations, e.cfg.Workers, e.rng.Seed())

	population := e.strategy.Initialize(params, e.rng, e.cfg.PopSize)

	for gen := 0; gen < e.cfg.Generations; gen++ {
		fitnesses := e.evaluatePopulation(population)

		report := newGenerationReport(gen, population, fitnesses)
		WriteGenerationLine(out, report)
		if e.cfg.Verbose {
			WriteTextReport(e.log, report)
			genReports = append(genReports, report)
		}
		if e.observer != nil {
			e.observer(report, population, fitnesses)
		}

		population = e.strategy.Evolve(population, fitnesses, params, e.rng)
	}

	fitnesses := e.evaluatePopulation(population)
	last := newGenerationReport(e.cfg.Generations, population, fitnesses)
	if e.observer != nil {
		e.observer(last, population, fitnesses)
	}

	finalReport := FinalReport{
		Config:      e.cfg,
		Seed:        e.rng.Seed(),
		Generations: genReports,
		BestFitness: last.BestFitness,
		BestGenome:  last.BestGenome,
	}
	WriteFinalLine(out, finalReport)

	return finalReport
}

// Best returns the index of the highest fitness; the first occurrence wins ties.
func Best(fitnesses []float64) int {
	bestIdx := 0
	for i, f := range fitnesses {
		if f > fitnesses[bestIdx] {
			bestIdx = i
		}
	}
	return bestIdx
}

func newGenerationReport(gen int, population genome.Population, fitnesses []float64) GenerationReport {
	best := Best(fitnesses)
	mean, std := stat.MeanStdDev(fitnesses, nil)
	return GenerationReport{
		Generation:    gen,
		BestFitness:   fitnesses[best],
		BestGenome:    population[best].Clone(),
		AvgFitness:    mean,
		StdDevFitness: std,
	}
}

// evaluatePopulation evaluates all genomes in parallel. Each worker writes
// only its own slot, so the result order matches the population.
func (e *Engine) evaluatePopulation(pop genome.Population) []float64 {
	fitnesses := make([]float64, len(pop))

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	p := pool.New().WithMaxGoroutines(workers)
	for i, g := range pop {
		p.Go(func() {
			fitnesses[i] = e.evaluator.Evaluate(g)
		})
	}
	p.Wait()

	return fitnesses
}
