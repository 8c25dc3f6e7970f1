package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wildfunctions/genetic_real/pkg/engine"
	"github.com/wildfunctions/genetic_real/pkg/fitness"
	"github.com/wildfunctions/genetic_real/pkg/strategy"
)

func main() {
	cfg := engine.DefaultConfig()

	flag.IntVar(&cfg.Generations, "generations", cfg.Generations, "number of generations")
	flag.IntVar(&cfg.PopSize, "population", cfg.PopSize, "population size (even)")
	flag.IntVar(&cfg.GeneLength, "genes", cfg.GeneLength, "genes per genome (>= 2)")
	flag.Float64Var(&cfg.MutationRate, "mutation", cfg.MutationRate, "per-gene mutation probability")
	flag.Float64Var(&cfg.CrossoverRate, "crossover", cfg.CrossoverRate, "per-pair crossover probability")
	flag.Float64Var(&cfg.GeneMin, "min", cfg.GeneMin, "lower gene bound")
	flag.Float64Var(&cfg.GeneMax, "max", cfg.GeneMax, "upper gene bound")
	flag.IntVar(&cfg.TournamentSize, "tournament", cfg.TournamentSize, "tournament size")
	flag.StringVar(&cfg.Fitness, "fitness", cfg.Fitness, "fitness function ("+strings.Join(fitness.Names(), ", ")+")")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "evolution strategy ("+strings.Join(strategy.Names(), ", ")+")")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel fitness workers")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "per-generation statistics on stderr")
	flag.Parse()

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch cfg.Format {
	case "json":
		report := e.Run(io.Discard)
		if err := engine.WriteJSONFinal(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		e.Run(os.Stdout)
	}
}
