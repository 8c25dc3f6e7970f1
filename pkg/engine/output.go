package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/wildfunctions/genetic_real/pkg/genome"
)

// GenerationReport summarizes one generation.
type GenerationReport struct {
	Generation    int           `json:"generation"`
	BestFitness   float64       `json:"best_fitness"`
	BestGenome    genome.Genome `json:"best_genome"`
	AvgFitness    float64       `json:"avg_fitness"`
	StdDevFitness float64       `json:"stddev_fitness"`
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	Config      Config             `json:"config"`
	Seed        int64              `json:"seed"`
	Generations []GenerationReport `json:"generations,omitempty"`
	BestFitness float64            `json:"best_fitness"`
	BestGenome  genome.Genome      `json:"best_genome"`
}

func formatFitness(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// WriteGenerationLine writes the per-generation result line.
func WriteGenerationLine(w io.Writer, r GenerationReport) {
	fmt.Fprintf(w, "Generation %d: Best Fitness = %s | Best Individual = %s\n",
		r.Generation, formatFitness(r.BestFitness), r.BestGenome)
}

// WriteFinalLine writes the final result line, preceded by a blank line.
func WriteFinalLine(w io.Writer, r FinalReport) {
	fmt.Fprintf(w, "\nFinal Best Fitness = %s | Best Individual = %s\n",
		formatFitness(r.BestFitness), r.BestGenome)
}

// WriteTextReport writes generation statistics in human-readable format.
func WriteTextReport(w io.Writer, r GenerationReport) {
	fmt.Fprintf(w, "Gen %4d | Best: %.4f | Avg: %.4f | StdDev: %.4f\n",
		r.Generation, r.BestFitness, r.AvgFitness, r.StdDevFitness)
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
