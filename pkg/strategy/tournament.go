package strategy

import (
	"github.com/wildfunctions/genetic_real/pkg/genome"
	"github.com/wildfunctions/genetic_real/pkg/rng"
)

// DefaultTournamentSize is the number of contestants drawn per tournament.
const DefaultTournamentSize = 3

// TournamentSelect builds a new population of len(pop) by repeated tournaments.
// Each tournament draws size indices with replacement and keeps the fittest;
// on equal fitness the first drawn wins.
func TournamentSelect(pop genome.Population, fitnesses []float64, size int, src *rng.Source) genome.Population {
	selected := make(genome.Population, len(pop))
	for i := range selected {
		selected[i] = pop[tournamentWinner(fitnesses, size, src)].Clone()
	}
	return selected
}

func tournamentWinner(fitnesses []float64, size int, src *rng.Source) int {
	last := len(fitnesses) - 1
	winner := src.IntRange(0, last)
	for i := 1; i < size; i++ {
		idx := src.IntRange(0, last)
		if fitnesses[idx] > fitnesses[winner] {
			winner = idx
		}
	}
	return winner
}
