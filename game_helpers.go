package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

type conwaySimulation = engine.Simulation[model.SimpleCell, *model.SimpleCell]

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*conwaySimulation,
	*rand.Rand,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	sim, err := engine.NewConwaySimulation(config.Width, config.Height, config.UseMemoryPool)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	seedWithInterestingPatterns(sim.Current(), config, rng)

	return sim, rng, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// seedWithInterestingPatterns fills the generation randomly and adds gliders and blinkers
func seedWithInterestingPatterns(gen *model.SimpleGeneration, config utils.Config, rng *rand.Rand) {
	gen.Seed(config.RandomDensity, rng)

	if gen.Width() >= 10 && gen.Height() >= 10 {
		gen.Stamp(5, 5, model.Glider)
		if gen.Width() >= 20 && gen.Height() >= 15 {
			gen.Stamp(gen.Width()-8, 5, model.Glider)
		}

		gen.Stamp(gen.Width()/4, gen.Height()/4, model.Blinker)
		if gen.Width() >= 30 {
			gen.Stamp(3*gen.Width()/4, 3*gen.Height()/4, model.Blinker)
		}
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, gen *model.SimpleGeneration) {
	fmt.Printf("Features: Memory Pool: %v | Auto restart: %v\n",
		config.UseMemoryPool, config.AutoRestart)
	fmt.Printf("Grid: %dx%d (toroidal) | Initial living cells: %d\n",
		gen.Width(), gen.Height(), gen.CountAlive())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the stats and returns status information
func updateGameState(
	sim *conwaySimulation,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	gen := sim.Current()
	livingCells := gen.CountAlive()
	density := float64(livingCells) / float64(gen.Width()*gen.Height()) * 100

	stats.Update(sim.Generation(), livingCells, time.Since(lastFrameTime))

	isStagnant := sim.IsStagnant()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame clears the simulation and seeds new patterns
func restartGame(sim *conwaySimulation, config utils.Config, rng *rand.Rand) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	sim.Reset()
	seedWithInterestingPatterns(sim.Current(), config, rng)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", sim.Current().CountAlive())
	time.Sleep(2 * time.Second)
}
