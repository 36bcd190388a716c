package main

import (
	"math/rand"
	"testing"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()

	if restart, reason := checkRestartConditions(0, 0, config); !restart || reason != "extinction" {
		t.Fatalf("extinct board: restart=%v reason=%q", restart, reason)
	}
	if restart, reason := checkRestartConditions(10, config.StagnationThreshold, config); !restart || reason != "stagnation detected" {
		t.Fatalf("stagnant board: restart=%v reason=%q", restart, reason)
	}
	if restart, _ := checkRestartConditions(10, 0, config); restart {
		t.Fatal("active board restarted")
	}
}

func TestSeedWithInterestingPatternsIsDeterministic(t *testing.T) {
	config := utils.DefaultConfig()
	a, _ := model.NewSimpleGeneration(config.Width, config.Height)
	b, _ := model.NewSimpleGeneration(config.Width, config.Height)

	seedWithInterestingPatterns(a, config, rand.New(rand.NewSource(7)))
	seedWithInterestingPatterns(b, config, rand.New(rand.NewSource(7)))

	if a.Hash() != b.Hash() {
		t.Fatal("same seed produced different boards")
	}
	if a.CountAlive() == 0 {
		t.Fatal("seeded board is empty")
	}
}
