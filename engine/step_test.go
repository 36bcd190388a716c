package engine

import (
	"math/rand"
	"testing"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

var conway = rules.ApplyConwayRuleset[model.SimpleCell, *model.SimpleCell]

func expectAlive(t *testing.T, gen *model.SimpleGeneration, expects map[[2]int]bool) {
	t.Helper()
	for y := 0; y < gen.Height(); y++ {
		for x := 0; x < gen.Width(); x++ {
			alive := gen.IsAlive(x, y)
			if shouldBeAlive := expects[[2]int{x, y}]; shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestStepBlinker(t *testing.T) {
	cur, _ := model.NewSimpleGeneration(5, 5)
	next, _ := model.NewSimpleGeneration(5, 5)
	cur.Stamp(2, 1, [][]bool{{true}, {true}, {true}})

	if err := Step(cur, next, conway); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	expectAlive(t, next, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
	// cur is only read
	expectAlive(t, cur, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})

	if err := Step(next, cur, conway); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	expectAlive(t, cur, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestStepOverwritesStaleCells(t *testing.T) {
	cur, _ := model.NewSimpleGeneration(4, 4)
	next, _ := model.NewSimpleGeneration(4, 4)
	next.Seed(1, rand.New(rand.NewSource(1)))

	if err := Step(cur, next, conway); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if next.CountAlive() != 0 {
		t.Fatalf("next has %d living cells after stepping an empty generation", next.CountAlive())
	}
}

func TestStepRejectsBadTargets(t *testing.T) {
	cur, _ := model.NewSimpleGeneration(4, 4)
	other, _ := model.NewSimpleGeneration(4, 5)

	if err := Step(cur, cur, conway); err == nil {
		t.Fatal("Step into the same generation succeeded")
	}
	if err := Step(cur, other, conway); err == nil {
		t.Fatal("Step into a generation of a different size succeeded")
	}
}
