package rules

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/sheikhrachel/go-life/model"
)

// RulesetFunc decides whether the cell at (x, y) is alive in the next generation.
// Implementations must only read gen.
type RulesetFunc[T any, PT model.CellPtr[T]] func(x, y int, gen *model.Generation[T, PT]) bool

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// ApplyConwayRuleset is the RulesetFunc for Conway's rules on a torus.
// Coordinates outside the grid are reported dead.
func ApplyConwayRuleset[T any, PT model.CellPtr[T]](x, y int, gen *model.Generation[T, PT]) bool {
	if !gen.Contains(x, y) {
		return false
	}
	cell, _ := gen.Cell(x, y)
	return ApplyConwayRules(AliveNeighbors(x, y, gen), PT(&cell).IsAlive())
}

// AliveNeighbors counts the living cells among the 8 toroidal neighbors of (x, y)
func AliveNeighbors[T any, PT model.CellPtr[T]](x, y int, gen *model.Generation[T, PT]) int {
	count := 0
	maxX, maxY := gen.Width()-1, gen.Height()-1

	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			fixedX := FixCoord(nx, 0, maxX)
			fixedY := FixCoord(ny, 0, maxY)
			if fixedX == x && fixedY == y {
				continue
			}
			cell, ok := gen.Cell(fixedX, fixedY)
			if !ok {
				panic(errors.Errorf("[AliveNeighbors] wrapped neighbor (%d, %d) outside %dx%d generation",
					fixedX, fixedY, gen.Width(), gen.Height()))
			}
			if PT(&cell).IsAlive() {
				count++
			}
		}
	}

	return count
}

// FixCoord wraps c into [lower, upper] by a single step: below lower maps to
// upper, above upper maps to lower. Offsets larger than one full span are not
// handled, which is why generations are at least 3 cells per axis.
func FixCoord[I constraints.Signed](c, lower, upper I) I {
	switch {
	case c < lower:
		return upper
	case c > upper:
		return lower
	default:
		return c
	}
}
