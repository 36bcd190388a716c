package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Generation is one time-step snapshot of the automaton: a fixed-size grid of
// cells stored row-major in a single slice (index = y*width + x).
type Generation[T any, PT CellPtr[T]] struct {
	width  int
	height int
	cells  []T
}

// SimpleGeneration is a Generation made of SimpleCells
type SimpleGeneration = Generation[SimpleCell, *SimpleCell]

// NewGeneration creates a generation with every cell set to T's zero (dead) value
func NewGeneration[T any, PT CellPtr[T]](width, height int) (*Generation[T, PT], error) {
	if width < MinDimension || height < MinDimension {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGeneration] got %dx%d", width, height)
	}
	return &Generation[T, PT]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// NewSimpleGeneration creates a generation of dead SimpleCells
func NewSimpleGeneration(width, height int) (*SimpleGeneration, error) {
	return NewGeneration[SimpleCell](width, height)
}

// Width returns the width of the generation
func (g *Generation[T, PT]) Width() int {
	return g.width
}

// Height returns the height of the generation
func (g *Generation[T, PT]) Height() int {
	return g.height
}

// position maps (x, y) to a linear index. Coordinates are not checked
// individually; only the resulting index has to fall inside the grid.
func (g *Generation[T, PT]) position(x, y int) (int, bool) {
	pos := y*g.width + x
	if pos < 0 || pos >= len(g.cells) {
		return 0, false
	}
	return pos, true
}

// Cell returns a copy of the cell at (x, y), or false if the position is outside the grid
func (g *Generation[T, PT]) Cell(x, y int) (T, bool) {
	pos, ok := g.position(x, y)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[pos], true
}

// CellMut returns a pointer to the cell at (x, y) for in-place mutation,
// or false if the position is outside the grid
func (g *Generation[T, PT]) CellMut(x, y int) (PT, bool) {
	pos, ok := g.position(x, y)
	if !ok {
		return nil, false
	}
	return PT(&g.cells[pos]), true
}

// Contains reports whether x and y are both inside the grid's extent
func (g *Generation[T, PT]) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsAlive reports whether the cell at (x, y) exists and is alive
func (g *Generation[T, PT]) IsAlive(x, y int) bool {
	pos, ok := g.position(x, y)
	if !ok {
		return false
	}
	return PT(&g.cells[pos]).IsAlive()
}

// Clear kills every cell
func (g *Generation[T, PT]) Clear() {
	for i := range g.cells {
		PT(&g.cells[i]).Kill()
	}
}

// CountAlive returns the total number of living cells
func (g *Generation[T, PT]) CountAlive() (count int) {
	for i := range g.cells {
		if PT(&g.cells[i]).IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the alive/dead layout, used for cycle detection
func (g *Generation[T, PT]) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i := range g.cells {
		if PT(&g.cells[i]).IsAlive() {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Seed spawns each cell with probability density and kills the rest
func (g *Generation[T, PT]) Seed(density float64, rng *rand.Rand) {
	for i := range g.cells {
		if rng.Float64() < density {
			PT(&g.cells[i]).Spawn()
		} else {
			PT(&g.cells[i]).Kill()
		}
	}
}

// Stamp writes pattern with its top-left corner at (startX, startY).
// The pattern wraps around the edges; false entries kill the target cell.
func (g *Generation[T, PT]) Stamp(startX, startY int, pattern [][]bool) {
	for dy, row := range pattern {
		for dx, alive := range row {
			x := ((startX+dx)%g.width + g.width) % g.width
			y := ((startY+dy)%g.height + g.height) % g.height
			cell := PT(&g.cells[y*g.width+x])
			if alive {
				cell.Spawn()
			} else {
				cell.Kill()
			}
		}
	}
}
