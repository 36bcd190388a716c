package model

// Cell is the capability set the grid and rulesets rely on.
// The zero value of a Cell implementation must be dead.
type Cell interface {
	IsAlive() bool
	Spawn()
	Kill()
}

// CellPtr constrains PT to a pointer to T implementing Cell, so a Generation
// can store values while still calling the mutating methods in place.
type CellPtr[T any] interface {
	*T
	Cell
}

type cellState uint8

const (
	dead cellState = iota
	alive
)

// SimpleCell is the default two-state Cell
type SimpleCell struct {
	state cellState
}

// NewSimpleCell creates a cell alive or dead
func NewSimpleCell(isAlive bool) SimpleCell {
	if isAlive {
		return SimpleCell{state: alive}
	}
	return SimpleCell{state: dead}
}

func (c SimpleCell) IsAlive() bool { return c.state == alive }

func (c *SimpleCell) Spawn() { c.state = alive }

func (c *SimpleCell) Kill() { c.state = dead }

func (c SimpleCell) String() string {
	if c.IsAlive() {
		return "alive"
	}
	return "dead"
}
