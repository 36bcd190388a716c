package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// historySize is how many previous layouts are kept for cycle detection
const historySize = 5

// Simulation advances a generation with a ruleset, swapping in a fresh
// generation on every step
type Simulation[T any, PT model.CellPtr[T]] struct {
	current    *model.Generation[T, PT]
	pool       *model.GenerationPool[T, PT]
	ruleset    rules.RulesetFunc[T, PT]
	generation int
	history    []string // hashes of recent generations, oldest first
}

// NewSimulation creates a simulation over a dead width x height generation.
// With usePool, replaced generations are recycled instead of reallocated.
func NewSimulation[T any, PT model.CellPtr[T]](
	width, height int,
	ruleset rules.RulesetFunc[T, PT],
	usePool bool,
) (*Simulation[T, PT], error) {
	if ruleset == nil {
		return nil, errors.New("[NewSimulation] ruleset is required")
	}

	current, err := model.NewGeneration[T, PT](width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to create generation")
	}

	s := &Simulation[T, PT]{
		current: current,
		ruleset: ruleset,
	}
	if usePool {
		if s.pool, err = model.NewGenerationPool[T, PT](width, height); err != nil {
			return nil, errors.Wrap(err, "[NewSimulation] failed to create pool")
		}
	}
	return s, nil
}

// NewConwaySimulation creates a SimpleCell simulation using Conway's rules
func NewConwaySimulation(width, height int, usePool bool) (*Simulation[model.SimpleCell, *model.SimpleCell], error) {
	conway := rules.ApplyConwayRuleset[model.SimpleCell, *model.SimpleCell]
	return NewSimulation[model.SimpleCell, *model.SimpleCell](width, height, conway, usePool)
}

// Current returns the generation being displayed. It is replaced on Advance.
func (s *Simulation[T, PT]) Current() *model.Generation[T, PT] {
	return s.current
}

// Generation returns how many steps have been taken since the last reset
func (s *Simulation[T, PT]) Generation() int {
	return s.generation
}

// Advance computes the next generation and swaps it in
func (s *Simulation[T, PT]) Advance() error {
	var (
		next *model.Generation[T, PT]
		err  error
	)
	if s.pool != nil {
		next = s.pool.Get()
	} else if next, err = model.NewGeneration[T, PT](s.current.Width(), s.current.Height()); err != nil {
		return errors.Wrap(err, "[Advance] failed to allocate generation")
	}

	if err = Step(s.current, next, s.ruleset); err != nil {
		model.ToPool(next, s.pool)
		return errors.Wrapf(err, "[Advance] generation %d", s.generation)
	}

	s.updateHistory()
	model.ToPool(s.current, s.pool)
	s.current = next
	s.generation++
	return nil
}

// updateHistory records the current layout and keeps only the last historySize
func (s *Simulation[T, PT]) updateHistory() {
	s.history = append(s.history, s.current.Hash())
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the current layout repeats one of the last three,
// i.e. the board is a still life or an oscillator of period 2 or 3
func (s *Simulation[T, PT]) IsStagnant() bool {
	currentHash := s.current.Hash()
	for i := 1; i <= 3 && i <= len(s.history); i++ {
		if s.history[len(s.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// Reset kills every cell and forgets the history
func (s *Simulation[T, PT]) Reset() {
	s.current.Clear()
	s.history = nil
	s.generation = 0
}
