package engine

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// Step evaluates ruleset for every cell of cur and writes the results into next.
// cur is only read, so rows are split across workers; each worker owns its rows of next.
func Step[T any, PT model.CellPtr[T]](
	cur, next *model.Generation[T, PT],
	ruleset rules.RulesetFunc[T, PT],
) error {
	if cur == next {
		return errors.New("[Step] current and next generation must be distinct")
	}
	if cur.Width() != next.Width() || cur.Height() != next.Height() {
		return errors.Errorf("[Step] size mismatch: current %dx%d, next %dx%d",
			cur.Width(), cur.Height(), next.Width(), next.Height())
	}

	var (
		eg            errgroup.Group
		width, height = cur.Width(), cur.Height()
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < width; x++ {
					cell, ok := next.CellMut(x, y)
					if !ok {
						return errors.Errorf("[Step] no cell at (%d, %d)", x, y)
					}
					if ruleset(x, y, cur) {
						cell.Spawn()
					} else {
						cell.Kill()
					}
				}
			}
			return nil
		})
	}

	return errors.Wrap(eg.Wait(), "[Step] failed to compute next generation")
}
