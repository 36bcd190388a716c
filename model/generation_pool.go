package model

import "sync"

// ToPool returns a generation to the pool for reuse
func ToPool[T any, PT CellPtr[T]](gen *Generation[T, PT], pool *GenerationPool[T, PT]) {
	if pool == nil || gen == nil {
		return
	}

	pool.Put(gen)
}

// GenerationPool recycles generations of one fixed size between steps
type GenerationPool[T any, PT CellPtr[T]] struct {
	width  int
	height int
	pool   sync.Pool
}

// NewGenerationPool validates the dimensions once so Get never fails
func NewGenerationPool[T any, PT CellPtr[T]](width, height int) (*GenerationPool[T, PT], error) {
	if _, err := NewGeneration[T, PT](width, height); err != nil {
		return nil, err
	}
	return &GenerationPool[T, PT]{
		width:  width,
		height: height,
		pool: sync.Pool{
			New: func() interface{} {
				return &Generation[T, PT]{
					width:  width,
					height: height,
					cells:  make([]T, width*height),
				}
			},
		},
	}, nil
}

// Get retrieves a generation with every cell dead
func (p *GenerationPool[T, PT]) Get() *Generation[T, PT] {
	return p.pool.Get().(*Generation[T, PT])
}

// Put clears a generation and returns it to the pool.
// Generations of a different size are dropped.
func (p *GenerationPool[T, PT]) Put(gen *Generation[T, PT]) {
	if gen.width != p.width || gen.height != p.height {
		return
	}
	gen.Clear()
	p.pool.Put(gen)
}
