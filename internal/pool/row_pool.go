package pool

import "sync"

// RowPool implements a pool of float64 slices used as dynamic-programming
// matrix rows, so repeated pairwise computations reuse scratch memory.
type RowPool struct {
	pool sync.Pool
	size int
}

// NewRowPool creates a new row pool with rows of the specified initial capacity.
func NewRowPool(size int) *RowPool {
	return &RowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]float64, 0, size)
				return &row
			},
		},
		size: size,
	}
}

// Get retrieves a row from the pool, grown to hold n elements.
func (rp *RowPool) Get(n int) *[]float64 {
	row := rp.pool.Get().(*[]float64)
	if cap(*row) < n {
		grown := make([]float64, n)
		row = &grown
	} else {
		*row = (*row)[:n]
	}
	return row
}

// Put returns a row to the pool for reuse
func (rp *RowPool) Put(row *[]float64) {
	// Reset length but keep capacity
	*row = (*row)[:0]
	rp.pool.Put(row)
}
