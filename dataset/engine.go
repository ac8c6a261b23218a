package dataset

import (
	"math"
	"runtime"
	"sync"
)

// NewEngine validates the dataset geometry and returns an Engine ready
// for Compute. data holds rows*cols scalars of the given dtype; when
// rowwise is false the buffer is row-major rows x cols, when rowwise
// is true each row is itself a D-vector (cols == D) — both layouts
// are read identically by this package, since a point's feature
// vector is always the cols contiguous cells at row i regardless of
// how the caller conceptualizes the input.
func NewEngine(data []byte, rows, cols int, rowwise bool, dtype DType, mpts int) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	if mpts < 1 || mpts > rows {
		return nil, ErrInvalidMpts
	}
	width, err := dtypeWidth(dtype)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols*width {
		return nil, ErrInvalidShape
	}

	return &Engine{
		data:         data,
		rows:         rows,
		cols:         cols,
		rowwise:      rowwise,
		dtype:        dtype,
		numNeighbors: mpts - 1,
	}, nil
}

// N reports the row count of the dataset.
func (e *Engine) N() int { return e.rows }

// Mpts reports the minimum-points parameter the engine was built
// with (numNeighbors + 1).
func (e *Engine) Mpts() int { return e.numNeighbors + 1 }

// Get returns the Euclidean distance between points i and j. Compute
// must have succeeded first.
func (e *Engine) Get(i, j int) (float64, error) {
	if e.dist == nil {
		return 0, ErrInvalidState
	}
	if i < 0 || i >= e.rows || j < 0 || j >= e.rows {
		return 0, ErrIndexOutOfRange
	}
	return e.dist.Get(i, j), nil
}

// CoreDistance returns the cached core distance of point i.
// CoreDistances must have succeeded first.
func (e *Engine) CoreDistance(i int) (float64, error) {
	if e.core == nil {
		return 0, ErrInvalidState
	}
	if i < 0 || i >= e.rows {
		return 0, ErrIndexOutOfRange
	}
	return e.core[i], nil
}

// CoreDistanceSlice exposes the full core-distance array read-only.
func (e *Engine) CoreDistanceSlice() []float64 { return e.core }

// Compute fills the packed upper triangle with Euclidean distances.
// The inner accumulation always uses a float64 accumulator, which is
// wide enough to avoid overflow for every integer dtype this package
// supports. Rows are processed by a bounded worker pool sized to
// runtime.GOMAXPROCS(0); every worker writes to disjoint cells, so no
// synchronization beyond the WaitGroup is required.
func (e *Engine) Compute() error {
	n := e.rows
	cells := n * (n - 1) / 2
	if cells < 0 {
		return ErrAllocation
	}
	dist := &Distances{n: n, cells: make([]float64, cells)}

	rowAt, err := e.rowAccessor()
	if err != nil {
		return err
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			ri := rowAt(i)
			for j := i + 1; j < n; j++ {
				rj := rowAt(j)
				var acc float64
				for c := 0; c < e.cols; c++ {
					d := ri[c] - rj[c]
					acc += d * d
				}
				dist.set(i, j, math.Sqrt(acc))
			}
		}()
	}
	wg.Wait()

	e.dist = dist
	return nil
}
