package dataset

import (
	"encoding/binary"
	"math"
)

// dtypeWidth returns the byte width of one scalar cell for dtype.
func dtypeWidth(dtype DType) (int, error) {
	switch dtype {
	case Int8:
		return 1, nil
	case Int16:
		return 2, nil
	case Int32, Float32:
		return 4, nil
	case Int64, Float64:
		return 8, nil
	default:
		return 0, ErrInvalidShape
	}
}

// rowAccessor returns a closure decoding row i of the dataset into a
// freshly allocated []float64 of length cols. Each call allocates its
// own slice so concurrent callers (one per outer row in Compute) never
// share mutable state.
func (e *Engine) rowAccessor() (func(i int) []float64, error) {
	width, err := dtypeWidth(e.dtype)
	if err != nil {
		return nil, err
	}
	dtype := e.dtype
	cols := e.cols
	data := e.data

	return func(i int) []float64 {
		out := make([]float64, cols)
		base := i * cols * width
		for c := 0; c < cols; c++ {
			off := base + c*width
			out[c] = decodeScalar(data[off:off+width], dtype)
		}
		return out
	}, nil
}

// decodeScalar reads one scalar of the given dtype from a little
// endian buffer of exactly the dtype's width.
func decodeScalar(b []byte, dtype DType) float64 {
	switch dtype {
	case Int8:
		return float64(int8(b[0]))
	case Int16:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case Int32:
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case Int64:
		return float64(int64(binary.LittleEndian.Uint64(b)))
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	default:
		return 0
	}
}
