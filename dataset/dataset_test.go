package dataset_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/katalvlaran/hdbscan/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Bytes(vals []float64) []byte {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func TestNewEngine_RejectsBadShape(t *testing.T) {
	t.Parallel()

	_, err := dataset.NewEngine(nil, 0, 2, false, dataset.Float64, 1)
	assert.ErrorIs(t, err, dataset.ErrInvalidShape)

	data := float64Bytes([]float64{1, 2, 3, 4})
	_, err = dataset.NewEngine(data, 2, 2, false, dataset.Float64, 0)
	assert.ErrorIs(t, err, dataset.ErrInvalidMpts)

	_, err = dataset.NewEngine(data[:len(data)-1], 2, 2, false, dataset.Float64, 1)
	assert.ErrorIs(t, err, dataset.ErrInvalidShape)
}

// TestEngine_SymmetryAndZeroDiagonal checks the spec.md §8 invariant
// get(i,i)==0 and get(i,j)==get(j,i).
func TestEngine_SymmetryAndZeroDiagonal(t *testing.T) {
	t.Parallel()

	vals := []float64{0, 0, 3, 4, -1, -1}
	data := float64Bytes(vals)
	e, err := dataset.NewEngine(data, 3, 2, false, dataset.Float64, 2)
	require.NoError(t, err)
	require.NoError(t, e.Compute())

	for i := 0; i < 3; i++ {
		d, err := e.Get(i, i)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			dij, err := e.Get(i, j)
			require.NoError(t, err)
			dji, err := e.Get(j, i)
			require.NoError(t, err)
			assert.Equal(t, dij, dji)
		}
	}

	d01, _ := e.Get(0, 1)
	assert.InDelta(t, 5.0, d01, 1e-9) // (0,0)-(3,4): 3-4-5 triangle
}

// TestEngine_CoreDistanceIsOrderStatistic verifies coreDistance[p]
// equals the (mpts-1)-th smallest distance from p (0-indexed,
// including self=0), per spec.md §8.
func TestEngine_CoreDistanceIsOrderStatistic(t *testing.T) {
	t.Parallel()

	vals := []float64{0, 1, 2, 3, 100}
	data := float64Bytes(vals)
	const mpts = 3
	e, err := dataset.NewEngine(data, 5, 1, false, dataset.Float64, mpts)
	require.NoError(t, err)
	require.NoError(t, e.Compute())
	require.NoError(t, e.CoreDistances())

	for p := 0; p < 5; p++ {
		dists := make([]float64, 0, 5)
		for q := 0; q < 5; q++ {
			d, _ := e.Get(p, q)
			dists = append(dists, d)
		}
		sortedCopy := append([]float64(nil), dists...)
		for i := 0; i < len(sortedCopy); i++ {
			for j := i + 1; j < len(sortedCopy); j++ {
				if sortedCopy[j] < sortedCopy[i] {
					sortedCopy[i], sortedCopy[j] = sortedCopy[j], sortedCopy[i]
				}
			}
		}
		want := sortedCopy[mpts-1]
		got, err := e.CoreDistance(p)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "point %d", p)
	}
}

func TestEngine_RerunCoreOnlyReusesDistances(t *testing.T) {
	t.Parallel()

	vals := []float64{0, 1, 2, 5, 10, 20}
	data := float64Bytes(vals)
	e, err := dataset.NewEngine(data, 6, 1, false, dataset.Float64, 2)
	require.NoError(t, err)
	require.NoError(t, e.Compute())
	require.NoError(t, e.CoreDistances())

	before, err := e.Get(1, 4)
	require.NoError(t, err)

	require.NoError(t, e.RerunCoreOnly(4))
	after, err := e.Get(1, 4)
	require.NoError(t, err)
	assert.Equal(t, before, after, "rerun must not touch cached pairwise distances")

	core, err := e.CoreDistance(0)
	require.NoError(t, err)
	assert.Greater(t, core, 0.0)
}

func TestEngine_IntegerDtypesDoNotOverflow(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 4*4)
	binary.LittleEndian.PutUint32(buf[0:], uint32(int32(-2000000000)))
	binary.LittleEndian.PutUint32(buf[4:], uint32(int32(2000000000)))
	binary.LittleEndian.PutUint32(buf[8:], uint32(int32(0)))
	binary.LittleEndian.PutUint32(buf[12:], uint32(int32(1)))

	e, err := dataset.NewEngine(buf, 4, 1, false, dataset.Int32, 2)
	require.NoError(t, err)
	require.NoError(t, e.Compute())

	d, err := e.Get(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4000000000.0, d, 1e-6)
}
