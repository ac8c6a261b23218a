package hdbscan_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/katalvlaran/hdbscan"
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

func TestNewEngine_RejectsBadMpts(t *testing.T) {
	t.Parallel()

	_, err := hdbscan.NewEngine(0)
	assert.ErrorIs(t, err, hdbscan.ErrInvalidMpts)
}

func TestEngine_Rerun_BeforeRun(t *testing.T) {
	t.Parallel()

	e, err := hdbscan.NewEngine(3)
	require.NoError(t, err)
	assert.ErrorIs(t, e.Rerun(2), hdbscan.ErrNotInitialized)
}

// TestEngine_TwoWellSeparatedGroups reproduces spec.md §8 scenario 3:
// N=6, D=1, {0,1,2,100,101,102}, mpts=2.
func TestEngine_TwoWellSeparatedGroups(t *testing.T) {
	t.Parallel()

	vals := []float64{0, 1, 2, 100, 101, 102}
	data := float64Bytes(vals)

	e, err := hdbscan.NewEngine(2)
	require.NoError(t, err)
	require.NoError(t, e.Run(data, len(vals), 1, false, dataset.Float64))

	labels := e.Labels()
	require.Len(t, labels, 6)
	assert.NotEqual(t, 0, labels[0])
	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[1], labels[2])
	assert.NotEqual(t, 0, labels[3])
	assert.Equal(t, labels[3], labels[4])
	assert.Equal(t, labels[4], labels[5])
	assert.NotEqual(t, labels[0], labels[3])

	for _, sc := range e.OutlierScores() {
		assert.GreaterOrEqual(t, sc.Score, 0.0)
		assert.LessOrEqual(t, sc.Score, 1.0)
	}
}

// TestEngine_DuplicatePointsFlagInfiniteStability reproduces spec.md
// §8 scenario 4: N=10 identical points, mpts=3.
func TestEngine_DuplicatePointsFlagInfiniteStability(t *testing.T) {
	t.Parallel()

	vals := make([]float64, 10)
	data := float64Bytes(vals)

	e, err := hdbscan.NewEngine(3)
	require.NoError(t, err)
	require.NoError(t, e.Run(data, len(vals), 1, false, dataset.Float64))

	assert.True(t, e.InfiniteStability())

	labels := e.Labels()
	seen := map[int]bool{}
	for _, l := range labels {
		seen[l] = true
	}
	assert.LessOrEqual(t, len(seen), 2, "all points must share one label or all be noise")
}

// TestEngine_LinearChainFormsOneCluster reproduces spec.md §8
// scenario 5: values 0..19, mpts=3.
func TestEngine_LinearChainFormsOneCluster(t *testing.T) {
	t.Parallel()

	vals := make([]float64, 20)
	for i := range vals {
		vals[i] = float64(i)
	}
	data := float64Bytes(vals)

	e, err := hdbscan.NewEngine(3)
	require.NoError(t, err)
	require.NoError(t, e.Run(data, len(vals), 1, false, dataset.Float64))

	labels := e.Labels()
	nonNoise := map[int]bool{}
	for _, l := range labels {
		if l != 0 {
			nonNoise[l] = true
		}
	}
	assert.LessOrEqual(t, len(nonNoise), 1, "a uniform-density chain should not split")
}

func TestEngine_RerunRoundTripIsIdentical(t *testing.T) {
	t.Parallel()

	vals := []float64{0, 1, 2, 100, 101, 102}
	data := float64Bytes(vals)

	e, err := hdbscan.NewEngine(2)
	require.NoError(t, err)
	require.NoError(t, e.Run(data, len(vals), 1, false, dataset.Float64))
	labelsBefore := append([]int(nil), e.Labels()...)

	require.NoError(t, e.Rerun(2))
	assert.Equal(t, labelsBefore, e.Labels())
}

func TestEngine_WriteHierarchyAndSidecar(t *testing.T) {
	t.Parallel()

	vals := []float64{0, 1, 2, 100, 101, 102}
	data := float64Bytes(vals)

	e, err := hdbscan.NewEngine(2)
	require.NoError(t, err)
	require.NoError(t, e.Run(data, len(vals), 1, false, dataset.Float64))

	var hierarchyBuf bytes.Buffer
	require.NoError(t, e.WriteHierarchy(&hierarchyBuf))
	assert.Contains(t, hierarchyBuf.String(), ",")
	assert.True(t, bytes.HasSuffix(hierarchyBuf.Bytes(), []byte("\n")))

	var sidecarBuf bytes.Buffer
	require.NoError(t, e.WriteVisualizationSidecar(&sidecarBuf))
	assert.Regexp(t, `^1\n\d+\n$`, sidecarBuf.String())
}

func TestFindPrimeLessThan(t *testing.T) {
	t.Parallel()

	cases := map[int]int{10: 7, 29: 29, 93: 89}
	for k, want := range cases {
		assert.Equal(t, want, hdbscan.FindPrimeLessThan(k), "k=%d", k)
	}
}
