package hdbscan

import (
	"github.com/katalvlaran/hdbscan/clustertree"
	"github.com/katalvlaran/hdbscan/dataset"
	"github.com/katalvlaran/hdbscan/extract"
	"github.com/katalvlaran/hdbscan/mst"
	"github.com/katalvlaran/hdbscan/propagate"
)

// Engine drives run/rerun over one dataset and holds every
// read-only result the four-stage pipeline produces. The zero value
// is not usable; construct with NewEngine.
type Engine struct {
	mpts int

	ds *dataset.Engine
	n  int

	tree              *clustertree.Tree
	infiniteStability bool

	labels        []int
	outlierScores []extract.OutlierScore

	clusterMap  map[int][]int
	distanceMap map[int]*extract.DistanceValues
	stats       extract.ClusteringStats
	validity    int
}

// NewEngine allocates an Engine for the given minimum-points
// parameter. Run must be called before any accessor is meaningful.
func NewEngine(mpts int) (*Engine, error) {
	if mpts < 1 {
		return nil, ErrInvalidMpts
	}
	return &Engine{mpts: mpts}, nil
}

// Run computes pairwise distances and core distances over dataset,
// then builds the MST, cluster tree, propagated stability, flat
// labels, outlier scores, and validity statistics. dataset holds
// rows*cols scalars of dtype; see dataset.NewEngine for the rowwise
// layout convention.
func (e *Engine) Run(data []byte, rows, cols int, rowwise bool, dtype dataset.DType) error {
	ds, err := dataset.NewEngine(data, rows, cols, rowwise, dtype, e.mpts)
	if err != nil {
		return err
	}
	if err := ds.Compute(); err != nil {
		return err
	}
	if err := ds.CoreDistances(); err != nil {
		return err
	}

	e.ds = ds
	e.n = rows
	return e.buildFrom(ds)
}

// Rerun rebuilds the cluster tree for a new mpts, reusing the
// pairwise distances already cached by a prior Run. It fails with
// ErrNotInitialized if Run has not yet succeeded.
func (e *Engine) Rerun(newMpts int) error {
	if e.ds == nil {
		return ErrNotInitialized
	}
	if newMpts < 1 {
		return ErrInvalidMpts
	}
	if err := e.ds.RerunCoreOnly(newMpts); err != nil {
		return err
	}
	e.mpts = newMpts
	return e.buildFrom(e.ds)
}

// buildFrom runs the MST-through-extraction tail of the pipeline
// against ds's already-computed distances and core distances.
func (e *Engine) buildFrom(ds *dataset.Engine) error {
	core := ds.CoreDistanceSlice()

	g, err := mst.Build(core, ds, e.n, true)
	if err != nil {
		return err
	}

	builder, err := clustertree.NewBuilder(e.mpts, e.n)
	if err != nil {
		return err
	}
	tree, err := builder.Run(g)
	if err != nil {
		return err
	}

	infiniteStability := propagate.Propagate(tree)

	labels, scores := extract.Labels(tree, core)

	clusterMap := extract.CreateClusterMap(labels, 0, e.n)
	distanceMap, err := extract.GetMinMaxDistances(clusterMap, core, ds)
	if err != nil {
		return err
	}
	stats := extract.CalculateStats(distanceMap)
	validity := extract.AnalyseStats(stats)

	e.tree = tree
	e.infiniteStability = infiniteStability
	e.labels = labels
	e.outlierScores = scores
	e.clusterMap = clusterMap
	e.distanceMap = distanceMap
	e.stats = stats
	e.validity = validity
	return nil
}

// Labels returns the flat per-point cluster assignment from the last
// Run/Rerun; label 0 is noise.
func (e *Engine) Labels() []int { return e.labels }

// OutlierScores returns the per-point outlier assessment from the
// last Run/Rerun, sorted ascending by score.
func (e *Engine) OutlierScores() []extract.OutlierScore { return e.outlierScores }

// Hierarchy exposes the per-level label snapshots keyed by line
// number (0 is the terminal all-noise level).
func (e *Engine) Hierarchy() map[int64]*clustertree.HierarchyEntry {
	if e.tree == nil {
		return nil
	}
	return e.tree.Hierarchy
}

// Clusters exposes the cluster vector addressed by label
// (Clusters()[0] is always nil).
func (e *Engine) Clusters() []*clustertree.Cluster {
	if e.tree == nil {
		return nil
	}
	return e.tree.Clusters
}

// CoreDistances exposes the cached per-point core distances.
func (e *Engine) CoreDistances() []float64 {
	if e.ds == nil {
		return nil
	}
	return e.ds.CoreDistanceSlice()
}

// InfiniteStability reports whether the last Run/Rerun produced a
// cluster with +Inf stability — a non-fatal warning, typically caused
// by duplicate points collapsing a core distance to 0.
func (e *Engine) InfiniteStability() bool { return e.infiniteStability }

// ClusteringValidity returns the last computed validity score, in
// [-2, 4].
func (e *Engine) ClusteringValidity() int { return e.validity }

// ClusteringStats returns the last computed per-cluster distance
// statistics.
func (e *Engine) ClusteringStats() extract.ClusteringStats { return e.stats }
