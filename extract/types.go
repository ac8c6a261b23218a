package extract

// OutlierScore is one point's outlier assessment: score in [0,1],
// with the sentinel 0 when its noise level epsilon is 0.
type OutlierScore struct {
	ID           int
	Score        float64
	CoreDistance float64
}

// DistanceValues holds the per-cluster min/max core and intra-cluster
// distances used by ClusteringStats.
type DistanceValues struct {
	MinCoreDistance  float64
	MaxCoreDistance  float64
	MinIntraDistance float64
	MaxIntraDistance float64
	CrConfidence     float64
	DrConfidence     float64
}

// momentSummary holds mean/max/variance/stdev/skew/kurtosis over a
// set of per-cluster ratios (max/min), for either the core or the
// intra dimension.
type momentSummary struct {
	Mean     float64
	Max      float64
	Variance float64
	Stdev    float64
	Skew     float64
	Kurt     float64
}

// ClusteringStats summarizes the quality of a clustering via the
// distribution of per-cluster max/min distance ratios, for both core
// and intra-cluster distances (spec.md §4.6).
type ClusteringStats struct {
	Core  momentSummary
	Intra momentSummary
}
