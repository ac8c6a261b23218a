package extract

import (
	"math"
	"sort"
)

// Distancer supplies pairwise distances between point indices, letting
// this package reuse dataset.Engine without importing it directly.
type Distancer interface {
	Get(i, j int) (float64, error)
}

// CreateClusterMap groups point indices [begin,end) of labels by the
// label each one carries, per spec.md §4.6.
func CreateClusterMap(labels []int, begin, end int) map[int][]int {
	clusterMap := make(map[int][]int, end-begin)
	for i := begin; i < end; i++ {
		lbl := labels[i]
		clusterMap[lbl] = append(clusterMap[lbl], i)
	}

	return clusterMap
}

// GetMinMaxDistances computes, for every cluster in clusterMap, the
// min/max core distance among its members and the min/max pairwise
// intra-cluster distance between its members. Zero-valued distances
// are excluded from the running minimum (a coincident pair shouldn't
// collapse the minimum to zero).
func GetMinMaxDistances(clusterMap map[int][]int, coreDistances []float64, dist Distancer) (map[int]*DistanceValues, error) {
	distanceMap := make(map[int]*DistanceValues, len(clusterMap))

	for label, members := range clusterMap {
		dv := &DistanceValues{
			MinCoreDistance:  coreDistances[members[0]],
			MaxCoreDistance:  coreDistances[members[0]],
			MinIntraDistance: math.MaxFloat64,
			MaxIntraDistance: 0,
		}

		for i, p := range members {
			cd := coreDistances[p]
			if cd != 0 && cd < dv.MinCoreDistance {
				dv.MinCoreDistance = cd
			}
			if cd > dv.MaxCoreDistance {
				dv.MaxCoreDistance = cd
			}

			for _, q := range members[i+1:] {
				d, err := dist.Get(p, q)
				if err != nil {
					return nil, err
				}
				if d != 0 && d < dv.MinIntraDistance {
					dv.MinIntraDistance = d
				}
				if d > dv.MaxIntraDistance {
					dv.MaxIntraDistance = d
				}
			}
		}

		distanceMap[label] = dv
	}

	return distanceMap, nil
}

// computeMoments derives mean/max/variance/stdev/skewness/kurtosis over
// a slice of per-cluster max/min ratios, following the spreadsheet
// formulation (matching Excel's SKEW/KURT) rather than the GSL one;
// the GSL and SKEW/KURT formulas disagree only in the bias-correction
// coefficients. Skewness needs at least 2 ratios, kurtosis at least 3;
// below that the original emits 0.0/0.0, reproduced here as NaN.
func computeMoments(ratios []float64) momentSummary {
	n := len(ratios)
	var m momentSummary
	if n == 0 {
		m.Skew, m.Kurt = math.NaN(), math.NaN()
		return m
	}
	nf := float64(n)

	m.Max = ratios[0]
	sum := 0.0
	for _, r := range ratios {
		if r > m.Max {
			m.Max = r
		}
		sum += r
	}
	m.Mean = sum / nf

	var sumSq, sum3, sum4 float64
	for _, r := range ratios {
		d := r - m.Mean
		sumSq += d * d
		sum3 += d * d * d
		sum4 += d * d * d * d
	}
	m.Variance = sumSq / (nf - 1)
	m.Stdev = math.Sqrt(m.Variance)

	if n >= 2 {
		tmp1 := nf / ((nf - 1) * (nf - 2))
		m.Skew = tmp1 * (sum3 / math.Pow(m.Stdev, 3))
	} else {
		m.Skew = math.NaN()
	}

	if n >= 3 {
		tmp2 := (nf * (nf + 1)) / ((nf - 1) * (nf - 2) * (nf - 3))
		tmp3 := 3 * (nf - 1) * (nf - 1) / ((nf - 2) * (nf - 3))
		m.Kurt = tmp2*(sum4/math.Pow(m.Stdev, 4)) - tmp3
	} else {
		m.Kurt = math.NaN()
	}

	return m
}

// CalculateStats derives ClusteringStats from the max/min distance
// ratio of every cluster in distanceMap, and fills in each cluster's
// CrConfidence/DrConfidence in place (percentage distance from the
// worst ratio observed).
func CalculateStats(distanceMap map[int]*DistanceValues) ClusteringStats {
	keys := sortedIntKeys(distanceMap)
	cr := make([]float64, len(keys))
	dr := make([]float64, len(keys))
	for i, k := range keys {
		dv := distanceMap[k]
		cr[i] = dv.MaxCoreDistance / dv.MinCoreDistance
		dr[i] = dv.MaxIntraDistance / dv.MinIntraDistance
	}

	stats := ClusteringStats{
		Core:  computeMoments(cr),
		Intra: computeMoments(dr),
	}

	for i, k := range keys {
		dv := distanceMap[k]
		dv.CrConfidence = ((stats.Core.Max - cr[i]) / stats.Core.Max) * 100
		dv.DrConfidence = ((stats.Intra.Max - dr[i]) / stats.Intra.Max) * 100
	}

	return stats
}

// AnalyseStats scores clustering validity in [-2, 4]: the intra-cluster
// distance ratios are judged first, then the core distance ratios, each
// contributing 2 (right-skewed and leptokurtic, the well-separated
// shape), 1, 0, or -1.
func AnalyseStats(stats ClusteringStats) int {
	return scoreMoments(stats.Intra) + scoreMoments(stats.Core)
}

func scoreMoments(m momentSummary) int {
	switch {
	case m.Skew > 0 && m.Kurt > 0:
		return 2
	case m.Skew < 0 && m.Kurt > 0:
		return 1
	case m.Skew > 0 && m.Kurt < 0:
		return 0
	default:
		return -1
	}
}

// SortBySimilarity orders cluster labels ascending by confidence
// (core-distance confidence if useCoreDistance, else intra-distance
// confidence). An empty clusters slice sorts every label in
// distanceMap instead of a caller-supplied subset.
func SortBySimilarity(distanceMap map[int]*DistanceValues, clusters []int, useCoreDistance bool) []int {
	if len(clusters) == 0 {
		clusters = sortedIntKeys(distanceMap)
	} else {
		clusters = append([]int(nil), clusters...)
	}

	confidence := func(label int) float64 {
		dv := distanceMap[label]
		if useCoreDistance {
			return dv.CrConfidence
		}
		return dv.DrConfidence
	}
	sort.Slice(clusters, func(i, j int) bool {
		return confidence(clusters[i]) < confidence(clusters[j])
	})

	return clusters
}

// SortByLength orders cluster labels ascending by member count. An
// empty clusters slice sorts every label in clusterMap.
func SortByLength(clusterMap map[int][]int, clusters []int) []int {
	if len(clusters) == 0 {
		clusters = sortedIntKeysSlice(clusterMap)
	} else {
		clusters = append([]int(nil), clusters...)
	}

	sort.Slice(clusters, func(i, j int) bool {
		return len(clusterMap[clusters[i]]) < len(clusterMap[clusters[j]])
	})

	return clusters
}

func sortedIntKeys(m map[int]*DistanceValues) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedIntKeysSlice(m map[int][]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
