package publication

import "sort"

// CountMetrics computes the total citation count and h-index over a set of
// per-record citation counts. The h-index is the largest 1-indexed rank i
// such that the i-th largest count is >= i (non-strict comparison).
func CountMetrics(counts []int) Metrics {
	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	var m Metrics
	for i, c := range sorted {
		if c < 0 {
			c = 0
		}
		m.TotalCitations += c
		if c >= i+1 {
			m.HIndex = i + 1
		}
	}
	return m
}

// Aggregate computes metrics over a set of publications.
func Aggregate(pubs []Publication) Metrics {
	counts := make([]int, len(pubs))
	for i, p := range pubs {
		counts[i] = p.CitationCount
	}
	return CountMetrics(counts)
}
