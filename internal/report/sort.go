package report

import "sort"

// SortResults orders results by day and each result's parts by part number.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Day < results[j].Day
	})
	for i := range results {
		parts := results[i].Parts
		sort.SliceStable(parts, func(a, b int) bool {
			return parts[a].Part < parts[b].Part
		})
	}
}
