// Package elite selects the best-performing simulation records from a
// result table: the single maximum-fitness record ("Adam") and the
// descending top-K elite subset used for the zoomed landscape view.
package elite

import (
	"fmt"
	"math"
	"sort"

	"github.com/universo-sim/cosmoscope/internal/dataset"
)

// Best returns the row index of the record with maximum fitness.
//
// Ties break to the first such row in table order: fitness values are
// high-precision doubles, so exact ties are rare, but when they happen
// the argmax is deterministic and order-preserving. NaN fitness values
// never win.
func Best(t *dataset.Table, column string) (int, error) {
	vals := t.Column(column)
	if vals == nil {
		return 0, fmt.Errorf("fitness column %q not present", column)
	}

	best := -1
	bestVal := 0.0
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if best == -1 || v > bestVal {
			best = i
			bestVal = v
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("no records to select from")
	}
	return best, nil
}

// TopK returns a new table with the top-k records by descending
// fitness. The sort is stable, so equal-fitness records keep their
// original relative order, matching the Best tie-break pairwise.
// The result has min(k, len) rows; the input table is unchanged.
//
// NaN fitness values sort last in their original order, as pandas
// does: NaN compares false against everything, so letting it into the
// comparator would make the ordering invalid for every row.
func TopK(t *dataset.Table, column string, k int) *dataset.Table {
	vals := t.Column(column)
	idx := make([]int, 0, len(vals))
	var nans []int
	for i, v := range vals {
		if math.IsNaN(v) {
			nans = append(nans, i)
			continue
		}
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return vals[idx[a]] > vals[idx[b]]
	})
	idx = append(idx, nans...)

	if k > len(idx) {
		k = len(idx)
	}
	if k < 0 {
		k = 0
	}
	return t.Select(idx[:k])
}

// Range returns the minimum and maximum of a column, skipping NaN.
// The elite subset's own range (not the full table's) scales the
// zoomed elite view.
func Range(t *dataset.Table, column string) (min, max float64) {
	first := true
	for _, v := range t.Column(column) {
		if math.IsNaN(v) {
			continue
		}
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
