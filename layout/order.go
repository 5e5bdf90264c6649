package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mrj0/vinyl/internal/match"
)

var errCycle = errors.New("cycle detected")

// topoSort returns node indices so that every node comes after its
// dependencies. depsFn(i) yields the indices i depends on.
//
// The result is deterministic: when multiple nodes are available, the
// smallest index goes first. On a cycle the nodes that could be ordered are
// returned together with errCycle.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// keep ready sorted
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return order, errCycle
	}

	return order, nil
}

// recordIndex maps lower-cased record names to their first position in the file.
func recordIndex(records []RecordDef) map[string]int {
	index := make(map[string]int, len(records))
	for i, rd := range records {
		key := match.LowerName(rd.Name)
		if _, ok := index[key]; !ok && key != "" {
			index[key] = i
		}
	}

	return index
}

// buildOrder orders records so that each comes after the record it extends.
// Unknown parents are ignored here; Validate reports them.
func buildOrder(records []RecordDef) ([]int, error) {
	index := recordIndex(records)

	return topoSort(len(records), func(i int) []int {
		if records[i].Extends == "" {
			return nil
		}
		if p, ok := index[match.LowerName(records[i].Extends)]; ok {
			return []int{p}
		}

		return nil
	})
}
