package elementary

import (
	"fmt"
	"sync"

	"eca/internal/core"
	"eca/internal/rule"
)

// Step derives the next generation from cur. Each cell's neighborhood is its
// left neighbor, itself and its right neighbor, wrapping around both ends of
// the row. cur is never modified. Step panics if table is not keyed on three
// cells or if a cell holds a state outside [0, table.States()).
func Step(cur Generation, table *rule.Table) Generation {
	mustStep(cur, table)
	next := make(Generation, len(cur))
	stepRange(next, cur, table, 0, len(cur))
	return next
}

// StepParallel is Step with the cells split across up to workers goroutines.
// Its result is identical to Step.
func StepParallel(cur Generation, table *rule.Table, workers int) Generation {
	mustStep(cur, table)
	n := len(cur)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return Step(cur, table)
	}
	next := make(Generation, n)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			stepRange(next, cur, table, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return next
}

func stepRange(next, cur Generation, table *rule.Table, lo, hi int) {
	n := len(cur)
	k := table.States()
	for i := lo; i < hi; i++ {
		left := cur[core.Wrap(i-1, n)]
		center := cur[i]
		right := cur[core.Wrap(i+1, n)]
		next[i] = table.At((int(left)*k+int(center))*k + int(right))
	}
}

func mustStep(cur Generation, table *rule.Table) {
	if table.Width() != 3 {
		panic(fmt.Sprintf("elementary: table keys have %d cells, want 3", table.Width()))
	}
	for i, s := range cur {
		if int(s) >= table.States() {
			panic(fmt.Sprintf("elementary: cell %d has state %d, table has %d states", i, s, table.States()))
		}
	}
}
