// Package parallel provides the fork-join helper used by every frame phase.
package parallel

import "golang.org/x/sync/errgroup"

// For splits [0, n) into at most workers contiguous ranges and calls fn on
// each range from its own goroutine. It returns only after every call has
// returned, so a call to For is a full barrier between phases.
//
// With workers <= 1 (or n small enough for a single range) fn runs on the
// calling goroutine.
func For(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// Each calls fn(i) for every i in [0, n), fanned out like For.
func Each(n, workers int, fn func(i int)) {
	For(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}
