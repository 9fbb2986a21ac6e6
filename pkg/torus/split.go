package torus

import "golang.org/x/sync/errgroup"

// Split calls fn over [0,n) in at most workers contiguous ranges and waits for
// all of them. fn must only write to indices inside its own range.
func Split(workers, n int, fn func(lo, hi int)) {
	if workers <= 1 || n < 2*workers {
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
