package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Populations below this size are stepped on the calling goroutine; the
// shard bookkeeping costs more than it saves.
const parallelThreshold = 2048

// Step computes the next generation. The input is read-only for the duration
// of the call and is returned to the caller untouched; the result is always a
// freshly allocated set. Step is a pure function of its input: same
// population in, same population out, every time.
//
// Only cells that could possibly change state are visited: every live cell
// and its 8 neighbors. Work is therefore proportional to the live population,
// never to the extent of the plane.
func Step(current CellSet) CellSet {
	cands := candidates(current)
	if len(cands) < parallelThreshold {
		next := CellSet{cells: make(map[Coord]struct{}, len(current.cells))}
		for _, c := range cands {
			if survives(current, c) {
				next.add(c)
			}
		}
		return next
	}
	return stepParallel(current, cands)
}

// StepN applies Step n times and returns the final generation.
func StepN(current CellSet, n int) CellSet {
	for i := 0; i < n; i++ {
		current = Step(current)
	}
	return current
}

// survives applies the standard B3/S23 rule to one candidate.
func survives(current CellSet, c Coord) bool {
	count := current.NeighborCount(c)
	if current.Contains(c) {
		return count == 2 || count == 3
	}
	return count == 3
}

// candidates collects every coord whose state can change this generation:
// the union of each live cell with its neighborhood. Repeated proposals
// collapse on insertion, so each candidate is evaluated exactly once.
func candidates(current CellSet) []Coord {
	seen := make(map[Coord]struct{}, len(current.cells)*4)
	for c := range current.cells {
		for _, k := range c.SelfAndNeighbors() {
			seen[k] = struct{}{}
		}
	}
	out := make([]Coord, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

// stepParallel fans candidate evaluation out over one worker per CPU. Each
// worker reads the shared snapshot and writes its survivors to a private set,
// so no synchronization happens during evaluation; the private sets are
// unioned once all workers finish. Evaluation order is immaterial, so the
// arbitrary sharding cannot affect the result.
func stepParallel(current CellSet, candidates []Coord) CellSet {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(candidates) {
		workers = len(candidates)
	}

	locals := make([]map[Coord]struct{}, workers)
	chunk := (len(candidates) + workers - 1) / workers

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(candidates) {
			hi = len(candidates)
		}
		shard := candidates[lo:hi]
		local := make(map[Coord]struct{}, len(shard)/2)
		locals[i] = local
		g.Go(func() error {
			for _, c := range shard {
				if survives(current, c) {
					local[c] = struct{}{}
				}
			}
			return nil
		})
	}
	g.Wait()

	next := CellSet{cells: make(map[Coord]struct{}, len(current.cells))}
	for _, local := range locals {
		for c := range local {
			next.add(c)
		}
	}
	return next
}
