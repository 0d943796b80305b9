// Package order provides the ordering primitives shared by the sequential
// and parallel colorers: a stable permutation by key, an unstable in-place
// heapsort of parallel key/value slices, and a Fisher-Yates shuffle.
//
// Every function here is deterministic given its inputs (and, where
// randomness is involved, its *rand.Rand); none of them reach for the
// package-global RNG, so callers can reproduce a run by fixing a seed.
package order

import (
	"sort"

	"golang.org/x/exp/rand"
)

// StablePermutationByKey returns a permutation p of [0,len(keys)) such that
// keys[p[0]] <= keys[p[1]] <= ... and, for equal keys, p preserves ascending
// original index order. keys is not modified.
func StablePermutationByKey(keys []int32) []int {
	p := make([]int, len(keys))
	for i := range p {
		p[i] = i
	}
	sort.SliceStable(p, func(i, j int) bool { return keys[p[i]] < keys[p[j]] })
	return p
}

// UnstableSortPairs sorts keys ascending and permutes values in lockstep.
// The tie-break between equal keys is unspecified. Both slices are
// rearranged in place using a binary max-heap, following the classic
// heapsort-by-key scheme: build a max-heap over keys, then repeatedly swap
// the root with the last unsorted element and sift down.
func UnstableSortPairs(keys, values []int32) {
	n := len(keys)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(keys, values, i, n)
	}
	for i := n - 1; i > 0; i-- {
		keys[0], keys[i] = keys[i], keys[0]
		values[0], values[i] = values[i], values[0]
		siftDown(keys, values, 0, i)
	}
}

func siftDown(keys, values []int32, i, n int) {
	for {
		max := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && keys[left] > keys[max] {
			max = left
		}
		if right < n && keys[right] > keys[max] {
			max = right
		}
		if max == i {
			return
		}
		keys[i], keys[max] = keys[max], keys[i]
		values[i], values[max] = values[max], values[i]
		i = max
	}
}

// Shuffle permutes indices in place using a Fisher-Yates shuffle driven by
// rnd. Unlike the original, rnd is supplied by the caller rather than
// reseeded on every call, so a run is reproducible by fixing rnd's seed.
func Shuffle(indices []int32, rnd *rand.Rand) {
	rnd.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
}

// Reverse reverses s in place. Used by the LDF+ colorer to turn its
// ascending-degree permutation into descending priority order without
// materializing a second slice.
func Reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
