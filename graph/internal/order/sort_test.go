package order

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

func TestStablePermutationByKey(t *testing.T) {
	keys := []int32{3, 1, 3, 2, 1, 0}
	perm := StablePermutationByKey(keys)

	if len(perm) != len(keys) {
		t.Fatalf("permutation length = %d, want %d", len(perm), len(keys))
	}
	seen := make([]bool, len(keys))
	for _, p := range perm {
		if p < 0 || p >= len(keys) || seen[p] {
			t.Fatalf("perm %v is not a permutation of [0,%d)", perm, len(keys))
		}
		seen[p] = true
	}

	sorted := make([]int32, len(perm))
	for i, p := range perm {
		sorted[i] = keys[p]
	}
	if !sort.SliceIsSorted(sorted, func(i, j int) bool { return sorted[i] < sorted[j] }) {
		t.Fatalf("keys not sorted under permutation: %v", sorted)
	}

	// Ties at key==1 are indices 1 and 4; ties at key==3 are indices 0 and 2.
	// Stability requires ascending original index order within each tie group.
	wantOrder := []int{5, 1, 4, 3, 0, 2}
	if diff := cmp.Diff(wantOrder, perm); diff != "" {
		t.Fatalf("permutation mismatch (-want +got):\n%s", diff)
	}
}

func TestStablePermutationByKeyEmpty(t *testing.T) {
	perm := StablePermutationByKey(nil)
	if len(perm) != 0 {
		t.Fatalf("expected empty permutation, got %v", perm)
	}
}

func TestUnstableSortPairs(t *testing.T) {
	keys := []int32{5, 3, 4, 1, 2}
	values := []int32{50, 30, 40, 10, 20}
	UnstableSortPairs(keys, values)

	if !sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }) {
		t.Fatalf("keys not sorted: %v", keys)
	}
	for i, k := range keys {
		if values[i] != k*10 {
			t.Fatalf("value %d desynced from key %d at index %d", values[i], k, i)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	indices := make([]int32, 20)
	for i := range indices {
		indices[i] = int32(i)
	}
	rnd := rand.New(rand.NewSource(42))
	Shuffle(indices, rnd)

	seen := make([]bool, len(indices))
	for _, v := range indices {
		if seen[v] {
			t.Fatalf("shuffle produced duplicate value %d", v)
		}
		seen[v] = true
	}
}

func TestShuffleReproducibleWithFixedSeed(t *testing.T) {
	run := func() []int32 {
		indices := make([]int32, 10)
		for i := range indices {
			indices[i] = int32(i)
		}
		Shuffle(indices, rand.New(rand.NewSource(7)))
		return indices
	}
	a, b := run(), run()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different shuffles (-a +b):\n%s", diff)
	}
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	Reverse(s)
	want := []int{5, 4, 3, 2, 1}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("reverse mismatch (-want +got):\n%s", diff)
	}
}

func TestReverseEmptyAndSingle(t *testing.T) {
	Reverse([]int{})
	s := []int{1}
	Reverse(s)
	if s[0] != 1 {
		t.Fatalf("single-element reverse mutated value: %v", s)
	}
}
