package fenwick

import "math/bits"

// Search returns the smallest position i in [0, Len()] such that
// Sum(i) >= target, taking Sum(0) to be 0. It returns Len()+1 if no
// prefix sum reaches target.
//
// The prefix sums must be non-decreasing, which holds when no element
// is negative; the result is unspecified otherwise.
func (t *Tree[T]) Search(target T) int {
	var acc T
	if target <= acc {
		return 0
	}
	n := t.Len()
	if n == 0 {
		return 1
	}
	// Descend the implicit tree from the largest power of two that
	// fits, keeping pos as the longest prefix whose sum is < target.
	pos := 0
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		if next := pos + step; next <= n && acc+t.tree[next] < target {
			pos = next
			acc += t.tree[next]
		}
	}
	return pos + 1
}
