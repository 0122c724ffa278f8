// Package fenwick provides a list of numbers supporting efficient
// point updates and prefix sums.
//
// A Fenwick tree, or binary indexed tree, stores the list as a flat
// 1-based array of range sums. Slot i holds the sum of the lowbit(i)
// elements ending at position i, where lowbit(i) = i & -i is the value
// of the lowest set bit of i. Both updating an element and computing a
// prefix sum touch at most one slot per bit of the index, so both run in
// O(log n) time while using the same amount of memory as the list itself.
//
// For example, the sum of the first 13 elements is computed from three
// slots: 13 is 1101₂, so slots 1101₂, 1100₂ and 1000₂ are added; they
// hold the ranges 13..13, 9..12 and 1..8, respectively. Adding a value
// to position 5 (0101₂) walks the other way, updating slots 0101₂,
// 0110₂ and 1000₂, the only ranges that cover position 5.
//
// Indices passed to a Tree are 1-based. Indices outside [1, Len()] are
// tolerated rather than rejected: updates become no-ops and sums are
// zero.
//
// A Tree is not safe for concurrent use when one of the goroutines
// modifies it.
package fenwick
