package fenwick

import "fmt"

// Tree represents a fixed-size list of numbers with support for
// efficient point updates and prefix sums. Positions are 1-based.
// The zero value is an empty tree.
type Tree[T Number] struct {
	// The tree slice stores range sums of an underlying list a.
	// Slot i holds a[i-lowbit(i)+1] + … + a[i]; slot 0 is unused and
	// always zero. To compute the prefix sum a[1] + … + a[k], add the
	// slots obtained by repeatedly clearing the lowest set bit of k.
	//
	// For example, 7 is 111₂, so the slots 111₂, 110₂ and 100₂ are
	// added; they contain a[7], a[5] + a[6] and a[1] + … + a[4].
	//
	tree []T
}

// New creates a tree holding the given elements. The element at
// values[i] is found at position i+1. The slice is copied.
func New[T Number](values ...T) *Tree[T] {
	n := len(values)
	t := make([]T, n+1)
	copy(t[1:], values)
	for i := 1; i <= n; i++ {
		if j := i + lowbit(i); j <= n {
			t[j] += t[i]
		}
	}
	return &Tree[T]{
		tree: t,
	}
}

// Make creates a tree of size elements, all zero.
//
// Size must be a value greater or equal to 0, will panic otherwise.
func Make[T Number](size int) *Tree[T] {
	if size < 0 {
		panic("Size should be >= 0")
	}
	return &Tree[T]{
		tree: make([]T, size+1),
	}
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if len(t.tree) == 0 {
		return 0
	}
	return len(t.tree) - 1
}

// Add adds delta to the element at position index and returns the
// tree. It does nothing if index is outside [1, Len()].
func (t *Tree[T]) Add(index int, delta T) *Tree[T] {
	if index <= 0 {
		return t
	}
	for n := t.Len(); index <= n; index += lowbit(index) {
		t.tree[index] += delta
	}
	return t
}

// Sum returns the sum of the elements from position 1 to index,
// inclusive. It returns 0 if index is outside [1, Len()].
func (t *Tree[T]) Sum(index int) T {
	var sum T
	if index <= 0 || index > t.Len() {
		return sum
	}
	for ; index > 0; index -= lowbit(index) {
		sum += t.tree[index]
	}
	return sum
}

// RangeSum returns Sum(to) - Sum(from-1), the sum of the elements from
// position from to position to, inclusive, when 1 <= from <= to <= Len().
//
// Other arguments are not rejected: the same formula is evaluated with
// the bounds rules of Sum, so an inverted range yields the negated sum
// of the gap and a range ending past Len() yields -Sum(from-1).
func (t *Tree[T]) RangeSum(from, to int) T {
	return t.Sum(to) - t.Sum(from-1)
}

// Total returns the sum of all elements.
func (t *Tree[T]) Total() T {
	return t.Sum(t.Len())
}

// Get returns the element at position index, or 0 if index is outside
// [1, Len()].
func (t *Tree[T]) Get(index int) T {
	var v T
	if index <= 0 || index > t.Len() {
		return v
	}
	// Slot index covers its own element plus the ranges of its
	// children, which are reached from index-1 down to the start of
	// its canonical range.
	v = t.tree[index]
	stop := index - lowbit(index)
	for j := index - 1; j > stop; j -= lowbit(j) {
		v -= t.tree[j]
	}
	return v
}

// Set sets the element at position index to value and returns the
// tree. It does nothing if index is outside [1, Len()].
func (t *Tree[T]) Set(index int, value T) *Tree[T] {
	if index <= 0 || index > t.Len() {
		return t
	}
	return t.Add(index, value-t.Get(index))
}

// Values returns a copy of the elements, the element at position i
// being stored at values[i-1].
func (t *Tree[T]) Values() []T {
	n := t.Len()
	if n == 0 {
		return []T{}
	}
	a := append([]T{}, t.tree...)
	for i := n; i > 0; i-- {
		if j := i + lowbit(i); j <= n {
			a[j] -= a[i]
		}
	}
	return a[1:]
}

// Clone returns an independent copy of the tree.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		tree: append([]T{}, t.tree...),
	}
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("Fenwick<size=%d, total=%v>", t.Len(), t.Total())
}
