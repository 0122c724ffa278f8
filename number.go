package fenwick

import "golang.org/x/exp/constraints"

// Number is the set of element types a Tree can aggregate.
type Number interface {
	constraints.Integer | constraints.Float
}

// lowbit returns the value of the lowest set bit of i.
func lowbit(i int) int {
	return i & -i
}
