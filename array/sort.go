package array

import (
	"cmp"
	"slices"
)

// Sort returns a new Array with the elements in ascending order.
func Sort[T cmp.Ordered](a Array[T]) Array[T] {
	return a.SortWith(cmp.Compare[T])
}

// SortBy returns a new Array ordered by comparing the keys derived from
// each element. The sort is stable: elements with equal keys keep their
// original relative order.
func SortBy[T any, K cmp.Ordered](a Array[T], key func(T) K) Array[T] {
	return a.SortWith(func(x, y T) int { return cmp.Compare(key(x), key(y)) })
}

// SortWith returns a new Array ordered by the given comparison function,
// which must report a negative value when x sorts before y. The sort is
// stable. The elements are flattened, sorted, and repacked into a dense
// tree; the tree shape has no efficient in-place permutation.
func (a Array[T]) SortWith(compare func(T, T) int) Array[T] {
	if a.count <= 1 {
		return a
	}
	s := a.ToSlice()
	slices.SortStableFunc(s, compare)
	return FromSlice(s)
}
