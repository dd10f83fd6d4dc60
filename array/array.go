package array

// Array is a persistent immutable ordered sequence.
// Operations return new Array values; the original is never modified.
// Derived values share unmodified subtrees with their source, which makes
// every Array safe for concurrent reads without synchronization.
//
// The zero value is the empty Array.
type Array[T any] struct {
	count int
	root  *node[T] // nil while all elements fit in the tail
	tail  []T      // trailing 1..branchFactor elements; empty only when count == 0
}

// New creates an empty Array.
func New[T any]() Array[T] {
	return Array[T]{}
}

// Singleton creates an Array holding a single element.
func Singleton[T any](v T) Array[T] {
	return Array[T]{count: 1, tail: []T{v}}
}

// FromSlice creates an Array from a slice. The slice is copied.
func FromSlice[T any](s []T) Array[T] {
	var b builder[T]
	for _, v := range s {
		b.push(v)
	}
	return b.build()
}

// Initialize creates an Array of n elements where element i is
// f(offset + i). Returns the empty Array if n <= 0.
func Initialize[T any](n, offset int, f func(int) T) Array[T] {
	var b builder[T]
	for i := 0; i < n; i++ {
		b.push(f(offset + i))
	}
	return b.build()
}

// Repeat creates an Array of n copies of v. Empty if n <= 0.
func Repeat[T any](n int, v T) Array[T] {
	var b builder[T]
	for i := 0; i < n; i++ {
		b.push(v)
	}
	return b.build()
}

// Range creates an Array of the integers from from to to, inclusive.
// Empty if from > to.
func Range(from, to int) Array[int] {
	return Initialize(to-from+1, from, func(i int) int { return i })
}

// Len returns the number of elements.
func (a Array[T]) Len() int {
	return a.count
}

// IsEmpty returns true if the Array has no elements.
func (a Array[T]) IsEmpty() bool {
	return a.count == 0
}

// tailOffset returns the number of elements stored in the tree.
func (a Array[T]) tailOffset() int {
	return a.count - len(a.tail)
}

// Get returns the element at index i.
// Returns the zero value and false if i is out of range.
func (a Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= a.count {
		var zero T
		return zero, false
	}
	if off := a.tailOffset(); i >= off {
		return a.tail[i-off], true
	}
	return a.root.get(i), true
}

// First returns the first element, or false on an empty Array.
func (a Array[T]) First() (T, bool) {
	return a.Get(0)
}

// Last returns the last element, or false on an empty Array.
func (a Array[T]) Last() (T, bool) {
	if a.count == 0 {
		var zero T
		return zero, false
	}
	return a.tail[len(a.tail)-1], true
}

// Set returns a new Array with index i replaced by v, rebuilding only the
// path from the root to the affected leaf. Out-of-range indices return
// the Array unchanged.
func (a Array[T]) Set(i int, v T) Array[T] {
	if i < 0 || i >= a.count {
		return a
	}
	if off := a.tailOffset(); i >= off {
		tail := make([]T, len(a.tail))
		copy(tail, a.tail)
		tail[i-off] = v
		return Array[T]{count: a.count, root: a.root, tail: tail}
	}
	return Array[T]{count: a.count, root: a.root.set(i, v), tail: a.tail}
}

// PushLast returns a new Array with v appended.
// Amortized O(1): appends land in the tail, which is folded into the
// tree only once full.
func (a Array[T]) PushLast(v T) Array[T] {
	if len(a.tail) < branchFactor {
		tail := make([]T, len(a.tail)+1)
		copy(tail, a.tail)
		tail[len(a.tail)] = v
		return Array[T]{count: a.count + 1, root: a.root, tail: tail}
	}

	// Full tail; fold it into the tree as a leaf.
	leaf := newLeaf(a.tail)
	var root *node[T]
	if a.root == nil {
		root = leaf
	} else {
		root = pushLeafRoot(a.root, leaf)
	}
	return Array[T]{count: a.count + 1, root: root, tail: []T{v}}
}

// PushFirst returns a new Array with v prepended. O(log n): the new
// element is absorbed as a leaf at the left edge and the seam rebalanced.
func (a Array[T]) PushFirst(v T) Array[T] {
	return Singleton(v).Concat(a)
}

// PopLast removes the last element, returning it and the remaining
// Array. Returns false on an empty Array.
func (a Array[T]) PopLast() (T, Array[T], bool) {
	if a.count == 0 {
		var zero T
		return zero, Array[T]{}, false
	}

	last := a.tail[len(a.tail)-1]
	if a.count == 1 {
		return last, Array[T]{}, true
	}
	if len(a.tail) > 1 {
		tail := make([]T, len(a.tail)-1)
		copy(tail, a.tail)
		return last, Array[T]{count: a.count - 1, root: a.root, tail: tail}, true
	}

	// Tail exhausted; pull the rightmost leaf of the tree out as the new tail.
	root, leaf := popLeafRoot(a.root)
	return last, Array[T]{count: a.count - 1, root: root, tail: leaf.values}, true
}

// PopFirst removes the first element, returning it and the remaining
// Array. Returns false on an empty Array.
func (a Array[T]) PopFirst() (T, Array[T], bool) {
	first, ok := a.Get(0)
	if !ok {
		var zero T
		return zero, Array[T]{}, false
	}
	return first, a.DropFirst(1), true
}

// Slice returns the elements in the range [start, end). Negative bounds
// are offsets from the end (-1 is the last element); bounds are clamped
// into [0, Len]. If the resolved start is at or past the resolved end,
// the result is the empty Array.
func (a Array[T]) Slice(start, end int) Array[T] {
	if start < 0 {
		start += a.count
	}
	if end < 0 {
		end += a.count
	}
	start = max(start, 0)
	end = min(end, a.count)
	if start >= end {
		return Array[T]{}
	}
	return a.TakeFirst(end).DropFirst(start)
}

// TakeFirst returns the first n elements. The whole Array if n >= Len,
// empty if n <= 0.
func (a Array[T]) TakeFirst(n int) Array[T] {
	if n >= a.count {
		return a
	}
	if n <= 0 {
		return Array[T]{}
	}

	if off := a.tailOffset(); n > off {
		tail := make([]T, n-off)
		copy(tail, a.tail)
		return Array[T]{count: n, root: a.root, tail: tail}
	}

	// Trim the tree at the right boundary, then pull the rightmost leaf
	// back out as the tail.
	root, leaf := popLeafRoot(collapse(a.root.take(n)))
	return Array[T]{count: n, root: root, tail: leaf.values}
}

// TakeLast returns the last n elements. The whole Array if n >= Len,
// empty if n <= 0.
func (a Array[T]) TakeLast(n int) Array[T] {
	return a.DropFirst(a.count - n)
}

// DropFirst returns the Array without its first n elements. Unchanged if
// n <= 0, empty if n >= Len.
func (a Array[T]) DropFirst(n int) Array[T] {
	if n <= 0 {
		return a
	}
	if n >= a.count {
		return Array[T]{}
	}

	if off := a.tailOffset(); n >= off {
		tail := make([]T, a.count-n)
		copy(tail, a.tail[n-off:])
		return Array[T]{count: a.count - n, tail: tail}
	}

	return Array[T]{
		count: a.count - n,
		root:  collapse(a.root.drop(n)),
		tail:  a.tail,
	}
}

// DropLast returns the Array without its last n elements. Unchanged if
// n <= 0, empty if n >= Len.
func (a Array[T]) DropLast(n int) Array[T] {
	return a.TakeFirst(a.count - n)
}

// Concat returns a new Array holding the receiver's elements followed by
// other's. Both inputs are unchanged and share structure with the
// result; the merge allocates O(log n) nodes along the seam.
func (a Array[T]) Concat(other Array[T]) Array[T] {
	if a.count == 0 {
		return other
	}
	if other.count == 0 {
		return a
	}

	if a.root == nil && other.root == nil && a.count+other.count <= branchFactor {
		tail := make([]T, a.count+other.count)
		copy(tail, a.tail)
		copy(tail[a.count:], other.tail)
		return Array[T]{count: a.count + other.count, tail: tail}
	}

	left := a.treeNode()
	root := left
	if other.root != nil {
		root = collapse(mergeTrees(left, other.root))
	}
	return Array[T]{count: a.count + other.count, root: root, tail: other.tail}
}

// Prepend returns a new Array holding other's elements followed by the
// receiver's.
func (a Array[T]) Prepend(other Array[T]) Array[T] {
	return other.Concat(a)
}

// Reverse returns a new Array with the elements in reverse order.
func (a Array[T]) Reverse() Array[T] {
	if a.count <= 1 {
		return a
	}
	var b builder[T]
	it := a.ReverseIterator()
	for it.Next() {
		b.push(it.Value())
	}
	return b.build()
}

// ToSlice returns the elements as a fresh slice.
func (a Array[T]) ToSlice() []T {
	s := make([]T, 0, a.count)
	it := a.Iterator()
	for it.Next() {
		s = append(s, it.Value())
	}
	return s
}

// Height returns the height of the backing tree, counting leaves as one
// level. Zero for tail-only Arrays. Useful for debugging and testing
// balance.
func (a Array[T]) Height() int {
	if a.root == nil {
		return 0
	}
	return a.root.height + 1
}

// treeNode folds the tail into the tree and returns a single node
// holding every element. The receiver is unchanged; only the rightmost
// spine is rebuilt. Callers must ensure the Array is nonempty.
func (a Array[T]) treeNode() *node[T] {
	leaf := newLeaf(a.tail)
	if a.root == nil {
		return leaf
	}
	return pushLeafRoot(a.root, leaf)
}

// pushLeafRoot appends a leaf at the right edge of the tree, growing the
// root by one level when the tree is full.
func pushLeafRoot[T any](root, leaf *node[T]) *node[T] {
	if root.height == 0 {
		return newBranch(1, []*node[T]{root, leaf})
	}
	if n := root.pushLeaf(leaf); n != nil {
		return n
	}
	return newBranch(root.height+1, []*node[T]{root, newPath(root.height, leaf)})
}

// popLeafRoot removes the rightmost leaf of the tree, collapsing the
// root while it has a single child. The returned tree is nil when the
// leaf was the tree's only content.
func popLeafRoot[T any](root *node[T]) (*node[T], *node[T]) {
	if root.height == 0 {
		return nil, root
	}
	rest, leaf := root.popLeaf()
	return collapse(rest), leaf
}
