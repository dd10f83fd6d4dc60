package array

// iterFrame is a position in the tree walk.
type iterFrame[T any] struct {
	node *node[T]
	idx  int // next child to visit
}

// Iterator walks the elements of an Array in index order using an
// explicit frame stack, so traversal cost is O(n) total with O(log n)
// memory and no recursion.
type Iterator[T any] struct {
	tail    []T
	stack   []iterFrame[T]
	leaf    []T
	leafIdx int
	inTail  bool
	index   int
	value   T
}

// Iterator returns an iterator positioned before the first element.
func (a Array[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{tail: a.tail, index: -1}
	if a.root != nil {
		it.stack = make([]iterFrame[T], 1, a.root.height+1)
		it.stack[0] = iterFrame[T]{node: a.root}
	}
	return it
}

// Next advances to the next element.
// Returns false when the iteration is complete.
func (it *Iterator[T]) Next() bool {
	if it.leaf != nil && it.leafIdx+1 < len(it.leaf) {
		it.leafIdx++
	} else {
		leaf := it.nextLeaf()
		if leaf == nil {
			if it.inTail {
				return false
			}
			it.inTail = true
			leaf = it.tail
		}
		if len(leaf) == 0 {
			return false
		}
		it.leaf = leaf
		it.leafIdx = 0
	}
	it.index++
	it.value = it.leaf[it.leafIdx]
	return true
}

// nextLeaf descends to the next unvisited leaf, left to right.
func (it *Iterator[T]) nextLeaf() []T {
	for len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		n := frame.node

		if n.height == 0 {
			it.stack = it.stack[:len(it.stack)-1]
			return n.values
		}
		if frame.idx < len(n.children) {
			child := n.children[frame.idx]
			frame.idx++
			it.stack = append(it.stack, iterFrame[T]{node: child})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return nil
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Index returns the index of the current element.
func (it *Iterator[T]) Index() int {
	return it.index
}

// ReverseIterator walks the elements of an Array in reverse index order.
type ReverseIterator[T any] struct {
	stack   []iterFrame[T]
	leaf    []T
	leafIdx int
	index   int
	value   T
}

// ReverseIterator returns an iterator positioned after the last element.
func (a Array[T]) ReverseIterator() *ReverseIterator[T] {
	it := &ReverseIterator[T]{
		leaf:    a.tail,
		leafIdx: len(a.tail),
		index:   a.count,
	}
	if a.root != nil {
		it.stack = make([]iterFrame[T], 1, a.root.height+1)
		it.stack[0] = iterFrame[T]{node: a.root, idx: len(a.root.children) - 1}
	}
	return it
}

// Next advances to the previous element.
// Returns false when the iteration is complete.
func (it *ReverseIterator[T]) Next() bool {
	if it.leafIdx > 0 {
		it.leafIdx--
	} else {
		leaf := it.prevLeaf()
		if leaf == nil {
			return false
		}
		it.leaf = leaf
		it.leafIdx = len(leaf) - 1
	}
	it.index--
	it.value = it.leaf[it.leafIdx]
	return true
}

// prevLeaf descends to the next unvisited leaf, right to left.
func (it *ReverseIterator[T]) prevLeaf() []T {
	for len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		n := frame.node

		if n.height == 0 {
			it.stack = it.stack[:len(it.stack)-1]
			return n.values
		}
		if frame.idx >= 0 {
			child := n.children[frame.idx]
			frame.idx--
			it.stack = append(it.stack, iterFrame[T]{node: child, idx: len(child.children) - 1})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return nil
}

// Value returns the current element.
func (it *ReverseIterator[T]) Value() T {
	return it.value
}

// Index returns the index of the current element.
func (it *ReverseIterator[T]) Index() int {
	return it.index
}
