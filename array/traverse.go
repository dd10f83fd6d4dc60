package array

import "cmp"

// Foldl reduces the Array from the left, threading an accumulator
// through every element in index order.
func Foldl[T, A any](a Array[T], seed A, step func(A, T) A) A {
	acc := seed
	if a.root != nil {
		acc = foldlNode(a.root, acc, step)
	}
	for _, v := range a.tail {
		acc = step(acc, v)
	}
	return acc
}

func foldlNode[T, A any](n *node[T], acc A, step func(A, T) A) A {
	if n.height == 0 {
		for _, v := range n.values {
			acc = step(acc, v)
		}
		return acc
	}
	for _, c := range n.children {
		acc = foldlNode(c, acc, step)
	}
	return acc
}

// Foldr reduces the Array from the right, visiting elements in reverse
// index order.
func Foldr[T, A any](a Array[T], seed A, step func(T, A) A) A {
	acc := seed
	for i := len(a.tail) - 1; i >= 0; i-- {
		acc = step(a.tail[i], acc)
	}
	if a.root != nil {
		acc = foldrNode(a.root, acc, step)
	}
	return acc
}

func foldrNode[T, A any](n *node[T], acc A, step func(T, A) A) A {
	if n.height == 0 {
		for i := len(n.values) - 1; i >= 0; i-- {
			acc = step(n.values[i], acc)
		}
		return acc
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		acc = foldrNode(n.children[i], acc, step)
	}
	return acc
}

// Map returns a new Array with f applied to every element, in one pass
// and in order.
func Map[T, U any](a Array[T], f func(T) U) Array[U] {
	var b builder[U]
	it := a.Iterator()
	for it.Next() {
		b.push(f(it.Value()))
	}
	return b.build()
}

// IndexedMap is Map with the element index supplied to f.
func IndexedMap[T, U any](a Array[T], f func(int, T) U) Array[U] {
	var b builder[U]
	it := a.Iterator()
	for it.Next() {
		b.push(f(it.Index(), it.Value()))
	}
	return b.build()
}

// Filter returns the elements satisfying pred, in their original
// relative order.
func (a Array[T]) Filter(pred func(T) bool) Array[T] {
	var b builder[T]
	it := a.Iterator()
	for it.Next() {
		if pred(it.Value()) {
			b.push(it.Value())
		}
	}
	return b.build()
}

// FilterMap applies f to every element and keeps the results f accepts,
// in their original relative order.
func FilterMap[T, U any](a Array[T], f func(T) (U, bool)) Array[U] {
	var b builder[U]
	it := a.Iterator()
	for it.Next() {
		if u, ok := f(it.Value()); ok {
			b.push(u)
		}
	}
	return b.build()
}

// FindFirst returns the first element satisfying pred, short-circuiting
// the traversal. Returns false if no element satisfies it.
func (a Array[T]) FindFirst(pred func(T) bool) (T, bool) {
	it := a.Iterator()
	for it.Next() {
		if pred(it.Value()) {
			return it.Value(), true
		}
	}
	var zero T
	return zero, false
}

// FindLast returns the last element satisfying pred, traversing
// backwards and short-circuiting. Returns false if no element
// satisfies it.
func (a Array[T]) FindLast(pred func(T) bool) (T, bool) {
	it := a.ReverseIterator()
	for it.Next() {
		if pred(it.Value()) {
			return it.Value(), true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether any element satisfies pred.
func (a Array[T]) Any(pred func(T) bool) bool {
	_, ok := a.FindFirst(pred)
	return ok
}

// All reports whether every element satisfies pred.
// Vacuously true on an empty Array.
func (a Array[T]) All(pred func(T) bool) bool {
	_, ok := a.FindFirst(func(v T) bool { return !pred(v) })
	return !ok
}

// Member reports whether v occurs in the Array.
func Member[T comparable](a Array[T], v T) bool {
	return a.Any(func(x T) bool { return x == v })
}

// Minimum returns the smallest element, or false on an empty Array.
// The first occurrence of a tied minimum wins.
func Minimum[T cmp.Ordered](a Array[T]) (T, bool) {
	it := a.Iterator()
	if !it.Next() {
		var zero T
		return zero, false
	}
	best := it.Value()
	for it.Next() {
		if it.Value() < best {
			best = it.Value()
		}
	}
	return best, true
}

// Maximum returns the largest element, or false on an empty Array.
// The first occurrence of a tied maximum wins.
func Maximum[T cmp.Ordered](a Array[T]) (T, bool) {
	it := a.Iterator()
	if !it.Next() {
		var zero T
		return zero, false
	}
	best := it.Value()
	for it.Next() {
		if it.Value() > best {
			best = it.Value()
		}
	}
	return best, true
}
