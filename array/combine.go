package array

// Flatten concatenates an Array of Arrays into one, preserving order.
// Inner Arrays share structure with the result.
func Flatten[T any](a Array[Array[T]]) Array[T] {
	result := New[T]()
	it := a.Iterator()
	for it.Next() {
		result = result.Concat(it.Value())
	}
	return result
}

// FlatMap maps every element to an Array and concatenates the results
// in order.
func FlatMap[T, U any](a Array[T], f func(T) Array[U]) Array[U] {
	result := New[U]()
	it := a.Iterator()
	for it.Next() {
		result = result.Concat(f(it.Value()))
	}
	return result
}

// Intersperse places sep between every pair of adjacent elements.
func (a Array[T]) Intersperse(sep T) Array[T] {
	if a.count <= 1 {
		return a
	}
	var b builder[T]
	it := a.Iterator()
	for it.Next() {
		if it.Index() > 0 {
			b.push(sep)
		}
		b.push(it.Value())
	}
	return b.build()
}

// Map2 zips two Arrays with f, stopping at the shorter input.
func Map2[A, B, C any](f func(A, B) C, xs Array[A], ys Array[B]) Array[C] {
	var b builder[C]
	ix := xs.Iterator()
	iy := ys.Iterator()
	for ix.Next() && iy.Next() {
		b.push(f(ix.Value(), iy.Value()))
	}
	return b.build()
}

// Map3 zips three Arrays with f, stopping at the shortest input.
func Map3[A, B, C, D any](f func(A, B, C) D, xs Array[A], ys Array[B], zs Array[C]) Array[D] {
	var b builder[D]
	ix := xs.Iterator()
	iy := ys.Iterator()
	iz := zs.Iterator()
	for ix.Next() && iy.Next() && iz.Next() {
		b.push(f(ix.Value(), iy.Value(), iz.Value()))
	}
	return b.build()
}

// Partition splits the Array into the elements satisfying pred and
// those that do not, each keeping its original relative order.
func (a Array[T]) Partition(pred func(T) bool) (Array[T], Array[T]) {
	var trues, falses builder[T]
	it := a.Iterator()
	for it.Next() {
		if pred(it.Value()) {
			trues.push(it.Value())
		} else {
			falses.push(it.Value())
		}
	}
	return trues.build(), falses.build()
}
