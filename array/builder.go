package array

// builder accumulates elements and packs them into a dense Array: fully
// packed leaves, canonical height, trailing elements in the tail. It is
// the construction path for bulk operations (FromSlice, Map, Filter,
// sorting, Reverse).
//
// The builder is internal on purpose: Array values handed to callers are
// always fully evaluated, never in a partially built state.
type builder[T any] struct {
	leaves []*node[T]
	buf    []T // current partial leaf
	count  int
}

// push appends an element, flushing the buffer into a leaf when full.
func (b *builder[T]) push(v T) {
	if b.buf == nil {
		b.buf = make([]T, 0, branchFactor)
	}
	b.buf = append(b.buf, v)
	b.count++
	if len(b.buf) == branchFactor {
		b.leaves = append(b.leaves, newLeaf(b.buf))
		b.buf = nil
	}
}

// build assembles the accumulated elements into an Array and resets the
// builder. The last up-to-branchFactor elements become the tail; the
// rest form a dense tree built bottom-up.
func (b *builder[T]) build() Array[T] {
	count := b.count
	if count == 0 {
		return Array[T]{}
	}

	var tail []T
	leaves := b.leaves
	if len(b.buf) > 0 {
		tail = b.buf
	} else {
		tail = leaves[len(leaves)-1].values
		leaves = leaves[:len(leaves)-1]
	}
	b.leaves, b.buf, b.count = nil, nil, 0

	if len(leaves) == 0 {
		return Array[T]{count: count, tail: tail}
	}

	nodes := leaves
	height := 0
	for len(nodes) > 1 {
		height++
		parents := make([]*node[T], 0, (len(nodes)+branchFactor-1)/branchFactor)
		for i := 0; i < len(nodes); i += branchFactor {
			end := min(i+branchFactor, len(nodes))
			children := make([]*node[T], end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newBranch(height, children))
		}
		nodes = parents
	}
	return Array[T]{count: count, root: nodes[0], tail: tail}
}
