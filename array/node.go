package array

// Tree structure constants
const (
	// branchBits is the number of index bits consumed per tree level.
	branchBits = 5

	// branchFactor is the maximum children per branch and elements per leaf.
	branchFactor = 1 << branchBits

	// rebalanceSlack is how many node slots beyond the optimal packing a
	// merged child list may occupy before concatenation redistributes it.
	rebalanceSlack = 2
)

// fullCount returns the element capacity of a subtree at the given height.
func fullCount(height int) int {
	return 1 << (uint(height+1) * branchBits)
}

// node is a node in the Array tree.
// Leaf nodes (height == 0) hold elements directly.
// Branch nodes (height > 0) hold child node references, the subtree
// element count, and, when children are unevenly sized, a cumulative
// per-child size table.
type node[T any] struct {
	height int // 0 for leaves, >0 for branches
	count  int // elements in this subtree

	// Branch fields (height > 0)
	children []*node[T]
	sizes    []int // cumulative child sizes; nil while the branch is dense

	// Leaf fields (height == 0)
	values []T
}

// newLeaf creates a leaf node holding the given elements.
// The slice is adopted, not copied; callers must not mutate it afterwards.
func newLeaf[T any](values []T) *node[T] {
	return &node[T]{count: len(values), values: values}
}

// newBranch creates a branch at the given height over the given children.
// It computes the subtree count and attaches a size table unless every
// child but the last is a completely full subtree, in which case indexing
// can use shift-based descent and the table is omitted.
func newBranch[T any](height int, children []*node[T]) *node[T] {
	childCap := fullCount(height - 1)
	total := 0
	dense := true
	for i, c := range children {
		total += c.count
		if i < len(children)-1 && c.count != childCap {
			dense = false
		}
	}

	n := &node[T]{height: height, count: total, children: children}
	if !dense {
		sizes := make([]int, len(children))
		acc := 0
		for i, c := range children {
			acc += c.count
			sizes[i] = acc
		}
		n.sizes = sizes
	}
	return n
}

// newPath wraps a leaf in single-child branches up to the given height.
func newPath[T any](height int, leaf *node[T]) *node[T] {
	n := leaf
	for h := 1; h <= height; h++ {
		n = newBranch(h, []*node[T]{n})
	}
	return n
}

// childFor finds the child owning logical index i.
// Dense branches compute the child by shifting; relaxed branches search
// the size table. Returns the child index and the index within the child.
func (n *node[T]) childFor(i int) (int, int) {
	if n.sizes == nil {
		shift := uint(n.height) * branchBits
		idx := i >> shift
		return idx, i - idx<<shift
	}
	// The table has at most branchFactor entries; a linear scan is
	// cheaper than binary search at this size.
	idx := 0
	for n.sizes[idx] <= i {
		idx++
	}
	if idx > 0 {
		i -= n.sizes[idx-1]
	}
	return idx, i
}

// get returns the element at index i. The index must be in range.
func (n *node[T]) get(i int) T {
	for n.height > 0 {
		idx, sub := n.childFor(i)
		n = n.children[idx]
		i = sub
	}
	return n.values[i]
}

// set returns a copy of the subtree with index i replaced by v, sharing
// every sibling subtree along the rebuilt path.
func (n *node[T]) set(i int, v T) *node[T] {
	if n.height == 0 {
		values := make([]T, len(n.values))
		copy(values, n.values)
		values[i] = v
		return newLeaf(values)
	}

	idx, sub := n.childFor(i)
	children := make([]*node[T], len(n.children))
	copy(children, n.children)
	children[idx] = children[idx].set(sub, v)
	return newBranch(n.height, children)
}

// pushLeaf appends a leaf at the right edge of the subtree, rebuilding
// only the rightmost spine. Returns nil if the subtree has no room.
func (n *node[T]) pushLeaf(leaf *node[T]) *node[T] {
	if n.height == 1 {
		if len(n.children) == branchFactor {
			return nil
		}
		children := make([]*node[T], len(n.children)+1)
		copy(children, n.children)
		children[len(n.children)] = leaf
		return newBranch(1, children)
	}

	last := len(n.children) - 1
	if sub := n.children[last].pushLeaf(leaf); sub != nil {
		children := make([]*node[T], len(n.children))
		copy(children, n.children)
		children[last] = sub
		return newBranch(n.height, children)
	}

	if len(n.children) == branchFactor {
		return nil
	}
	children := make([]*node[T], len(n.children)+1)
	copy(children, n.children)
	children[len(n.children)] = newPath(n.height-1, leaf)
	return newBranch(n.height, children)
}

// popLeaf removes the rightmost leaf of the subtree.
// Returns the remaining subtree (nil if the leaf was the only content)
// and the removed leaf.
func (n *node[T]) popLeaf() (*node[T], *node[T]) {
	if n.height == 1 {
		leaf := n.children[len(n.children)-1]
		if len(n.children) == 1 {
			return nil, leaf
		}
		children := make([]*node[T], len(n.children)-1)
		copy(children, n.children)
		return newBranch(1, children), leaf
	}

	last := len(n.children) - 1
	sub, leaf := n.children[last].popLeaf()
	if sub == nil {
		if len(n.children) == 1 {
			return nil, leaf
		}
		children := make([]*node[T], last)
		copy(children, n.children)
		return newBranch(n.height, children), leaf
	}

	children := make([]*node[T], len(n.children))
	copy(children, n.children)
	children[last] = sub
	return newBranch(n.height, children), leaf
}

// take returns the subtree truncated to its first m elements, 1 <= m <=
// count. Only the boundary leaf is copied; everything left of the
// boundary is shared.
func (n *node[T]) take(m int) *node[T] {
	if n.height == 0 {
		values := make([]T, m)
		copy(values, n.values[:m])
		return newLeaf(values)
	}

	idx, sub := n.childFor(m - 1)
	children := make([]*node[T], idx+1)
	copy(children, n.children[:idx])
	children[idx] = n.children[idx].take(sub + 1)
	return newBranch(n.height, children)
}

// drop returns the subtree without its first m elements, 1 <= m < count.
// Only the boundary leaf is copied.
func (n *node[T]) drop(m int) *node[T] {
	if n.height == 0 {
		values := make([]T, len(n.values)-m)
		copy(values, n.values[m:])
		return newLeaf(values)
	}

	idx, sub := n.childFor(m)
	children := make([]*node[T], len(n.children)-idx)
	copy(children[1:], n.children[idx+1:])
	if sub > 0 {
		children[0] = n.children[idx].drop(sub)
	} else {
		children[0] = n.children[idx]
	}
	return newBranch(n.height, children)
}

// collapse removes single-child branch chains at the root so the tree
// height matches its content again after trimming.
func collapse[T any](n *node[T]) *node[T] {
	for n != nil && n.height > 0 && len(n.children) == 1 {
		n = n.children[0]
	}
	return n
}

// mergeTrees joins two trees preserving order. Heights may differ; the
// shorter tree is merged into the edge of the taller one and underfull
// nodes along the seam are redistributed, keeping the height logarithmic
// in the element count.
func mergeTrees[T any](l, r *node[T]) *node[T] {
	nodes := mergeAt(l, r)
	if len(nodes) == 1 {
		return nodes[0]
	}
	return newBranch(nodes[0].height+1, nodes)
}

// mergeAt merges two subtrees into one or two nodes at the greater of
// the two heights.
func mergeAt[T any](l, r *node[T]) []*node[T] {
	switch {
	case l.height > r.height:
		mid := mergeAt(l.children[len(l.children)-1], r)
		return repack(l.children[:len(l.children)-1], mid, nil, l.height)
	case r.height > l.height:
		mid := mergeAt(l, r.children[0])
		return repack(nil, mid, r.children[1:], r.height)
	case l.height == 0:
		return mergeLeaves(l, r)
	default:
		mid := mergeAt(l.children[len(l.children)-1], r.children[0])
		return repack(l.children[:len(l.children)-1], mid, r.children[1:], l.height)
	}
}

// mergeLeaves combines two leaves into one full-packed leaf, or two when
// the elements do not fit in one.
func mergeLeaves[T any](l, r *node[T]) []*node[T] {
	total := len(l.values) + len(r.values)
	values := make([]T, total)
	copy(values, l.values)
	copy(values[len(l.values):], r.values)

	if total <= branchFactor {
		return []*node[T]{newLeaf(values)}
	}
	return []*node[T]{
		newLeaf(values[:branchFactor:branchFactor]),
		newLeaf(values[branchFactor:]),
	}
}

// repack assembles the merged middle nodes with the untouched siblings on
// either side, redistributes underfull nodes, and groups the result into
// one or two branches at the given height.
func repack[T any](left, mid, right []*node[T], height int) []*node[T] {
	children := make([]*node[T], 0, len(left)+len(mid)+len(right))
	children = append(children, left...)
	children = append(children, mid...)
	children = append(children, right...)
	children = redistribute(children)

	if len(children) <= branchFactor {
		return []*node[T]{newBranch(height, children)}
	}
	return []*node[T]{
		newBranch(height, children[:branchFactor:branchFactor]),
		newBranch(height, children[branchFactor:]),
	}
}

// redistribute left-packs a merged child list when it wastes more than
// rebalanceSlack node slots over the optimal packing. Without this pass,
// repeated concatenation would accumulate sparse nodes and the tree
// height would no longer be bounded by the element count.
func redistribute[T any](nodes []*node[T]) []*node[T] {
	total := 0
	for _, n := range nodes {
		total += entryCount(n)
	}
	optimal := (total + branchFactor - 1) / branchFactor
	if len(nodes) <= optimal+rebalanceSlack {
		return nodes
	}

	if nodes[0].height == 0 {
		values := make([]T, 0, total)
		for _, n := range nodes {
			values = append(values, n.values...)
		}
		out := make([]*node[T], 0, optimal)
		for len(values) > branchFactor {
			out = append(out, newLeaf(values[:branchFactor:branchFactor]))
			values = values[branchFactor:]
		}
		return append(out, newLeaf(values))
	}

	height := nodes[0].height
	grand := make([]*node[T], 0, total)
	for _, n := range nodes {
		grand = append(grand, n.children...)
	}
	out := make([]*node[T], 0, optimal)
	for len(grand) > branchFactor {
		out = append(out, newBranch(height, grand[:branchFactor:branchFactor]))
		grand = grand[branchFactor:]
	}
	return append(out, newBranch(height, grand))
}

// entryCount returns the number of direct entries in a node.
func entryCount[T any](n *node[T]) int {
	if n.height == 0 {
		return len(n.values)
	}
	return len(n.children)
}
