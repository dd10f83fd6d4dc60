package array

import (
	"math/rand"
	"testing"
)

// checkInvariants verifies the structural invariants of an Array:
// consistent counts, node occupancy, child heights, size-table
// correctness, and density of branches without a size table.
func checkInvariants[T any](t *testing.T, a Array[T]) {
	t.Helper()

	if a.count == 0 {
		if a.root != nil {
			t.Fatal("empty Array must have no tree")
		}
		if len(a.tail) != 0 {
			t.Fatal("empty Array must have no tail")
		}
		return
	}

	if len(a.tail) < 1 || len(a.tail) > branchFactor {
		t.Fatalf("tail holds %d elements, want 1..%d", len(a.tail), branchFactor)
	}

	treeCount := 0
	if a.root != nil {
		checkNode(t, a.root)
		treeCount = a.root.count
	}
	if treeCount+len(a.tail) != a.count {
		t.Fatalf("count %d != tree %d + tail %d", a.count, treeCount, len(a.tail))
	}
}

func checkNode[T any](t *testing.T, n *node[T]) {
	t.Helper()

	if n.height == 0 {
		if len(n.values) == 0 || len(n.values) > branchFactor {
			t.Fatalf("leaf holds %d elements, want 1..%d", len(n.values), branchFactor)
		}
		if n.count != len(n.values) {
			t.Fatalf("leaf count %d != %d values", n.count, len(n.values))
		}
		return
	}

	if len(n.children) == 0 || len(n.children) > branchFactor {
		t.Fatalf("branch holds %d children, want 1..%d", len(n.children), branchFactor)
	}
	if n.sizes != nil && len(n.sizes) != len(n.children) {
		t.Fatalf("size table has %d entries for %d children", len(n.sizes), len(n.children))
	}

	sum := 0
	for i, c := range n.children {
		if c.height != n.height-1 {
			t.Fatalf("child at height %d under branch at height %d", c.height, n.height)
		}
		checkNode(t, c)
		sum += c.count
		if n.sizes != nil && n.sizes[i] != sum {
			t.Fatalf("size table entry %d = %d, want %d", i, n.sizes[i], sum)
		}
		if n.sizes == nil && i < len(n.children)-1 && c.count != fullCount(n.height-1) {
			t.Fatalf("dense branch has underfull child %d (%d of %d)", i, c.count, fullCount(n.height-1))
		}
	}
	if sum != n.count {
		t.Fatalf("branch count %d != child sum %d", n.count, sum)
	}
}

func TestDenseHeight(t *testing.T) {
	tests := []struct {
		n      int
		height int
	}{
		{0, 0},
		{32, 0},      // tail only
		{64, 1},      // one leaf + tail
		{1024, 2},    // 31 leaves + tail
		{1056, 2},    // 32 leaves + tail
		{1057, 3},    // root overflow
		{32*1024 + 32, 3},
	}

	for _, tt := range tests {
		a := FromSlice(sequence(tt.n))
		if h := a.Height(); h != tt.height {
			t.Errorf("n=%d: Height() = %d, want %d", tt.n, h, tt.height)
		}
	}
}

func TestRelaxedIndexing(t *testing.T) {
	// Slicing produces unevenly sized children; every index must still
	// resolve through the size tables.
	a := FromSlice(sequence(4000)).Slice(37, 3971)
	checkInvariants(t, a)

	for i := 0; i < a.Len(); i++ {
		if v, ok := a.Get(i); !ok || v != 37+i {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", i, v, ok, 37+i)
		}
	}
}

func TestConcatHeightStaysLogarithmic(t *testing.T) {
	// Left-fold thousands of small Arrays together. Without seam
	// rebalancing the tree degenerates into sparse chains and the
	// height grows linearly.
	chunk := Range(0, 4)
	a := New[int]()
	for i := 0; i < 2000; i++ {
		a = a.Concat(chunk)
	}
	checkInvariants(t, a)
	if a.Len() != 10000 {
		t.Fatalf("Len() = %d, want 10000", a.Len())
	}
	if h := a.Height(); h > 6 {
		t.Errorf("height %d after 2000 concats of 5 elements; want <= 6", h)
	}
	for i := 0; i < a.Len(); i++ {
		if v, _ := a.Get(i); v != i%5 {
			t.Fatalf("Get(%d) = %d, want %d", i, v, i%5)
		}
	}
}

func TestSliceConcatChurn(t *testing.T) {
	// Alternate slicing and concatenation and confirm the structure
	// stays consistent and correctly indexed throughout.
	rng := rand.New(rand.NewSource(1))
	a := FromSlice(sequence(5000))
	model := sequence(5000)

	for step := 0; step < 200; step++ {
		if len(model) > 10 && step%2 == 0 {
			lo := rng.Intn(len(model) / 2)
			hi := lo + 1 + rng.Intn(len(model)-lo-1)
			a = a.Slice(lo, hi)
			model = model[lo:hi]
		} else {
			extra := rng.Intn(40)
			a = a.Concat(FromSlice(sequence(extra)))
			model = append(model[:len(model):len(model)], sequence(extra)...)
		}
		checkInvariants(t, a)
		if a.Len() != len(model) {
			t.Fatalf("step %d: Len() = %d, want %d", step, a.Len(), len(model))
		}
	}

	for i, want := range model {
		if v, _ := a.Get(i); v != want {
			t.Fatalf("Get(%d) = %d, want %d", i, v, want)
		}
	}
}
