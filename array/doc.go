// Package array provides a persistent immutable ordered sequence.
//
// An Array is a tree with branching factor 32 whose leaves hold
// contiguous element chunks, plus a small tail buffer at the root that
// absorbs trailing appends. Dense subtrees are indexed by bit shifting;
// subtrees made irregular by slicing or concatenation carry explicit
// per-child size tables ("relaxed" nodes) so indexing stays O(log n).
//
// Key properties:
//   - Every editing operation returns a new Array sharing all untouched
//     subtrees with the original; no operation ever mutates shared state.
//   - O(log n) Get, Set, Slice, and Concat; amortized O(1) PushLast.
//   - Any number of derived Arrays may alias subtrees indefinitely, so
//     values are safe for concurrent reads without synchronization.
//   - Indexing and range operations never fail: out-of-range access
//     yields an absence result or an empty Array, never an error.
//
// Basic usage:
//
//	a := array.Range(1, 5)          // [1 2 3 4 5]
//	b := a.PushLast(6)              // [1 2 3 4 5 6]; a unchanged
//	v, ok := b.Get(5)               // 6, true
//	c := b.Slice(1, -1)             // [2 3 4 5]
//	d := array.Sort(c.Reverse())    // [2 3 4 5]
package array
