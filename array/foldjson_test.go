package array_test

import (
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Jwashton/gren-core/array"
)

// Encoders consume an Array through an in-order fold that feeds each
// element to a combining step over an externally-owned accumulator.
// These tests exercise that integration surface end to end by folding
// Arrays into JSON documents.

func TestFoldBuildsJSONArray(t *testing.T) {
	a := array.FromSlice([]string{"turtles", "on", "turtles"})

	doc := array.Foldl(a, "[]", func(acc string, v string) string {
		out, err := sjson.Set(acc, "-1", v)
		if err != nil {
			t.Fatalf("append element: %v", err)
		}
		return out
	})

	parsed := gjson.Parse(doc).Array()
	if len(parsed) != a.Len() {
		t.Fatalf("encoded %d elements, want %d", len(parsed), a.Len())
	}
	for i, want := range []string{"turtles", "on", "turtles"} {
		if got := parsed[i].String(); got != want {
			t.Errorf("element %d = %q, want %q", i, got, want)
		}
	}
}

func TestFoldBuildsJSONObject(t *testing.T) {
	type field struct {
		Key   string
		Value int
	}
	a := array.New[field]().
		PushLast(field{"width", 640}).
		PushLast(field{"height", 480}).
		PushLast(field{"depth", 32})

	doc := array.Foldl(a, "{}", func(acc string, f field) string {
		out, err := sjson.Set(acc, f.Key, f.Value)
		if err != nil {
			t.Fatalf("set %q: %v", f.Key, err)
		}
		return out
	})

	for _, f := range a.ToSlice() {
		if got := gjson.Get(doc, f.Key).Int(); got != int64(f.Value) {
			t.Errorf("%s = %d, want %d", f.Key, got, f.Value)
		}
	}
}

func TestFoldEncodesInIndexOrder(t *testing.T) {
	a := array.Range(0, 499)

	doc := array.Foldl(a, "[]", func(acc string, v int) string {
		out, _ := sjson.Set(acc, "-1", v)
		return out
	})

	elems := gjson.Parse(doc).Array()
	if len(elems) != 500 {
		t.Fatalf("encoded %d elements, want 500", len(elems))
	}
	for i, e := range elems {
		if e.Int() != int64(i) {
			t.Fatalf("element %d = %d; fold visited out of order", i, e.Int())
		}
	}
}
