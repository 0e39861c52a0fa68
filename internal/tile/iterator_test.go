package tile

import (
	"testing"

	"gridclip/internal/core"
)

func TestOrthoIterRowMajor(t *testing.T) {
	m := New(8, 8, false)
	a := AreaXY(m, 2, 3, 3, 2)

	want := [][2]int{
		{2, 3}, {3, 3}, {4, 3},
		{2, 4}, {3, 4}, {4, 4},
	}
	var got [][2]int
	for it := NewOrthoIter(a); it.Next(); {
		tl := it.Tile()
		got = append(got, [2]int{tl.X, tl.Y})
	}

	if len(got) != len(want) {
		t.Fatalf("visited %d tiles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d visited %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOrthoIterEmptyArea(t *testing.T) {
	var a OrthogonalArea
	it := NewOrthoIter(a)
	if it.Next() {
		t.Error("iterator over empty area produced a tile")
	}
}

func TestTransformIterPairCount(t *testing.T) {
	src := New(8, 8, false)
	dst := New(16, 16, false)
	a := AreaXY(src, 1, 1, 4, 3)

	for tr := core.Transform(0); tr < core.NumTransforms; tr++ {
		it := NewTransformIter(a, dst.Tile(5, 5), tr)
		pairs := 0
		for it.Next() {
			pairs++
		}
		if pairs != a.W*a.H {
			t.Errorf("%v: %d pairs, want %d", tr, pairs, a.W*a.H)
		}
		if it.Next() {
			t.Errorf("%v: iterator produced a pair after exhaustion", tr)
		}
	}
}

func TestTransformIterCorrespondence(t *testing.T) {
	src := New(8, 8, false)
	dst := New(16, 16, false)
	a := AreaXY(src, 2, 1, 3, 4)
	start := dst.Tile(6, 7)

	for tr := core.Transform(0); tr < core.NumTransforms; tr++ {
		for it := NewTransformIter(a, start, tr); it.Next(); {
			s, d := it.Src(), it.Dst()
			want := start.Add(a.TransformedTileOffset(s, tr))
			if d != want {
				t.Fatalf("%v: source (%d,%d) mapped to (%d,%d), want (%d,%d)",
					tr, s.X, s.Y, d.X, d.Y, want.X, want.Y)
			}
		}
	}
}

func TestTransformIterSourceOrder(t *testing.T) {
	src := New(8, 8, false)
	dst := New(8, 8, false)
	a := AreaXY(src, 0, 0, 2, 2)

	it := NewTransformIter(a, dst.Tile(3, 3), core.TransformRot90)
	var order [][2]int
	for it.Next() {
		s := it.Src()
		order = append(order, [2]int{s.X, s.Y})
	}
	want := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if len(order) != len(want) {
		t.Fatalf("visited %d source tiles, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d source %v, want %v", i, order[i], want[i])
		}
	}
}

func TestTransformIterDestinationMayLeaveMap(t *testing.T) {
	src := New(8, 8, false)
	dst := New(4, 4, false)
	a := AreaXY(src, 0, 0, 5, 5)

	// Pasting near the destination edge: off-map steps are still paired and
	// simply invalid, a soft condition for the consumer.
	invalid := 0
	for it := NewTransformIter(a, dst.Tile(2, 2), core.TransformIdentity); it.Next(); {
		if !it.Dst().IsValid() {
			invalid++
		}
	}
	if invalid != 25-4 {
		t.Errorf("%d invalid destination steps, want %d", invalid, 25-4)
	}
}
