package tile

import (
	"fmt"

	"gridclip/internal/core"
)

// OrthogonalArea is an axis-aligned rectangle of tiles on one grid instance,
// held as its northern-most/western-most corner plus inclusive dimensions.
// A zero-width area is empty; the zero value is the empty area.
type OrthogonalArea struct {
	Tile Index
	W    int
	H    int
}

// AreaXY builds an area from an anchor coordinate and dimensions.
func AreaXY(m *Map, x, y, w, h int) OrthogonalArea {
	return OrthogonalArea{Tile: m.Tile(x, y), W: w, H: h}
}

// NewOrthogonalArea constructs the smallest area covering both endpoints,
// which must be valid indices on the same map.
func NewOrthogonalArea(start, end Index) OrthogonalArea {
	if !SameMap(start, end) {
		panic("tile: area endpoints on different maps")
	}
	start.assertValid()
	end.assertValid()

	sx, ex := start.X, end.X
	if sx > ex {
		sx, ex = ex, sx
	}
	sy, ey := start.Y, end.Y
	if sy > ey {
		sy, ey = ey, sy
	}

	return OrthogonalArea{
		Tile: start.M.Tile(sx, sy),
		W:    ex - sx + 1,
		H:    ey - sy + 1,
	}
}

// IsEmpty reports whether the area contains no tiles.
func (a OrthogonalArea) IsEmpty() bool { return a.W == 0 }

// Len returns the number of tiles in the area.
func (a OrthogonalArea) Len() int { return a.W * a.H }

// Size returns the area dimensions.
func (a OrthogonalArea) Size() core.Size { return core.Size{W: a.W, H: a.H} }

// Add grows the area to the smallest rectangle containing both the prior
// area and the given tile. Adding to an empty area yields the single-tile
// area. Add never shrinks.
func (a *OrthogonalArea) Add(t Index) {
	t.assertValid()
	if !a.Tile.IsValid() {
		a.Tile = t
		a.W = 1
		a.H = 1
		return
	}
	if !SameMap(a.Tile, t) {
		panic("tile: adding tile from another map")
	}

	sx, sy := a.Tile.X, a.Tile.Y
	ex, ey := sx+a.W-1, sy+a.H-1
	if t.X < sx {
		sx = t.X
	}
	if t.Y < sy {
		sy = t.Y
	}
	if t.X > ex {
		ex = t.X
	}
	if t.Y > ey {
		ey = t.Y
	}

	a.Tile = t.M.Tile(sx, sy)
	a.W = ex - sx + 1
	a.H = ey - sy + 1
}

// Intersects reports whether two areas on the same map overlap. An empty
// area never intersects anything.
func (a OrthogonalArea) Intersects(o OrthogonalArea) bool {
	if a.W == 0 || o.W == 0 {
		return false
	}
	if !SameMap(a.Tile, o.Tile) {
		panic("tile: intersecting areas on different maps")
	}

	return !(o.Tile.X > a.Tile.X+a.W-1 ||
		o.Tile.X+o.W-1 < a.Tile.X ||
		o.Tile.Y > a.Tile.Y+a.H-1 ||
		o.Tile.Y+o.H-1 < a.Tile.Y)
}

// ContainsArea reports whether the other area lies fully inside this one.
// An empty area neither contains nor is contained.
func (a OrthogonalArea) ContainsArea(o OrthogonalArea) bool {
	if a.W == 0 || o.W == 0 {
		return false
	}
	if !SameMap(a.Tile, o.Tile) {
		panic("tile: comparing areas on different maps")
	}

	return o.Tile.X >= a.Tile.X &&
		o.Tile.X+o.W <= a.Tile.X+a.W &&
		o.Tile.Y >= a.Tile.Y &&
		o.Tile.Y+o.H <= a.Tile.Y+a.H
}

// Contains reports whether the tile lies inside the area.
func (a OrthogonalArea) Contains(t Index) bool {
	if a.W == 0 {
		return false
	}
	if !SameMap(a.Tile, t) {
		panic("tile: testing tile from another map")
	}

	return t.X >= a.Tile.X && t.X < a.Tile.X+a.W &&
		t.Y >= a.Tile.Y && t.Y < a.Tile.Y+a.H
}

// ClampToMap shrinks the dimensions so the area stays inside its map. The
// anchor itself must be valid.
func (a *OrthogonalArea) ClampToMap() {
	a.Tile.assertValid()
	if max := a.Tile.M.sizeX - a.Tile.X; a.W > max {
		a.W = max
	}
	if max := a.Tile.M.sizeY - a.Tile.Y; a.H > max {
		a.H = max
	}
}

// TransformedNorthOffset returns where this area's anchor tile lands,
// relative to the anchor of the transformed area, when the area is
// transformed in place. The result depends only on the dimensions and the
// transform, which makes the bounding box of a transformed copy
// deterministic regardless of the transform chosen.
func (a OrthogonalArea) TransformedNorthOffset(t core.Transform) core.Diff {
	extent := core.TransformSize(core.Size{W: a.W - 1, H: a.H - 1}, t)
	dir := core.CornerDiff(t)
	return core.Diff{X: dir.X * extent.W, Y: dir.Y * extent.H}
}

// TransformedTileOffset transforms the anchor-relative coordinates of a tile
// inside this area. Adding TransformedNorthOffset yields the tile's position
// relative to the transformed area's anchor.
func (a OrthogonalArea) TransformedTileOffset(tl Index, t core.Transform) core.Diff {
	if !SameMap(a.Tile, tl) {
		panic("tile: transforming tile from another map")
	}
	rel := core.Diff{X: tl.X - a.Tile.X, Y: tl.Y - a.Tile.Y}
	return core.TransformDiff(rel, t)
}

func (a OrthogonalArea) String() string {
	if a.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("(%d,%d) %dx%d", a.Tile.X, a.Tile.Y, a.W, a.H)
}
