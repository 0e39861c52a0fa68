package core

// Size describes the dimensions of a tile grid or tile area.
type Size struct {
	W int
	H int
}

// Point is an absolute 2D coordinate.
type Point struct {
	X int
	Y int
}

// Diff is a relative 2D offset between two coordinates.
type Diff struct {
	X int
	Y int
}

// Add returns the point translated by the given offset.
func (p Point) Add(d Diff) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Diff returns the offset from o to p.
func (p Point) Diff(o Point) Diff {
	return Diff{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns the offset multiplied component-wise by n.
func (d Diff) Scale(n int) Diff {
	return Diff{X: d.X * n, Y: d.Y * n}
}

// Add returns the sum of two offsets.
func (d Diff) Add(o Diff) Diff {
	return Diff{X: d.X + o.X, Y: d.Y + o.Y}
}

// Sub returns the difference of two offsets.
func (d Diff) Sub(o Diff) Diff {
	return Diff{X: d.X - o.X, Y: d.Y - o.Y}
}

// Direction is one of the eight compass directions.
type Direction uint8

const (
	DirN Direction = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// IsSideFacing reports whether the direction points east or west. Airport
// layouts rotated to a side-facing direction swap their footprint axes.
func (d Direction) IsSideFacing() bool {
	return d == DirE || d == DirW
}
