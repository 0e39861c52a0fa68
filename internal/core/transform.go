package core

// Transform is one of the eight symmetries of a tile grid: a quarter-turn
// rotation optionally preceded by a reflection. The low two bits hold the
// rotation count, bit 2 holds the mirror flag. Mirroring negates the Y axis
// and is applied before the rotation.
type Transform uint8

const (
	TransformIdentity Transform = iota
	TransformRot90
	TransformRot180
	TransformRot270
	TransformMirror
	TransformMirrorRot90
	TransformMirrorRot180
	TransformMirrorRot270

	// NumTransforms is the order of the symmetry group.
	NumTransforms = 8
)

// rotation returns the number of quarter turns.
func (t Transform) rotation() uint8 { return uint8(t) & 3 }

// Mirrored reports whether the transform includes a reflection.
func (t Transform) Mirrored() bool { return t&4 != 0 }

// Rotate returns the transform followed by n additional quarter turns.
func (t Transform) Rotate(n int) Transform {
	r := (int(t.rotation()) + n) & 3
	return Transform(uint8(t)&4 | uint8(r))
}

// ToggleMirror returns the transform composed with a reflection.
func (t Transform) ToggleMirror() Transform {
	return Compose(t, TransformMirror)
}

// Compose returns the transform equivalent to applying t1 first, then t2.
func Compose(t1, t2 Transform) Transform {
	r1, r2 := t1.rotation(), t2.rotation()
	var r uint8
	if t2.Mirrored() {
		// Reflections conjugate rotations into their inverses.
		r = (r2 - r1) & 3
	} else {
		r = (r1 + r2) & 3
	}
	m := (uint8(t1) ^ uint8(t2)) & 4
	return Transform(m | r)
}

// Invert returns the transform that undoes t. Mirrored transforms are their
// own inverses.
func Invert(t Transform) Transform {
	if t.Mirrored() {
		return t
	}
	return Transform((-uint8(t)) & 3)
}

// TransformDiff applies the transform to a relative offset.
func TransformDiff(d Diff, t Transform) Diff {
	if t.Mirrored() {
		d.Y = -d.Y
	}
	switch t.rotation() {
	case 1:
		d.X, d.Y = -d.Y, d.X
	case 2:
		d.X, d.Y = -d.X, -d.Y
	case 3:
		d.X, d.Y = d.Y, -d.X
	}
	return d
}

// TransformPoint applies the transform to an absolute coordinate, treating
// it as an offset from the origin.
func TransformPoint(p Point, t Transform) Point {
	d := TransformDiff(Diff{X: p.X, Y: p.Y}, t)
	return Point{X: d.X, Y: d.Y}
}

// TransformSize applies the transform to a dimension. Quarter and
// three-quarter turns swap the axes; reflection alone does not.
func TransformSize(s Size, t Transform) Size {
	if t.rotation()&1 != 0 {
		s.W, s.H = s.H, s.W
	}
	return s
}

// CornerDiff reports, per axis, whether the origin corner of a box lands on
// the far side of the box's bounding extent after the transform (1) or stays
// on the near side (0). Scaling the result by the transformed extents gives
// the position of the transformed origin relative to the new anchor.
func CornerDiff(t Transform) Diff {
	v := TransformDiff(Diff{X: 1, Y: 1}, t)
	ret := Diff{}
	if v.X < 0 {
		ret.X = 1
	}
	if v.Y < 0 {
		ret.Y = 1
	}
	return ret
}

var transformNames = [NumTransforms]string{
	"identity", "rot90", "rot180", "rot270",
	"mirror", "mirror+rot90", "mirror+rot180", "mirror+rot270",
}

// String returns a short human-readable name for the transform.
func (t Transform) String() string {
	if t >= NumTransforms {
		return "invalid"
	}
	return transformNames[t]
}
