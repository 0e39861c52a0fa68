package tile

// DiagonalArea is a 45°-rotated rectangle of tiles, held as an anchor tile
// plus signed extents along the sum diagonal (a = y+x) and the difference
// diagonal (b = y-x). The extents use one-past-end semantics, matching the
// w/h convention of OrthogonalArea; their signs encode the direction from
// the anchor.
type DiagonalArea struct {
	Tile Index
	A    int
	B    int
}

// NewDiagonalArea constructs a diagonal area from two corner tiles on the
// same map.
func NewDiagonalArea(start, end Index) DiagonalArea {
	if !SameMap(start, end) {
		panic("tile: area endpoints on different maps")
	}
	start.assertValid()
	end.assertValid()

	// Rebasing to make both extents positive is not possible: the new base
	// could be a "flattened" corner with no tile under it. Keeping the
	// signed extents and bumping them by one toward their own sign gives
	// one-past-end semantics without collapsing single-diagonal areas.
	a := (end.Y + end.X) - (start.Y + start.X)
	b := (end.Y - end.X) - (start.Y - start.X)
	if a > 0 {
		a++
	} else {
		a--
	}
	if b > 0 {
		b++
	} else {
		b--
	}

	return DiagonalArea{Tile: start, A: a, B: b}
}

// Contains reports whether the tile lies inside the diamond.
func (d DiagonalArea) Contains(t Index) bool {
	if !SameMap(d.Tile, t) {
		panic("tile: testing tile from another map")
	}

	a := t.Y + t.X
	b := t.Y - t.X

	startA := d.Tile.Y + d.Tile.X
	startB := d.Tile.Y - d.Tile.X
	endA := startA + d.A
	endB := startB + d.B

	// Normalize so the lower bound comes first, preserving the one-past-end
	// convention on both axes.
	if startA > endA {
		startA, endA = endA+1, startA+1
	}
	if startB > endB {
		startB, endB = endB+1, startB+1
	}

	return a >= startA && a < endA && b >= startB && b < endB
}
