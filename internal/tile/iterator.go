package tile

import "gridclip/internal/core"

// OrthoIter walks an orthogonal area row-major: x fastest, then y. Call
// Next before reading Tile; the iterator is a transient value and cannot be
// restarted.
type OrthoIter struct {
	area    OrthogonalArea
	x, y    int
	started bool
}

// NewOrthoIter returns an iterator positioned before the first tile.
func NewOrthoIter(a OrthogonalArea) OrthoIter {
	return OrthoIter{area: a}
}

// Next advances to the next tile and reports whether one is available.
func (it *OrthoIter) Next() bool {
	if it.area.IsEmpty() {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}
	it.x++
	if it.x < it.area.W {
		return true
	}
	it.x = 0
	it.y++
	return it.y < it.area.H
}

// Tile returns the current tile.
func (it *OrthoIter) Tile() Index {
	return it.area.Tile.Add(core.Diff{X: it.x, Y: it.y})
}

// DiagIter walks a diagonal area by traversing columns of the 45°-rotated
// coordinate frame and converting each candidate back to x/y. Candidates
// that fall off the map are skipped silently; every in-map tile of the
// diamond is produced exactly once.
type DiagIter struct {
	m            *Map
	baseX, baseY int
	aCur, bCur   int
	aMax, bMax   int
	cur          Index
	started      bool
	done         bool
}

// NewDiagIter returns an iterator over the given diagonal area, positioned
// before its anchor tile.
func NewDiagIter(a DiagonalArea) DiagIter {
	a.Tile.assertValid()
	return DiagIter{
		m:     a.Tile.M,
		baseX: a.Tile.X,
		baseY: a.Tile.Y,
		aMax:  a.A,
		bMax:  a.B,
		cur:   a.Tile,
	}
}

// Next advances to the next in-map tile and reports whether one is
// available.
func (it *DiagIter) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}

	for {
		if it.aMax == 1 || it.aMax == -1 {
			// Every second column of a one-wide diamond has zero length;
			// skip those columns outright.
			it.aCur = 0
			if it.bMax > 0 {
				it.bCur += 2
				if it.bCur > it.bMax {
					it.bCur = it.bMax
				}
			} else {
				it.bCur -= 2
				if it.bCur < it.bMax {
					it.bCur = it.bMax
				}
			}
		} else {
			newLine := false
			if it.aMax > 0 {
				it.aCur += 2
				newLine = it.aCur >= it.aMax
			} else {
				it.aCur -= 2
				newLine = it.aCur <= it.aMax
			}
			if newLine {
				// Columns alternate between starting on the anchor diagonal
				// and one tile toward aMax.
				if it.aCur&1 != 0 {
					it.aCur = 0
				} else if it.aMax > 0 {
					it.aCur = 1
				} else {
					it.aCur = -1
				}
				if it.bMax > 0 {
					it.bCur++
				} else {
					it.bCur--
				}
			}
		}

		x := it.baseX + (it.aCur-it.bCur)/2
		y := it.baseY + (it.bCur+it.aCur)/2
		valid := x >= 0 && y >= 0 && x < it.m.sizeX && y < it.m.sizeY
		if valid {
			it.cur = it.m.Tile(x, y)
		}
		if valid || it.bCur == it.bMax {
			break
		}
	}

	if it.bCur == it.bMax {
		it.done = true
		return false
	}
	return true
}

// Tile returns the current tile.
func (it *DiagIter) Tile() Index { return it.cur }

// TransformIter advances a source cursor over an orthogonal area row-major
// while stepping an independent destination cursor by the transform images
// of the row and column unit vectors, so the n-th source tile always
// corresponds by position to the n-th destination tile under the transform.
// The destination cursor may leave its map; consumers skip such steps.
type TransformIter struct {
	src     Index
	dst     Index
	w, h    int
	x, y    int
	colStep core.Diff
	rowStep core.Diff
	started bool
}

// NewTransformIter pairs the source area with a destination walk starting at
// dstStart, which is where the source anchor lands (the caller derives it
// from TransformedNorthOffset).
func NewTransformIter(src OrthogonalArea, dstStart Index, t core.Transform) TransformIter {
	return TransformIter{
		src:     src.Tile,
		dst:     dstStart,
		w:       src.W,
		h:       src.H,
		colStep: core.TransformDiff(core.Diff{X: 1}, t),
		rowStep: core.TransformDiff(core.Diff{Y: 1}, t),
	}
}

// Next advances both cursors in lock-step and reports whether a pair is
// available. Both cursors exhaust on the same step.
func (it *TransformIter) Next() bool {
	if it.w == 0 || it.h == 0 {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}
	it.x++
	if it.x < it.w {
		it.src.X++
		it.dst = it.dst.Add(it.colStep)
		return true
	}
	it.y++
	if it.y >= it.h {
		return false
	}
	// Row wrap: rewind the column steps, take one row step.
	it.x = 0
	it.src.X -= it.w - 1
	it.src.Y++
	it.dst = it.dst.Add(it.colStep.Scale(-(it.w - 1))).Add(it.rowStep)
	return true
}

// Src returns the current source tile.
func (it *TransformIter) Src() Index { return it.src }

// Dst returns the current destination tile, possibly out of map range.
func (it *TransformIter) Dst() Index { return it.dst }
