package tile

import (
	"fmt"

	"gridclip/internal/core"
)

// Index addresses one cell of one grid instance. It always carries its
// owning map, so areas and iterators work identically on the world and on
// staging buffers.
type Index struct {
	M *Map
	X int
	Y int
}

// IsValid reports whether the index addresses an allocated cell of its map.
func (i Index) IsValid() bool {
	return i.M != nil && i.X >= 0 && i.X < i.M.sizeX && i.Y >= 0 && i.Y < i.M.sizeY
}

// SameMap reports whether two indices address the same grid instance.
func SameMap(a, b Index) bool { return a.M == b.M }

// assertValid panics when the index is out of range; addressing an invalid
// tile is a caller bug, not a runtime condition.
func (i Index) assertValid() {
	if !i.IsValid() {
		panic(fmt.Sprintf("tile: invalid index (%d,%d)", i.X, i.Y))
	}
}

// Cell returns a pointer to the addressed cell.
func (i Index) Cell() *Cell {
	i.assertValid()
	return &i.M.cells[i.Y*i.M.sizeX+i.X]
}

// Type returns the cell type.
func (i Index) Type() Type { return i.Cell().Type }

// IsInner reports whether the tile lies inside the playable part of its map,
// off the sentinel borders. Only inner tiles may hold non-void content.
func (i Index) IsInner() bool {
	i.assertValid()
	if i.X >= i.M.sizeX-1 || i.Y >= i.M.sizeY-1 {
		return false
	}
	if i.M.Freeform && (i.X == 0 || i.Y == 0) {
		return false
	}
	return true
}

// SetType stores a cell type. Void is permitted exactly on the sentinel
// borders and nowhere else.
func (i Index) SetType(t Type) {
	if i.IsInner() == (t == TypeVoid) {
		panic(fmt.Sprintf("tile: type %d not allowed at (%d,%d)", t, i.X, i.Y))
	}
	i.Cell().Type = t
}

// MakeVoid resets the cell to the void sentinel.
func (i Index) MakeVoid() {
	c := i.Cell()
	*c = Cell{}
	i.SetType(TypeVoid)
}

// Add returns the index translated by the given offset on the same map. The
// result may be out of range; callers check IsValid.
func (i Index) Add(d core.Diff) Index {
	return Index{M: i.M, X: i.X + d.X, Y: i.Y + d.Y}
}

// StationID returns the station the cell belongs to.
//
// Precondition: the cell is a station tile.
func (i Index) StationID() StationID {
	c := i.Cell()
	if c.Type != TypeStation {
		panic(fmt.Sprintf("tile: (%d,%d) is not a station tile", i.X, i.Y))
	}
	return c.StationID
}
