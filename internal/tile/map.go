package tile

import (
	"fmt"

	"gridclip/internal/core"
)

// Map is one independent grid instance: the live world or a clipboard
// staging buffer. Internal sizes include the one-cell sentinel border on the
// southern and eastern edges, so a map staging w×h tiles of content is
// allocated (w+1)×(h+1). Cells are stored row-major, index = y*sizeX + x.
//
// The zero Map is empty and unallocated.
type Map struct {
	sizeX int
	sizeY int
	cells []Cell

	// Freeform voids the northern borders too. Only ever set on the world
	// map, mirroring the game option; staging buffers keep it false.
	Freeform bool
}

// New allocates a world map with the given internal dimensions and voids its
// sentinel borders.
func New(sizeX, sizeY int, freeform bool) *Map {
	m := &Map{Freeform: freeform}
	m.Alloc(sizeX, sizeY)
	m.VoidBorders()
	return m
}

// Alloc discards any prior cell storage and allocates sizeX*sizeY zeroed
// cells. Both dimensions must be at least 2 to leave room for content next
// to the sentinel border.
func (m *Map) Alloc(sizeX, sizeY int) {
	if sizeX < 2 || sizeY < 2 {
		panic(fmt.Sprintf("tile: map size %dx%d too small", sizeX, sizeY))
	}
	m.sizeX = sizeX
	m.sizeY = sizeY
	m.cells = make([]Cell, sizeX*sizeY)
}

// Release frees the cell storage and zeroes the dimensions.
func (m *Map) Release() {
	m.sizeX = 0
	m.sizeY = 0
	m.cells = nil
}

// IsAllocated reports whether the map currently owns cell storage.
func (m *Map) IsAllocated() bool { return m.cells != nil }

// SizeX returns the internal X dimension including the sentinel border.
func (m *Map) SizeX() int { return m.sizeX }

// SizeY returns the internal Y dimension including the sentinel border.
func (m *Map) SizeY() int { return m.sizeY }

// Size returns both internal dimensions.
func (m *Map) Size() core.Size { return core.Size{W: m.sizeX, H: m.sizeY} }

// Len returns the total cell count.
func (m *Map) Len() int { return len(m.cells) }

// Cells exposes the backing cell slice for bulk reads such as rendering.
func (m *Map) Cells() []Cell { return m.cells }

// Tile returns the index for coordinates (x, y) on this map.
func (m *Map) Tile(x, y int) Index {
	return Index{M: m, X: x, Y: y}
}

// VoidBorders marks the sentinel borders of the map as void: the southern
// row and eastern column always, plus the northern edges on freeform maps.
func (m *Map) VoidBorders() {
	for it := NewOrthoIter(AreaXY(m, m.sizeX-1, 0, 1, m.sizeY)); it.Next(); {
		it.Tile().MakeVoid()
	}
	for it := NewOrthoIter(AreaXY(m, 0, m.sizeY-1, m.sizeX-1, 1)); it.Next(); {
		it.Tile().MakeVoid()
	}
	if m.Freeform {
		for y := 0; y < m.sizeY; y++ {
			m.Tile(0, y).MakeVoid()
		}
		for x := 0; x < m.sizeX; x++ {
			m.Tile(x, 0).MakeVoid()
		}
	}
}
